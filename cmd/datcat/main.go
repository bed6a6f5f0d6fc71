// Command datcat extracts one entry from a DAT archive, or decodes a raw
// inflate stream, to an output file.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/korlath/inflate"
	"github.com/korlath/inflate/archive"
)

func main() {
	inputFile := flag.String("i", "", "input file (DAT archive, or raw inflate stream with -raw)")
	outputFile := flag.String("o", "", "output file")
	entryID := flag.Uint("id", 0, "entry id to extract from the archive")
	raw := flag.Bool("raw", false, "treat -i as a raw inflate stream instead of a DAT archive")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	fileIn, err := os.Open(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer fileIn.Close()

	var decoded []byte
	if *raw {
		r, err := inflate.NewReader(fileIn)
		if err != nil {
			log.Fatal(err)
		}
		defer r.Close()
		decoded, err = io.ReadAll(r)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		a, err := archive.Open(fileIn)
		if err != nil {
			log.Fatal(err)
		}
		decoded, err = a.Extract(uint32(*entryID))
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := os.WriteFile(*outputFile, decoded, 0644); err != nil {
		log.Fatal(err)
	}
}
