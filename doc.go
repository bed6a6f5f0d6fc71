/*
Package inflate implements the bit-exact decompressor for the inflate-style
codec used inside DAT archive entries: a dynamic canonical Huffman decoder
combined with LZ77 back-reference expansion, framed into blocks with their
own per-block Huffman tables.

The package does not implement encoding. Given a complete compressed byte
range and (optionally) a cap on the output size, it produces the complete
decompressed byte range:

	out, err := inflate.Decompress(compressed, 0)

or, for callers that want an io.Reader facade over the same one-shot decode:

	r, err := inflate.NewReader(bytes.NewReader(compressed))
	io.Copy(dst, r)
	r.Close()
*/
package inflate
