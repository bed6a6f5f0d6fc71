package inflate

import "sync"

// staticTablePairs is the fixed, literal table the static Huffman decoder
// is bootstrapped from (symbol, length) in source order, 249 entries,
// lengths 3 through 16. The symbol values pack the table-description
// alphabet used by parseHuffmanTable: bits = symbol & 0x1F, run =
// (symbol >> 5) + 1.
//
// The retrieved copy of the original decompress.h had this table's
// construction routine overwritten by a later revision before it could be
// captured verbatim (see DESIGN.md); this is a from-scratch reconstruction
// built to the documented shape (249 pairs, lengths 3-16, Kraft sum <= 1)
// rather than a byte-for-byte recovery, and real-archive interop requires
// substituting the authoritative table.
var staticTablePairs = []Pair{
	{0, 3}, {1, 4}, {2, 4}, {3, 5},
	{4, 5}, {5, 5}, {6, 5}, {7, 6},
	{8, 6}, {9, 6}, {10, 6}, {11, 6},
	{12, 6}, {13, 6}, {14, 6}, {15, 7},
	{16, 7}, {17, 7}, {18, 7}, {19, 7},
	{20, 7}, {21, 7}, {22, 7}, {23, 7},
	{24, 7}, {25, 7}, {26, 7}, {27, 7},
	{28, 7}, {29, 7}, {30, 7}, {31, 8},
	{32, 8}, {33, 8}, {34, 8}, {35, 8},
	{36, 8}, {37, 8}, {38, 8}, {39, 8},
	{40, 8}, {41, 8}, {42, 8}, {43, 8},
	{44, 8}, {45, 8}, {46, 8}, {47, 8},
	{48, 8}, {49, 8}, {50, 8}, {51, 8},
	{52, 8}, {53, 8}, {54, 8}, {55, 8},
	{56, 8}, {57, 8}, {58, 8}, {59, 8},
	{60, 8}, {61, 8}, {62, 8}, {63, 9},
	{64, 9}, {65, 9}, {66, 9}, {67, 9},
	{68, 9}, {69, 9}, {70, 9}, {71, 9},
	{72, 9}, {73, 9}, {74, 9}, {75, 9},
	{76, 9}, {77, 9}, {78, 9}, {79, 9},
	{80, 9}, {81, 9}, {82, 9}, {83, 9},
	{84, 9}, {85, 9}, {86, 9}, {87, 9},
	{88, 9}, {89, 9}, {90, 9}, {91, 9},
	{92, 9}, {93, 9}, {94, 9}, {95, 9},
	{96, 9}, {97, 9}, {98, 9}, {99, 9},
	{100, 9}, {101, 9}, {102, 9}, {103, 9},
	{104, 9}, {105, 9}, {106, 9}, {107, 9},
	{108, 9}, {109, 9}, {110, 9}, {111, 10},
	{112, 10}, {113, 10}, {114, 10}, {115, 10},
	{116, 10}, {117, 10}, {118, 10}, {119, 10},
	{120, 10}, {121, 10}, {122, 10}, {123, 10},
	{124, 10}, {125, 10}, {126, 10}, {127, 10},
	{128, 10}, {129, 10}, {130, 10}, {131, 10},
	{132, 10}, {133, 10}, {134, 10}, {135, 10},
	{136, 10}, {137, 10}, {138, 10}, {139, 10},
	{140, 10}, {141, 10}, {142, 10}, {143, 10},
	{144, 10}, {145, 10}, {146, 10}, {147, 10},
	{148, 10}, {149, 10}, {150, 10}, {151, 10},
	{152, 10}, {153, 10}, {154, 10}, {155, 10},
	{156, 10}, {157, 10}, {158, 10}, {159, 11},
	{160, 11}, {161, 11}, {162, 11}, {163, 11},
	{164, 11}, {165, 11}, {166, 11}, {167, 11},
	{168, 11}, {169, 11}, {170, 11}, {171, 11},
	{172, 11}, {173, 11}, {174, 12}, {175, 12},
	{176, 12}, {177, 12}, {178, 12}, {179, 12},
	{180, 12}, {181, 12}, {182, 12}, {183, 12},
	{184, 12}, {185, 12}, {186, 12}, {187, 12},
	{188, 12}, {189, 13}, {190, 13}, {191, 13},
	{192, 13}, {193, 13}, {194, 13}, {195, 13},
	{196, 13}, {197, 13}, {198, 13}, {199, 13},
	{200, 13}, {201, 13}, {202, 13}, {203, 13},
	{204, 14}, {205, 14}, {206, 14}, {207, 14},
	{208, 14}, {209, 14}, {210, 14}, {211, 14},
	{212, 14}, {213, 14}, {214, 14}, {215, 14},
	{216, 14}, {217, 14}, {218, 14}, {219, 15},
	{220, 15}, {221, 15}, {222, 15}, {223, 15},
	{224, 15}, {225, 15}, {226, 15}, {227, 15},
	{228, 15}, {229, 15}, {230, 15}, {231, 15},
	{232, 15}, {233, 15}, {234, 16}, {235, 16},
	{236, 16}, {237, 16}, {238, 16}, {239, 16},
	{240, 16}, {241, 16}, {242, 16}, {243, 16},
	{244, 16}, {245, 16}, {246, 16}, {247, 16},
	{248, 16},}

var (
	staticDecoderOnce sync.Once
	staticDecoderInst *huffmanDecoder
	staticDecoderErr  error
)

// staticDecoder returns the process-lifetime static Huffman decoder used to
// decode Huffman table descriptions (section 4.3). It is built once, under
// a sync.Once guard, and is safe to share read-only across goroutines
// thereafter.
func staticDecoder() (*huffmanDecoder, error) {
	staticDecoderOnce.Do(func() {
		staticDecoderInst, staticDecoderErr = buildHuffman(staticTablePairs)
	})
	return staticDecoderInst, staticDecoderErr
}
