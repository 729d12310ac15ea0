package banking

// The width slicer partitions the logical data and mask buses into equal
// contiguous per-bank slices and concatenates bank outputs back into the
// logical bus. Byte k of the data bus carries bits [8k, 8k+8), so slice i
// of a bus with bankBytes bytes per bank is the byte range
// [i*bankBytes, (i+1)*bankBytes).

// sliceData returns the portion of the logical data bus that width bank i
// drives or receives. The returned slice aliases data.
func sliceData(data []byte, i, bankBytes int) []byte {
	return data[i*bankBytes : (i+1)*bankBytes]
}

// sliceMask returns the portion of the logical write mask that width bank i
// receives. The returned slice aliases mask.
func sliceMask(mask []bool, i, bankBytes int) []bool {
	return mask[i*bankBytes : (i+1)*bankBytes]
}

// concatSlices rebuilds the logical data bus from per-width-bank outputs,
// in index order, into dst. Each slice must be bankBytes long.
func concatSlices(dst []byte, slices [][]byte, bankBytes int) {
	for i, s := range slices {
		copy(dst[i*bankBytes:(i+1)*bankBytes], s)
	}
}
