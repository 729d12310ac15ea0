package banking

// extractWindow pulls the bits [start, start+width) out of addr. The window
// is returned together with the remaining bits, concatenated high-to-low:
// the bits above the window form the high part of the remainder and the
// bits below the window form the low part. LSB and MSB window placements
// are the boundary values of the general interior case, so no special
// handling exists for them.
func extractWindow(addr uint64, start, width int) (window, remainder uint64) {
	window = (addr >> start) & lowMask(width)

	low := addr & lowMask(start)
	high := addr >> (start + width)
	remainder = high<<start | low

	return window, remainder
}

// insertWindow is the inverse of extractWindow. It rebuilds the original
// value from the window bits and the high-to-low remainder.
func insertWindow(window, remainder uint64, start, width int) uint64 {
	low := remainder & lowMask(start)
	high := remainder >> start

	return high<<(start+width) | window<<start | low
}

func lowMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}

// DecomposeAddress splits a global address into the index of the depth bank
// that holds it and the address local to that bank. With a single depth
// bank the address passes through unchanged.
func (c Config) DecomposeAddress(addr uint64) (row int, local uint64) {
	if c.NumDepthBanks == 1 {
		return 0, addr
	}

	window, remainder := extractWindow(
		addr, c.DepthBankStartBit, c.DepthIdxWidth())

	return int(window), remainder
}

// ComposeAddress rebuilds the global address that DecomposeAddress maps to
// the given (row, local) pair.
func (c Config) ComposeAddress(row int, local uint64) uint64 {
	if c.NumDepthBanks == 1 {
		return local
	}

	return insertWindow(
		uint64(row), local, c.DepthBankStartBit, c.DepthIdxWidth())
}
