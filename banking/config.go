// Package banking provides a cycle-accurate model of a banked memory access
// controller. The controller presents a single synchronous read/write memory
// with per-byte write masking while physically organizing the storage as a
// grid of smaller banks, tiled along both the data-width axis and the
// address-depth axis.
package banking

import (
	"fmt"
	"math/bits"
)

// ErrorCode identifies which configuration invariant a ConfigError reports.
type ErrorCode int

// The configuration invariants that can fail.
const (
	ErrDataWidthNotByteAligned ErrorCode = iota + 1
	ErrDepthNotDivisible
	ErrWidthNotDivisible
	ErrStartBitOutOfRange
)

func (c ErrorCode) String() string {
	switch c {
	case ErrDataWidthNotByteAligned:
		return "DataWidthNotByteAligned"
	case ErrDepthNotDivisible:
		return "DepthNotDivisible"
	case ErrWidthNotDivisible:
		return "WidthNotDivisible"
	case ErrStartBitOutOfRange:
		return "StartBitOutOfRange"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// A ConfigError reports a Config that violates a construction invariant.
type ConfigError struct {
	Code   ErrorCode
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("banking: invalid config [%s]: %s", e.Code, e.Detail)
}

// Config describes the geometry of a banked memory. It is immutable once
// the controller is constructed.
type Config struct {
	// DataWidth is the width of the logical data bus in bits.
	DataWidth int

	// TotalDepth is the number of DataWidth-wide entries the logical
	// memory holds.
	TotalDepth uint64

	// LatchLastRead makes each bank hold its previous read output on
	// cycles where the bank is not accessed.
	LatchLastRead bool

	// NumWidthBanks is the number of banks the data bus is split across.
	NumWidthBanks int

	// NumDepthBanks is the number of banks the address space is split
	// across.
	NumDepthBanks int

	// DepthBankStartBit is the position of the lowest address bit of the
	// window that selects the depth bank.
	DepthBankStartBit int
}

// WriteMaskWidth returns the number of byte-mask bits on the logical bus.
func (c Config) WriteMaskWidth() int {
	return c.DataWidth / 8
}

// AddrWidth returns the number of meaningful bits in a global address.
func (c Config) AddrWidth() int {
	return ceilLog2(c.TotalDepth)
}

// BankDepth returns the number of entries each bank holds.
func (c Config) BankDepth() uint64 {
	return c.TotalDepth / uint64(c.NumDepthBanks)
}

// BankAddrWidth returns the number of meaningful bits in a bank-local
// address.
func (c Config) BankAddrWidth() int {
	return ceilLog2(c.BankDepth())
}

// DepthIdxWidth returns the number of address bits that select the depth
// bank.
func (c Config) DepthIdxWidth() int {
	return ceilLog2(uint64(c.NumDepthBanks))
}

// BankWidth returns the width of each bank's data bus in bits.
func (c Config) BankWidth() int {
	return c.DataWidth / c.NumWidthBanks
}

// BankMaskWidth returns the number of byte-mask bits on each bank's bus.
func (c Config) BankMaskWidth() int {
	return c.BankWidth() / 8
}

// Validate checks the construction invariants. It returns a ConfigError
// naming the first violated invariant, or nil if the config is usable.
func (c Config) Validate() error {
	if c.DataWidth <= 0 || c.DataWidth%8 != 0 {
		return &ConfigError{
			Code: ErrDataWidthNotByteAligned,
			Detail: fmt.Sprintf(
				"data width %d is not a positive multiple of 8 bits",
				c.DataWidth),
		}
	}

	if c.NumDepthBanks <= 0 || c.TotalDepth == 0 ||
		c.TotalDepth%uint64(c.NumDepthBanks) != 0 {
		return &ConfigError{
			Code: ErrDepthNotDivisible,
			Detail: fmt.Sprintf(
				"total depth %d is not divisible into %d depth banks",
				c.TotalDepth, c.NumDepthBanks),
		}
	}

	if c.NumWidthBanks <= 0 || c.DataWidth%(c.NumWidthBanks*8) != 0 {
		return &ConfigError{
			Code: ErrWidthNotDivisible,
			Detail: fmt.Sprintf(
				"data width %d is not divisible into %d byte-aligned "+
					"width banks",
				c.DataWidth, c.NumWidthBanks),
		}
	}

	if c.DepthBankStartBit < 0 ||
		c.DepthBankStartBit+c.DepthIdxWidth() > c.AddrWidth() {
		return &ConfigError{
			Code: ErrStartBitOutOfRange,
			Detail: fmt.Sprintf(
				"depth bank bits [%d, %d) do not fit in the %d-bit address",
				c.DepthBankStartBit,
				c.DepthBankStartBit+c.DepthIdxWidth(),
				c.AddrWidth()),
		}
	}

	return nil
}

// ceilLog2 returns the number of bits needed to index n entries.
func ceilLog2(n uint64) int {
	if n <= 1 {
		return 0
	}

	return bits.Len64(n - 1)
}
