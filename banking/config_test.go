package banking

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var cfg Config

	BeforeEach(func() {
		cfg = Config{
			DataWidth:         32,
			TotalDepth:        16,
			NumWidthBanks:     2,
			NumDepthBanks:     2,
			DepthBankStartBit: 0,
		}
	})

	It("should accept a valid config", func() {
		Expect(cfg.Validate()).To(Succeed())
	})

	It("should derive the geometry", func() {
		Expect(cfg.WriteMaskWidth()).To(Equal(4))
		Expect(cfg.AddrWidth()).To(Equal(4))
		Expect(cfg.BankDepth()).To(Equal(uint64(8)))
		Expect(cfg.BankAddrWidth()).To(Equal(3))
		Expect(cfg.DepthIdxWidth()).To(Equal(1))
		Expect(cfg.BankWidth()).To(Equal(16))
		Expect(cfg.BankMaskWidth()).To(Equal(2))
	})

	It("should reject a non-byte-aligned data width", func() {
		cfg.DataWidth = 30

		err := cfg.Validate()

		var cfgErr *ConfigError
		Expect(err).To(HaveOccurred())
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
		Expect(cfgErr.Code).To(Equal(ErrDataWidthNotByteAligned))
	})

	It("should reject a depth that does not divide into the depth banks",
		func() {
			cfg.TotalDepth = 18

			err := cfg.Validate()

			var cfgErr *ConfigError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Code).To(Equal(ErrDepthNotDivisible))
		})

	It("should reject a width that does not divide into the width banks",
		func() {
			cfg.NumWidthBanks = 3

			err := cfg.Validate()

			var cfgErr *ConfigError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Code).To(Equal(ErrWidthNotDivisible))
		})

	It("should reject width banks that break byte alignment", func() {
		// 32 bits over 4 width banks is 8 bits per bank, fine; over 8
		// banks it would be 4 bits, which cannot carry a byte mask.
		cfg.NumWidthBanks = 8

		err := cfg.Validate()

		var cfgErr *ConfigError
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
		Expect(cfgErr.Code).To(Equal(ErrWidthNotDivisible))
	})

	It("should reject a depth-bank window that leaves the address", func() {
		cfg.DepthBankStartBit = 4

		err := cfg.Validate()

		var cfgErr *ConfigError
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
		Expect(cfgErr.Code).To(Equal(ErrStartBitOutOfRange))
	})

	It("should reject a negative start bit", func() {
		cfg.DepthBankStartBit = -1

		err := cfg.Validate()

		var cfgErr *ConfigError
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
		Expect(cfgErr.Code).To(Equal(ErrStartBitOutOfRange))
	})

	It("should allow the window to touch the top of the address", func() {
		cfg.DepthBankStartBit = 3

		Expect(cfg.Validate()).To(Succeed())
	})
})
