package banking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SRAMBank", func() {
	var bank *SRAMBank

	fullMask := []bool{true, true}

	BeforeEach(func() {
		bank = NewSRAMBank(8, 16, false)
	})

	It("should surface a read one cycle after the request", func() {
		bank.Tick(true, true, 3, []byte{0xCD, 0xAB}, fullMask)

		bank.Tick(true, false, 3, nil, nil)
		bank.Tick(false, false, 0, nil, nil)

		Expect(bank.Output()).To(Equal([]byte{0xCD, 0xAB}))
	})

	It("should capture the value at the time of the read request", func() {
		bank.Tick(true, true, 5, []byte{0x11, 0x22}, fullMask)
		bank.Tick(true, false, 5, nil, nil)

		// Overwrites after the read was issued must not leak into it.
		bank.Tick(true, true, 5, []byte{0x99, 0x99}, fullMask)

		Expect(bank.Output()).To(Equal([]byte{0x11, 0x22}))
	})

	It("should only write the masked bytes", func() {
		bank.Tick(true, true, 2, []byte{0xAA, 0xBB}, fullMask)
		bank.Tick(true, true, 2, []byte{0x11, 0x22}, []bool{false, true})

		bank.Tick(true, false, 2, nil, nil)
		bank.Tick(false, false, 0, nil, nil)

		Expect(bank.Output()).To(Equal([]byte{0xAA, 0x22}))
	})

	It("should clear the output on idle cycles without latching", func() {
		bank.Tick(true, true, 1, []byte{0xFF, 0xFF}, fullMask)
		bank.Tick(true, false, 1, nil, nil)
		bank.Tick(false, false, 0, nil, nil)

		Expect(bank.Output()).To(Equal([]byte{0xFF, 0xFF}))

		bank.Tick(false, false, 0, nil, nil)

		Expect(bank.Output()).To(Equal([]byte{0x00, 0x00}))
	})

	It("should hold the output on idle cycles when latching", func() {
		bank = NewSRAMBank(8, 16, true)

		bank.Tick(true, true, 1, []byte{0xFF, 0x01}, fullMask)
		bank.Tick(true, false, 1, nil, nil)
		bank.Tick(false, false, 0, nil, nil)
		bank.Tick(false, false, 0, nil, nil)
		bank.Tick(false, false, 0, nil, nil)

		Expect(bank.Output()).To(Equal([]byte{0xFF, 0x01}))
	})

	It("should reject an out-of-range local address", func() {
		Expect(func() {
			bank.Tick(true, false, 8, nil, nil)
		}).To(Panic())
	})

	It("should reject a bad geometry", func() {
		Expect(func() { NewSRAMBank(0, 16, false) }).To(Panic())
		Expect(func() { NewSRAMBank(8, 12, false) }).To(Panic())
	})
})
