package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NameMustBeValid", func() {
	DescribeTable("accepted names",
		func(name string) {
			Expect(func() { NameMustBeValid(name) }).NotTo(Panic())
		},
		Entry("plain", "MemCtrl"),
		Entry("dotted", "Sim.MemCtrl"),
		Entry("indexed", "MemCtrl.Bank[3]"),
		Entry("underscore", "mem_ctrl"),
	)

	DescribeTable("rejected names",
		func(name string) {
			Expect(func() { NameMustBeValid(name) }).To(Panic())
		},
		Entry("empty", ""),
		Entry("empty token", "Sim..MemCtrl"),
		Entry("space", "Mem Ctrl"),
		Entry("unterminated index", "Bank[3"),
		Entry("non-numeric index", "Bank[x]"),
		Entry("empty index", "Bank[]"),
	)
})
