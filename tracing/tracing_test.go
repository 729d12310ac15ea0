package tracing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bankedmem/banking"
	"github.com/sarchlab/bankedmem/memctrl"
	"github.com/sarchlab/bankedmem/tracing"
)

type collectingTracer struct {
	started []tracing.Access
	ended   []string
}

func (t *collectingTracer) StartAccess(access tracing.Access) {
	t.started = append(t.started, access)
}

func (t *collectingTracer) EndAccess(rspTo string) {
	t.ended = append(t.ended, rspTo)
}

var _ = Describe("Access collection", func() {
	var (
		comp   *memctrl.Comp
		tracer *collectingTracer
	)

	BeforeEach(func() {
		tracer = &collectingTracer{}

		var err error
		comp, err = memctrl.MakeBuilder().
			WithConfig(banking.Config{
				DataWidth:         32,
				TotalDepth:        16,
				NumWidthBanks:     1,
				NumDepthBanks:     4,
				DepthBankStartBit: 0,
			}).
			Build("TracedMemCtrl")
		Expect(err).NotTo(HaveOccurred())

		tracing.CollectAccesses(comp, tracer)
	})

	It("should record a write with its routing", func() {
		req := memctrl.WriteReqBuilder{}.
			WithAddress(0b0110).
			WithData([]byte{1, 2, 3, 4}).
			Build()

		comp.Schedule(req)
		comp.Tick()

		Expect(tracer.started).To(HaveLen(1))
		Expect(tracer.started[0].ID).To(Equal(req.ID))
		Expect(tracer.started[0].Kind).To(Equal("write"))
		Expect(tracer.started[0].Address).To(Equal(uint64(0b0110)))
		Expect(tracer.started[0].Row).To(Equal(0b10))
		Expect(tracer.started[0].Local).To(Equal(uint64(0b01)))

		Expect(tracer.ended).To(Equal([]string{req.ID}))
	})

	It("should end a read when its data is ready", func() {
		req := memctrl.ReadReqBuilder{}.
			WithAddress(0b0011).
			Build()

		comp.Schedule(req)
		comp.Tick()

		Expect(tracer.started).To(HaveLen(1))
		Expect(tracer.started[0].Kind).To(Equal("read"))
		Expect(tracer.ended).To(BeEmpty())

		comp.Tick()

		Expect(tracer.ended).To(Equal([]string{req.ID}))
	})
})
