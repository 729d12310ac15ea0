package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type hookFunc func(ctx HookCtx)

func (f hookFunc) Func(ctx HookCtx) {
	f(ctx)
}

type countingTicker struct {
	ticks   int
	busyFor int
}

func (t *countingTicker) Tick() bool {
	t.ticks++

	if t.busyFor > 0 {
		t.busyFor--
		return true
	}

	return false
}

var _ = Describe("CycleEngine", func() {
	var engine *CycleEngine

	BeforeEach(func() {
		engine = NewCycleEngine()
	})

	It("should refuse a nil ticker", func() {
		Expect(func() { engine.RegisterTicker(nil) }).To(Panic())
	})

	It("should drive every ticker once per edge", func() {
		t1 := &countingTicker{}
		t2 := &countingTicker{}
		engine.RegisterTicker(t1)
		engine.RegisterTicker(t2)

		engine.RunFor(3)

		Expect(t1.ticks).To(Equal(3))
		Expect(t2.ticks).To(Equal(3))
		Expect(engine.CurrentCycle()).To(Equal(uint64(3)))
	})

	It("should stop when all tickers go idle", func() {
		t1 := &countingTicker{busyFor: 2}
		t2 := &countingTicker{busyFor: 5}
		engine.RegisterTicker(t1)
		engine.RegisterTicker(t2)

		applied := engine.RunUntilQuiescent(100)

		// The sixth edge is the one that observes no progress.
		Expect(applied).To(Equal(uint64(6)))
	})

	It("should stop at the cycle limit", func() {
		engine.RegisterTicker(&countingTicker{busyFor: 100})

		applied := engine.RunUntilQuiescent(10)

		Expect(applied).To(Equal(uint64(10)))
	})

	It("should invoke cycle hooks around each edge", func() {
		var positions []*HookPos
		engine.AcceptHook(hookFunc(func(ctx HookCtx) {
			positions = append(positions, ctx.Pos)
		}))

		engine.Step()

		Expect(positions).To(Equal(
			[]*HookPos{HookPosCycleStart, HookPosCycleEnd}))
	})
})

var _ = Describe("Freq", func() {
	It("should convert cycles to seconds", func() {
		Expect(1 * GHz).To(BeNumerically("==", 1e9))
		Expect((2 * GHz).Period()).To(BeNumerically("~", 0.5e-9))
		Expect((1 * MHz).Seconds(3000)).To(BeNumerically("~", 3e-3))
	})

	It("should refuse a zero frequency", func() {
		Expect(func() { Freq(0).Period() }).To(Panic())
	})
})
