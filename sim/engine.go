package sim

import "log"

// HookPosCycleStart is triggered on the engine before the clock edge is
// applied to the tickers.
var HookPosCycleStart = &HookPos{Name: "CycleStart"}

// HookPosCycleEnd is triggered on the engine after all tickers have observed
// the clock edge.
var HookPosCycleEnd = &HookPos{Name: "CycleEnd"}

// A Ticker is an element that observes clock edges. Tick applies one edge
// and reports whether the element did any work during the cycle.
type Ticker interface {
	Tick() bool
}

// A CycleTeller can tell the number of clock edges that have elapsed since
// the beginning of the simulation.
type CycleTeller interface {
	CurrentCycle() uint64
}

// A CycleEngine drives all the registered tickers in lockstep, one clock
// edge at a time. All tickers share the single clock domain.
type CycleEngine struct {
	HookableBase

	cycle   uint64
	tickers []Ticker
}

// NewCycleEngine creates a CycleEngine with no tickers registered.
func NewCycleEngine() *CycleEngine {
	return &CycleEngine{}
}

// RegisterTicker adds a ticker to be driven by the engine. Registration
// order is the order the tickers observe each edge.
func (e *CycleEngine) RegisterTicker(t Ticker) {
	if t == nil {
		log.Panic("cannot register a nil ticker")
	}

	e.tickers = append(e.tickers, t)
}

// CurrentCycle returns the number of clock edges applied so far.
func (e *CycleEngine) CurrentCycle() uint64 {
	return e.cycle
}

// Step applies one clock edge to every registered ticker. It returns true
// if any ticker made progress during the cycle.
func (e *CycleEngine) Step() bool {
	if e.NumHooks() > 0 {
		e.InvokeHook(HookCtx{Domain: e, Pos: HookPosCycleStart})
	}

	madeProgress := false
	for _, t := range e.tickers {
		madeProgress = t.Tick() || madeProgress
	}

	e.cycle++

	if e.NumHooks() > 0 {
		e.InvokeHook(HookCtx{Domain: e, Pos: HookPosCycleEnd})
	}

	return madeProgress
}

// RunFor applies the given number of clock edges.
func (e *CycleEngine) RunFor(cycles uint64) {
	for i := uint64(0); i < cycles; i++ {
		e.Step()
	}
}

// RunUntilQuiescent steps the engine until no ticker makes progress, or
// until maxCycles edges have been applied. It returns the number of edges
// applied.
func (e *CycleEngine) RunUntilQuiescent(maxCycles uint64) uint64 {
	start := e.cycle

	for e.cycle-start < maxCycles {
		if !e.Step() {
			break
		}
	}

	return e.cycle - start
}
