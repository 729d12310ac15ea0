package memctrl

import (
	"github.com/sarchlab/bankedmem/banking"
	"github.com/sarchlab/bankedmem/sim"
)

// Builder constructs memory controller components.
type Builder struct {
	engine *sim.CycleEngine

	cfg            banking.Config
	bankFactory    banking.BankFactory
	pendingBufSize int
	handler        ResponseHandler
}

// MakeBuilder creates a builder with reasonable defaults.
func MakeBuilder() Builder {
	return Builder{
		cfg: banking.Config{
			DataWidth:     32,
			TotalDepth:    1024,
			NumWidthBanks: 1,
			NumDepthBanks: 1,
		},
		pendingBufSize: 16,
	}
}

// WithEngine registers the component with a cycle engine when built.
func (b Builder) WithEngine(engine *sim.CycleEngine) Builder {
	b.engine = engine
	return b
}

// WithConfig sets the geometry of the banked memory.
func (b Builder) WithConfig(cfg banking.Config) Builder {
	b.cfg = cfg
	return b
}

// WithBankFactory overrides how the banks of the grid are created.
func (b Builder) WithBankFactory(factory banking.BankFactory) Builder {
	b.bankFactory = factory
	return b
}

// WithPendingBufSize sets the capacity of the transaction queue.
func (b Builder) WithPendingBufSize(size int) Builder {
	b.pendingBufSize = size
	return b
}

// WithResponseHandler sets the handler that receives responses.
func (b Builder) WithResponseHandler(handler ResponseHandler) Builder {
	b.handler = handler
	return b
}

// Build creates the component. It fails with a banking.ConfigError when the
// configured geometry violates a construction invariant.
func (b Builder) Build(name string) (*Comp, error) {
	sim.NameMustBeValid(name)

	if b.pendingBufSize <= 0 {
		panic("memctrl.Builder: pendingBufSize must be > 0")
	}

	ctrl, err := banking.NewController(b.cfg, b.bankFactory)
	if err != nil {
		return nil, err
	}

	c := &Comp{
		name:      name,
		ctrl:      ctrl,
		pending:   sim.NewBuffer(name+".Pending", b.pendingBufSize),
		respondTo: b.handler,
	}

	if b.engine != nil {
		b.engine.RegisterTicker(c)
	}

	return c, nil
}
