package banking

import "log"

// A Request carries the per-cycle input signals of the controller. It is
// consumed on the edge it is supplied and not retained.
type Request struct {
	Valid   bool
	Write   bool
	Address uint64

	// Data must hold DataWidth/8 bytes on a valid write.
	Data []byte

	// WriteMask selects which bytes of Data are committed. Byte k is
	// written iff WriteMask[k] is true.
	WriteMask []bool
}

// A Controller presents a single logical synchronous memory implemented as
// a NumWidthBanks x NumDepthBanks grid of banks. It adds no latency beyond
// the banks' own one-cycle read latency.
type Controller struct {
	cfg Config

	// banks[w][d] is the bank at width column w, depth row d. Each bank is
	// exclusively owned by the controller.
	banks [][]Bank

	router depthRouter

	rowValid []bool
	result   []byte
	rowOuts  [][]byte
}

// depthRouter is the depth-selection logic of the controller. The banked
// variant carries the read-select register; the single-row variant holds no
// state at all. The variant is picked once at construction and never
// branched on per request.
type depthRouter interface {
	route(addr uint64) (row int, local uint64)
	latchOnRead(row int)
	selectedRow() int
}

// singleRowRouter is the degenerate topology with one depth bank. The
// address passes through and the only row is always selected.
type singleRowRouter struct{}

func (singleRowRouter) route(addr uint64) (int, uint64) { return 0, addr }
func (singleRowRouter) latchOnRead(int)                 {}
func (singleRowRouter) selectedRow() int                { return 0 }

// bankedRowRouter decomposes addresses through the configured bit window
// and remembers which row serviced the most recent still-in-flight read.
type bankedRowRouter struct {
	startBit int
	idxWidth int

	// selReg steers the delayed read output. It updates only on a valid
	// read and holds its value otherwise.
	selReg int
}

func (r *bankedRowRouter) route(addr uint64) (int, uint64) {
	window, remainder := extractWindow(addr, r.startBit, r.idxWidth)
	return int(window), remainder
}

func (r *bankedRowRouter) latchOnRead(row int) {
	r.selReg = row
}

func (r *bankedRowRouter) selectedRow() int {
	return r.selReg
}

// NewController validates cfg and builds the bank grid using the given
// factory. A nil factory builds SRAM banks. Construction fails with a
// ConfigError when cfg violates an invariant; no banks are created in that
// case.
func NewController(cfg Config, factory BankFactory) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if factory == nil {
		factory = func(depth uint64, widthBits int, latch bool) Bank {
			return NewSRAMBank(depth, widthBits, latch)
		}
	}

	c := &Controller{
		cfg:      cfg,
		rowValid: make([]bool, cfg.NumDepthBanks),
		result:   make([]byte, cfg.WriteMaskWidth()),
		rowOuts:  make([][]byte, cfg.NumWidthBanks),
	}

	c.banks = make([][]Bank, cfg.NumWidthBanks)
	for w := range c.banks {
		c.banks[w] = make([]Bank, cfg.NumDepthBanks)
		for d := range c.banks[w] {
			c.banks[w][d] = factory(
				cfg.BankDepth(), cfg.BankWidth(), cfg.LatchLastRead)
		}
	}

	if cfg.NumDepthBanks == 1 {
		c.router = singleRowRouter{}
	} else {
		c.router = &bankedRowRouter{
			startBit: cfg.DepthBankStartBit,
			idxWidth: cfg.DepthIdxWidth(),
		}
	}

	return c, nil
}

// Config returns the geometry the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Tick applies one clock edge. The returned slice is the read result that
// becomes observable on this edge, carrying the data for the read requested
// on the previous cycle. The slice stays owned by the controller and is
// overwritten by the next Tick.
func (c *Controller) Tick(req Request) []byte {
	if req.Valid && req.Write {
		c.checkWriteShape(req)
	}

	row, local := c.router.route(req.Address)

	// One-hot row gating: only the addressed row observes a valid access.
	for d := range c.rowValid {
		c.rowValid[d] = req.Valid && d == row
	}

	bankBytes := c.cfg.BankMaskWidth()

	for w, column := range c.banks {
		var data []byte
		var mask []bool

		if req.Valid && req.Write {
			data = sliceData(req.Data, w, bankBytes)
			mask = sliceMask(req.WriteMask, w, bankBytes)
		}

		for d, bank := range column {
			bank.Tick(c.rowValid[d], req.Write, local, data, mask)
		}
	}

	// The selected row still reflects the previous cycle's read; the
	// register only latches the new row below.
	sel := c.router.selectedRow()
	for w, column := range c.banks {
		c.rowOuts[w] = column[sel].Output()
	}
	concatSlices(c.result, c.rowOuts, bankBytes)

	if req.Valid && !req.Write {
		c.router.latchOnRead(row)
	}

	return c.result
}

// Output returns the read result observable this cycle, without advancing
// the clock.
func (c *Controller) Output() []byte {
	return c.result
}

func (c *Controller) checkWriteShape(req Request) {
	if len(req.Data) != c.cfg.WriteMaskWidth() ||
		len(req.WriteMask) != c.cfg.WriteMaskWidth() {
		log.Panicf(
			"banking: write carries %d data bytes and %d mask bits, want %d",
			len(req.Data), len(req.WriteMask), c.cfg.WriteMaskWidth())
	}
}
