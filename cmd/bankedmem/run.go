package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/bankedmem/banking"
	"github.com/sarchlab/bankedmem/memctrl"
	"github.com/sarchlab/bankedmem/sim"
	"github.com/sarchlab/bankedmem/simulation"
)

var runFlags = struct {
	dataWidth     int
	totalDepth    uint64
	widthBanks    int
	depthBanks    int
	startBit      int
	latchLastRead bool

	numAccesses int
	seed        int64
	freqGHz     float64

	trace       bool
	monitor     bool
	monitorPort int
	output      string
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a randomized write/read workload and verify the results",
	Run: func(_ *cobra.Command, _ []string) {
		runWorkload()
	},
}

func init() {
	f := runCmd.Flags()

	f.IntVar(&runFlags.dataWidth, "data-width", 32,
		"logical data bus width in bits")
	f.Uint64Var(&runFlags.totalDepth, "total-depth", 1024,
		"number of entries of the logical memory")
	f.IntVar(&runFlags.widthBanks, "width-banks", 2,
		"number of banks along the data-width axis")
	f.IntVar(&runFlags.depthBanks, "depth-banks", 4,
		"number of banks along the address-depth axis")
	f.IntVar(&runFlags.startBit, "start-bit", 0,
		"lowest address bit of the depth-bank select window")
	f.BoolVar(&runFlags.latchLastRead, "latch-last-read", false,
		"banks hold their last read output on idle cycles")

	f.IntVar(&runFlags.numAccesses, "num-accesses", 1000,
		"number of write/read pairs to issue")
	f.Int64Var(&runFlags.seed, "seed", 1, "random seed for the workload")
	f.Float64Var(&runFlags.freqGHz, "freq-ghz", 1.0,
		"clock frequency used for bandwidth reporting")

	f.BoolVar(&runFlags.trace, "trace", false,
		"record every access into the output database")
	f.BoolVar(&runFlags.monitor, "monitor", false,
		"start the monitoring server")
	f.IntVar(&runFlags.monitorPort, "monitor-port", 0,
		"port of the monitoring server")
	f.StringVar(&runFlags.output, "output", "",
		"output database file name")

	rootCmd.AddCommand(runCmd)
}

type workload struct {
	s    *simulation.Simulation
	comp *memctrl.Comp
	cfg  banking.Config

	rng    *rand.Rand
	mirror map[uint64][]byte

	expected  map[string][]byte
	completed int
	failures  int
}

func runWorkload() {
	cfg := banking.Config{
		DataWidth:         runFlags.dataWidth,
		TotalDepth:        runFlags.totalDepth,
		LatchLastRead:     runFlags.latchLastRead,
		NumWidthBanks:     runFlags.widthBanks,
		NumDepthBanks:     runFlags.depthBanks,
		DepthBankStartBit: runFlags.startBit,
	}

	builder := simulation.MakeBuilder().
		WithOutputFileName(runFlags.output)
	if runFlags.trace {
		builder = builder.WithAccessTracing()
	}
	if runFlags.monitor {
		builder = builder.WithMonitoring()
		if runFlags.monitorPort != 0 {
			builder = builder.WithMonitorPort(runFlags.monitorPort)
		}
	}

	s := builder.Build()
	defer s.Terminate()

	w := &workload{
		s:        s,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(runFlags.seed)),
		mirror:   make(map[uint64][]byte),
		expected: make(map[string][]byte),
	}

	comp, err := memctrl.MakeBuilder().
		WithEngine(s.Engine()).
		WithConfig(cfg).
		WithResponseHandler(w.handleRsp).
		Build("MemCtrl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot build controller: %s\n", err)
		atexit.Exit(1)
	}

	w.comp = comp
	s.RegisterController(comp)

	w.drive()
	w.report()

	if w.failures > 0 {
		atexit.Exit(1)
	}
}

// drive issues every write/read pair, stepping the engine whenever the
// transaction queue is full, and then drains the remaining responses.
func (w *workload) drive() {
	total := runFlags.numAccesses

	for i := 0; i < total; i++ {
		addr := w.rng.Uint64() % w.cfg.TotalDepth

		w.scheduleOrStep(w.makeWrite(addr))
		w.scheduleOrStep(w.makeRead(addr))
	}

	for w.completed < 2*total {
		w.s.Engine().Step()
	}
}

func (w *workload) scheduleOrStep(req memctrl.AccessReq) {
	for !w.comp.Schedule(req) {
		w.s.Engine().Step()
	}
}

func (w *workload) makeWrite(addr uint64) *memctrl.WriteReq {
	entryBytes := w.cfg.WriteMaskWidth()

	data := make([]byte, entryBytes)
	w.rng.Read(data)

	mask := make([]bool, entryBytes)
	for i := range mask {
		mask[i] = w.rng.Intn(4) > 0
	}

	entry := w.mirror[addr]
	if entry == nil {
		entry = make([]byte, entryBytes)
		w.mirror[addr] = entry
	}
	for i := range entry {
		if mask[i] {
			entry[i] = data[i]
		}
	}

	return memctrl.WriteReqBuilder{}.
		WithAddress(addr).
		WithData(data).
		WithDirtyMask(mask).
		Build()
}

func (w *workload) makeRead(addr uint64) *memctrl.ReadReq {
	req := memctrl.ReadReqBuilder{}.
		WithAddress(addr).
		Build()

	expected := make([]byte, w.cfg.WriteMaskWidth())
	copy(expected, w.mirror[addr])
	w.expected[req.ID] = expected

	return req
}

func (w *workload) handleRsp(rsp memctrl.AccessRsp) {
	w.completed++

	dataRsp, isRead := rsp.(*memctrl.DataReadyRsp)
	if !isRead {
		return
	}

	expected, found := w.expected[rsp.GetRspTo()]
	if !found {
		return
	}

	delete(w.expected, rsp.GetRspTo())

	for i := range expected {
		if dataRsp.Data[i] != expected[i] {
			w.failures++
			fmt.Fprintf(os.Stderr,
				"Mismatch for request %s: got %x, want %x\n",
				rsp.GetRspTo(), dataRsp.Data, expected)
			return
		}
	}
}

func (w *workload) report() {
	cycles := w.s.Engine().CurrentCycle()
	freq := sim.Freq(runFlags.freqGHz) * sim.GHz

	entryBytes := uint64(w.cfg.WriteMaskWidth())
	totalBytes := uint64(w.completed) * entryBytes
	seconds := freq.Seconds(cycles)
	bandwidthGBS := float64(totalBytes) / seconds / 1e9

	fmt.Printf("Accesses completed: %d\n", w.completed)
	fmt.Printf("Cycles: %d\n", cycles)
	fmt.Printf("Achieved bandwidth: %.2f GB/s\n", bandwidthGBS)

	if w.failures == 0 {
		fmt.Printf("Verification: all reads matched the reference model\n")
	} else {
		fmt.Printf("Verification: %d mismatches\n", w.failures)
	}
}
