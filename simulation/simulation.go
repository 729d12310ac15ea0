// Package simulation ties the cycle engine, the data recorder, the access
// tracer, and the monitor together into one runnable simulation.
package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/bankedmem/memctrl"
	"github.com/sarchlab/bankedmem/monitoring"
	"github.com/sarchlab/bankedmem/recording"
	"github.com/sarchlab/bankedmem/sim"
	"github.com/sarchlab/bankedmem/tracing"
)

// A Simulation provides the services required to run a simulated system.
type Simulation struct {
	id string

	engine       *sim.CycleEngine
	dataRecorder recording.DataRecorder
	accessTracer *tracing.DBTracer
	monitor      *monitoring.Monitor
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// Engine returns the engine that drives the simulation.
func (s *Simulation) Engine() *sim.CycleEngine {
	return s.engine
}

// DataRecorder returns the recorder collecting the simulation output.
func (s *Simulation) DataRecorder() recording.DataRecorder {
	return s.dataRecorder
}

// Monitor returns the monitor, or nil when monitoring is disabled.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterController hooks a memory controller into the simulation's
// tracer and monitor.
func (s *Simulation) RegisterController(c *memctrl.Comp) {
	if s.accessTracer != nil {
		tracing.CollectAccesses(c, s.accessTracer)
	}

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// Terminate flushes and closes the simulation output.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}

// Builder can be used to build a simulation.
type Builder struct {
	traceOn        bool
	monitorOn      bool
	monitorPort    int
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithAccessTracing records every served access into the output database.
func (b Builder) WithAccessTracing() Builder {
	b.traceOn = true
	return b
}

// WithMonitoring starts the monitoring server when the simulation is built.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:     xid.New().String(),
		engine: sim.NewCycleEngine(),
	}

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "bankedmem_sim_" + s.id
	}
	s.dataRecorder = recording.New(outputPath)

	if b.traceOn {
		s.accessTracer = tracing.NewDBTracer(s.engine, s.dataRecorder)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.StartServer()
	}

	return s
}
