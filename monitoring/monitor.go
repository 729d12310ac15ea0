// Package monitoring turns a running simulation into a small web server so
// its progress and the state of the memory controllers can be inspected.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"

	"github.com/sarchlab/bankedmem/memctrl"
	"github.com/sarchlab/bankedmem/sim"
)

// Monitor exposes the state of a simulation over HTTP.
type Monitor struct {
	engine      *sim.CycleEngine
	portNumber  int
	openBrowser bool

	components []sim.Named
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port the server listens on. Ports below 1000 are
// rejected and a random port is used instead.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowserOpening makes StartServer open the dashboard in the default
// browser.
func (m *Monitor) WithBrowserOpening() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterEngine registers the engine that drives the simulation.
func (m *Monitor) RegisterEngine(e *sim.CycleEngine) {
	m.engine = e
}

// RegisterComponent registers a component to be monitored.
func (m *Monitor) RegisterComponent(c sim.Named) {
	m.components = append(m.components, c)
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()
	r.HandleFunc("/api/cycle", m.currentCycle)
	r.HandleFunc("/api/list_components", m.listComponents)
	r.HandleFunc("/api/component/{name}", m.componentDetails)
	r.HandleFunc("/api/resource", m.listResources)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	go func() {
		dieOnErr(http.Serve(listener, r))
	}()

	if m.openBrowser {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
		}
	}
}

func (m *Monitor) currentCycle(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]uint64{"cycle": m.engine.CurrentCycle()})
}

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.components))
	for _, c := range m.components {
		names = append(names, c.Name())
	}

	writeJSON(w, names)
}

type memCtrlDetails struct {
	Name          string `json:"name"`
	DataWidth     int    `json:"data_width"`
	TotalDepth    uint64 `json:"total_depth"`
	NumWidthBanks int    `json:"num_width_banks"`
	NumDepthBanks int    `json:"num_depth_banks"`
	PendingSize   int    `json:"pending_size"`
}

func (m *Monitor) componentDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	for _, c := range m.components {
		if c.Name() != name {
			continue
		}

		if ctrl, ok := c.(*memctrl.Comp); ok {
			cfg := ctrl.Controller().Config()
			writeJSON(w, memCtrlDetails{
				Name:          ctrl.Name(),
				DataWidth:     cfg.DataWidth,
				TotalDepth:    cfg.TotalDepth,
				NumWidthBanks: cfg.NumWidthBanks,
				NumDepthBanks: cfg.NumDepthBanks,
				PendingSize:   ctrl.Pending().Size(),
			})
			return
		}

		writeJSON(w, map[string]string{"name": name})
		return
	}

	http.NotFound(w, r)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
