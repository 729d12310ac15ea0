package tracing

import (
	"github.com/sarchlab/bankedmem/recording"
	"github.com/sarchlab/bankedmem/sim"
)

type accessTableEntry struct {
	ID         string
	Kind       string
	Address    uint64
	Row        int
	Local      uint64
	StartCycle uint64
	EndCycle   uint64
}

const accessTableName = "bankedmem_access"

// A DBTracer stores finished accesses into a data recorder, one row per
// transaction with its routing and start/end cycles.
type DBTracer struct {
	cycleTeller sim.CycleTeller
	backend     recording.DataRecorder

	inFlight map[string]accessTableEntry
}

// NewDBTracer creates a DBTracer writing to the given backend.
func NewDBTracer(
	cycleTeller sim.CycleTeller,
	backend recording.DataRecorder,
) *DBTracer {
	backend.CreateTable(accessTableName, accessTableEntry{})

	return &DBTracer{
		cycleTeller: cycleTeller,
		backend:     backend,
		inFlight:    make(map[string]accessTableEntry),
	}
}

// StartAccess marks the cycle a transaction starts being served.
func (t *DBTracer) StartAccess(access Access) {
	t.inFlight[access.ID] = accessTableEntry{
		ID:         access.ID,
		Kind:       access.Kind,
		Address:    access.Address,
		Row:        access.Row,
		Local:      access.Local,
		StartCycle: t.cycleTeller.CurrentCycle(),
	}
}

// EndAccess records the completed transaction.
func (t *DBTracer) EndAccess(rspTo string) {
	entry, found := t.inFlight[rspTo]
	if !found {
		return
	}

	delete(t.inFlight, rspTo)

	entry.EndCycle = t.cycleTeller.CurrentCycle()
	t.backend.InsertData(accessTableName, entry)
}
