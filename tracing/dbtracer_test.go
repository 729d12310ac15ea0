package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeCycleTeller struct {
	cycle uint64
}

func (t *fakeCycleTeller) CurrentCycle() uint64 {
	return t.cycle
}

type fakeRecorder struct {
	tables   []string
	inserted []any
	flushed  bool
}

func (r *fakeRecorder) CreateTable(tableName string, sampleEntry any) {
	r.tables = append(r.tables, tableName)
}

func (r *fakeRecorder) InsertData(tableName string, entry any) {
	r.inserted = append(r.inserted, entry)
}

func (r *fakeRecorder) ListTables() []string {
	return r.tables
}

func (r *fakeRecorder) Flush() {
	r.flushed = true
}

func (r *fakeRecorder) Close() {}

var _ = Describe("DBTracer", func() {
	var (
		teller   *fakeCycleTeller
		recorder *fakeRecorder
		tracer   *DBTracer
	)

	BeforeEach(func() {
		teller = &fakeCycleTeller{}
		recorder = &fakeRecorder{}
		tracer = NewDBTracer(teller, recorder)
	})

	It("should create the access table up front", func() {
		Expect(recorder.tables).To(Equal([]string{accessTableName}))
	})

	It("should record one row per finished access", func() {
		teller.cycle = 4
		tracer.StartAccess(Access{
			ID:      "r1",
			Kind:    "read",
			Address: 0b0110,
			Row:     2,
			Local:   1,
		})

		Expect(recorder.inserted).To(BeEmpty())

		teller.cycle = 5
		tracer.EndAccess("r1")

		Expect(recorder.inserted).To(HaveLen(1))
		Expect(recorder.inserted[0]).To(Equal(accessTableEntry{
			ID:         "r1",
			Kind:       "read",
			Address:    0b0110,
			Row:        2,
			Local:      1,
			StartCycle: 4,
			EndCycle:   5,
		}))
	})

	It("should ignore responses it never saw start", func() {
		tracer.EndAccess("unknown")

		Expect(recorder.inserted).To(BeEmpty())
	})
})
