// Package memctrl wraps the banking controller into a transaction-level
// component. Callers schedule read and write transactions; the component
// drives the controller one request per cycle and delivers responses
// through a handler.
package memctrl

import "github.com/sarchlab/bankedmem/sim"

// AccessReq abstracts read and write transactions sent to the controller.
type AccessReq interface {
	ReqID() string
	GetAddress() uint64
}

// AccessRsp abstracts the responses the controller produces.
type AccessRsp interface {
	RspID() string

	// GetRspTo returns the ID of the request the response answers.
	GetRspTo() string
}

// A ReadReq requests one entry of the logical memory.
type ReadReq struct {
	ID      string
	Address uint64
}

// ReqID returns the ID of the request.
func (r *ReadReq) ReqID() string { return r.ID }

// GetAddress returns the entry address the request is accessing.
func (r *ReadReq) GetAddress() uint64 { return r.Address }

// ReadReqBuilder can build read requests.
type ReadReqBuilder struct {
	address uint64
}

// WithAddress sets the entry address of the request to build.
func (b ReadReqBuilder) WithAddress(address uint64) ReadReqBuilder {
	b.address = address
	return b
}

// Build creates a new ReadReq.
func (b ReadReqBuilder) Build() *ReadReq {
	return &ReadReq{
		ID:      sim.GetIDGenerator().Generate(),
		Address: b.address,
	}
}

// A WriteReq writes one entry of the logical memory. A nil DirtyMask
// writes every byte.
type WriteReq struct {
	ID        string
	Address   uint64
	Data      []byte
	DirtyMask []bool
}

// ReqID returns the ID of the request.
func (r *WriteReq) ReqID() string { return r.ID }

// GetAddress returns the entry address the request is accessing.
func (r *WriteReq) GetAddress() uint64 { return r.Address }

// WriteReqBuilder can build write requests.
type WriteReqBuilder struct {
	address   uint64
	data      []byte
	dirtyMask []bool
}

// WithAddress sets the entry address of the request to build.
func (b WriteReqBuilder) WithAddress(address uint64) WriteReqBuilder {
	b.address = address
	return b
}

// WithData sets the data of the request to build.
func (b WriteReqBuilder) WithData(data []byte) WriteReqBuilder {
	b.data = data
	return b
}

// WithDirtyMask sets the byte mask of the request to build.
func (b WriteReqBuilder) WithDirtyMask(mask []bool) WriteReqBuilder {
	b.dirtyMask = mask
	return b
}

// Build creates a new WriteReq.
func (b WriteReqBuilder) Build() *WriteReq {
	return &WriteReq{
		ID:        sim.GetIDGenerator().Generate(),
		Address:   b.address,
		Data:      b.data,
		DirtyMask: b.dirtyMask,
	}
}

// A DataReadyRsp carries the data loaded by a read request.
type DataReadyRsp struct {
	ID        string
	RespondTo string
	Data      []byte
}

// RspID returns the ID of the response.
func (r *DataReadyRsp) RspID() string { return r.ID }

// GetRspTo returns the ID of the request the response answers.
func (r *DataReadyRsp) GetRspTo() string { return r.RespondTo }

// A WriteDoneRsp marks a write request as committed.
type WriteDoneRsp struct {
	ID        string
	RespondTo string
}

// RspID returns the ID of the response.
func (r *WriteDoneRsp) RspID() string { return r.ID }

// GetRspTo returns the ID of the request the response answers.
func (r *WriteDoneRsp) GetRspTo() string { return r.RespondTo }

func newDataReadyRsp(rspTo string, data []byte) *DataReadyRsp {
	return &DataReadyRsp{
		ID:        sim.GetIDGenerator().Generate(),
		RespondTo: rspTo,
		Data:      data,
	}
}

func newWriteDoneRsp(rspTo string) *WriteDoneRsp {
	return &WriteDoneRsp{
		ID:        sim.GetIDGenerator().Generate(),
		RespondTo: rspTo,
	}
}
