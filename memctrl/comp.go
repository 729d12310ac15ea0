package memctrl

import (
	"log"

	"github.com/sarchlab/bankedmem/banking"
	"github.com/sarchlab/bankedmem/sim"
)

// HookPosReqAccept marks when the component starts serving a transaction.
var HookPosReqAccept = &sim.HookPos{Name: "ReqAccept"}

// HookPosReqComplete marks when a response leaves the component.
var HookPosReqComplete = &sim.HookPos{Name: "ReqComplete"}

// A ResponseHandler receives the responses the component produces.
type ResponseHandler func(rsp AccessRsp)

// Comp drives a banking.Controller at one transaction per cycle. Reads
// complete one cycle after they are issued, matching the bank read latency;
// writes complete on the cycle they are issued.
type Comp struct {
	sim.HookableBase

	name string

	ctrl      *banking.Controller
	pending   sim.Buffer
	respondTo ResponseHandler

	// inFlight is the read issued on the previous edge, if any. Its data
	// is the controller output on the current edge.
	inFlight *ReadReq
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// Controller exposes the wrapped banking controller.
func (c *Comp) Controller() *banking.Controller {
	return c.ctrl
}

// Pending exposes the transaction queue, mainly for monitoring.
func (c *Comp) Pending() sim.Buffer {
	return c.pending
}

// Schedule queues a transaction. It returns false if the queue is full and
// the transaction was not accepted.
func (c *Comp) Schedule(req AccessReq) bool {
	if !c.pending.CanPush() {
		return false
	}

	c.pending.Push(req)

	return true
}

// Tick applies one clock edge: it issues at most one queued transaction
// into the controller and delivers the response of the read issued one
// cycle earlier.
func (c *Comp) Tick() bool {
	var breq banking.Request
	var read *ReadReq
	var write *WriteReq

	if reqIfc := c.pending.Pop(); reqIfc != nil {
		switch req := reqIfc.(type) {
		case *ReadReq:
			read = req
			breq = banking.Request{Valid: true, Address: req.Address}
		case *WriteReq:
			write = req
			breq = c.writeRequest(req)
		default:
			log.Panicf("memctrl: unsupported transaction type %T", reqIfc)
		}

		if c.NumHooks() > 0 {
			c.InvokeHook(sim.HookCtx{
				Domain: c,
				Pos:    HookPosReqAccept,
				Item:   reqIfc,
			})
		}
	}

	result := c.ctrl.Tick(breq)

	madeProgress := false

	if c.inFlight != nil {
		data := make([]byte, len(result))
		copy(data, result)

		c.respond(newDataReadyRsp(c.inFlight.ID, data))
		c.inFlight = nil
		madeProgress = true
	}

	if read != nil {
		c.inFlight = read
		madeProgress = true
	}

	if write != nil {
		c.respond(newWriteDoneRsp(write.ID))
		madeProgress = true
	}

	return madeProgress
}

func (c *Comp) writeRequest(req *WriteReq) banking.Request {
	maskWidth := c.ctrl.Config().WriteMaskWidth()

	if len(req.Data) != maskWidth {
		log.Panicf("memctrl: write carries %d bytes, bus is %d bytes wide",
			len(req.Data), maskWidth)
	}

	mask := req.DirtyMask
	if mask == nil {
		mask = make([]bool, maskWidth)
		for i := range mask {
			mask[i] = true
		}
	} else if len(mask) != maskWidth {
		log.Panicf("memctrl: dirty mask has %d bits, bus is %d bytes wide",
			len(mask), maskWidth)
	}

	return banking.Request{
		Valid:     true,
		Write:     true,
		Address:   req.Address,
		Data:      req.Data,
		WriteMask: mask,
	}
}

func (c *Comp) respond(rsp AccessRsp) {
	if c.NumHooks() > 0 {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosReqComplete,
			Item:   rsp,
		})
	}

	if c.respondTo != nil {
		c.respondTo(rsp)
	}
}
