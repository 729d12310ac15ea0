package tracing

import (
	"github.com/sarchlab/bankedmem/memctrl"
	"github.com/sarchlab/bankedmem/sim"
)

// CollectAccesses lets the tracer collect the accesses served by a memory
// controller component.
func CollectAccesses(comp *memctrl.Comp, tracer Tracer) {
	comp.AcceptHook(&traceHook{t: tracer})
}

// A traceHook translates component hook invocations into tracer calls.
type traceHook struct {
	t Tracer
}

func (h *traceHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case memctrl.HookPosReqAccept:
		comp := ctx.Domain.(*memctrl.Comp)
		req := ctx.Item.(memctrl.AccessReq)

		kind := "read"
		if _, isWrite := req.(*memctrl.WriteReq); isWrite {
			kind = "write"
		}

		row, local := comp.Controller().Config().
			DecomposeAddress(req.GetAddress())

		h.t.StartAccess(Access{
			ID:      req.ReqID(),
			Kind:    kind,
			Address: req.GetAddress(),
			Row:     row,
			Local:   local,
		})
	case memctrl.HookPosReqComplete:
		rsp := ctx.Item.(memctrl.AccessRsp)
		h.t.EndAccess(rsp.GetRspTo())
	}
}
