// Package tracing collects the accesses a memory controller serves. A
// tracer is attached to a component through its hooks, so untraced
// simulations pay nothing.
package tracing

import "github.com/sarchlab/bankedmem/sim"

// An Access describes one transaction served by a controller, including
// where the banking logic routed it.
type Access struct {
	ID      string
	Kind    string
	Address uint64
	Row     int
	Local   uint64
}

// A Tracer can collect access traces.
type Tracer interface {
	// StartAccess marks the cycle a transaction starts being served.
	StartAccess(access Access)

	// EndAccess marks the cycle the response for the given request leaves
	// the component.
	EndAccess(rspTo string)
}

// NamedHookable is a named object that accepts hooks.
type NamedHookable interface {
	sim.Named
	sim.Hookable
}
