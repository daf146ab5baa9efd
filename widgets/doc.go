// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, charts, gauges, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation state, scope logic, or farm data lookup
package widgets
