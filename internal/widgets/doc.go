// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, lists, charts)
//
// Not allowed here:
// - key handling, session or tab state transitions
package widgets
