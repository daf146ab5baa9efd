// Package screens contains the farm screens mounted by core.Model and the
// overlay modals rendered above them.
//
// Allowed here:
// - core.Screen implementations, one per core.ScreenID, and their local state
// - modal flows that satisfy core.Modal (command palette, help)
// - the production registry wiring every screen factory
//
// Not allowed here:
// - navigation state ownership or key registry ownership
// - low-level widget/layout primitives
package screens
