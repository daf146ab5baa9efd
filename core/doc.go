// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the screen registry, navigation controller and route invariants
// - message contracts, command and key registries
// - per-screen state machines (stepper, device list, choice, slider)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
package core
