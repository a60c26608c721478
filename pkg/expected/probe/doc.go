// Package probe provides instrumented payloads for exercising the lifecycle
// guarantees of expected.Expected and expected.Void.
//
// Every instance is registered in a Ledger under its own uuid when it is
// built and unregistered when it is released, so tests can check that no
// payload leaks and none is released twice. The Ledger can also make the
// next clone, move or build fail.
//
// - Sturdy: copy may fail, move never fails
// - Fragile: copy and move may both fail
package probe
