// Package expected provides Expected[T, E], a container holding either a
// success value of type T or an error payload of type E, never both and
// never neither.
//
// The container keeps exactly one payload live at every observable point,
// including after a payload copy or move fails halfway through an
// assignment or swap:
// - Success/Failure/New: construct a container (the zero value is a success
//   holding T's zero value)
// - Copy/Move/Convert: build a container from another one
// - Assign*/Emplace/Swap: mutate a container transactionally
// - HasValue/Value/Err/ValueOr: observe it
// - Equal/EqualValue/EqualError: compare it
//
// Payloads take part in the lifecycle through optional capabilities
// (Cloner, TryCloner, Mover, TryMover, Releaser). A payload implementing
// none of them is copied and moved by plain assignment and never fails.
//
// Void[E] is the same state machine for operations that carry no success
// value. Unexpected[E] wraps an error payload so that building a failure is
// never confused with building a success.
package expected
