// Package chain provides a fluent wrapper around expected.Expected[T, E]
// for building synchronous chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a container or a value
// - Then: switch to a new Expected[U, E] via a function
// - Map: transform the successful value (T -> U)
// - OrElse: recover from a failure
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
