// Package solo contains synchronous combinators over expected.Expected[T, E].
// They never mutate their input; each returns a fresh container.
//
// Highlights:
// - Succeed/Fail: construct Expected[T, E]
// - Then: continue with a function returning Expected[U, E] (and_then)
// - Map/MapErr: transform the success value or the error payload
// - OrElse: recover from a failure with a function returning Expected[T, G]
// - Try: call a function (U, error) and turn the error into a failure
// - Validate/AndValidate/FailOnError: turn a success into a failure on a check
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
