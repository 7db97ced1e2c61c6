// Package flow adds box-returning operators to streams.
//
// Every operator returns a new stream.Observable. The synchronous variants
// run the transform inline for each element and keep the upstream order.
// The Async variants resolve each element as an independent future on
// core.GetWorkerMaxCount(ctx, DefaultLines) worker lines; their output order
// follows completion, not arrival.
//
// Failure handling differs per operator:
// - Map, CompactMap: the transform cannot fail
// - TryMap, TryCompactMap: the first error terminates the output stream with
//   that error and cancels the upstream subscription
// - CompactTryMap: errors are dropped, reported through core.Config.OnDrop
//   and a debug log record, and the stream goes on
//
// The Compact variants take transforms returning a box of pointers and
// silently drop elements whose box holds a nil pointer.
// An upstream failure always terminates the output with the same error.
package flow
