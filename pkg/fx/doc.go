// Package fx contains the Box value wrapper and the functions that transform
// and combine boxes.
//
// A Box[T] holds exactly one value and never changes. Go has no generic
// methods, so the transformation algebra is a set of free functions:
// - Map/TryMap/MapAsync: transform the payload, possibly failing or suspending
// - CompactMap/TryCompactMap/CompactMapAsync: strict optional transforms that
//   fail with *UnwrapError when no value is produced
// - MaybeMap/MaybeMapAsync: permissive optional transforms that keep the nil
// - Combine/Combine3 and Merge/Merge3 (Try, Async): pair boxes, optionally
//   merging them in the same step
//
// Errors returned by caller supplied functions are passed through unchanged.
//
// Result[T] is the railway carrier (Box, failure or cancellation) used by the
// chain, solo, mass and flow packages.
package fx
