// Package bridge connects boxes with push streams.
//
// [ToStream] turns a Box into a one-shot Observable. The Await functions go
// the other way: they subscribe, suspend the caller and resume with the first
// emitted value, after which the subscription is cancelled.
//
// A stream that completes without emitting does not resume the caller; the
// await then returns only when its context is done. Bound such awaits with a
// timeout or deadline.
package bridge
