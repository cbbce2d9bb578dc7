// Package entity holds the UUID value type: version 4 generation, the
// canonical string codec, equality and the version/variant projections.
//
// Values are plain arrays with value semantics. Nothing in this package logs,
// retries or keeps state between calls.
package entity
