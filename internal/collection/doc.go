// Package collection binds to a collection root directory, lists its pieces,
// opens piece handles, and provides the advisory lock mutating tooling takes
// to enforce the single-writer assumption of the piece model.
package collection
