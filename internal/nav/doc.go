// Package nav provides the generic routers the root controller is built on:
// a never-empty navigation stack, a single-slot overlay, and a synchronous
// observable value used to publish both.
//
// Nothing in this package is safe for concurrent use. All mutations are
// expected to happen on the single goroutine that drives the UI.
package nav
