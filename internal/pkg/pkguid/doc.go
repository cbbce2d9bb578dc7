// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase uses the StringID interface to avoid hard-coding a specific UID
// strategy. UUID wraps whatever constructor the composition root injects.
package pkguid
