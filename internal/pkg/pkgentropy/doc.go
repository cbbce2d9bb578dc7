// Package pkgentropy supplies cryptographically secure random bytes.
//
// Every call reads fresh bytes from the operating system's CSPRNG. Nothing is
// buffered or reused between calls and callers cannot seed the source.
package pkgentropy
