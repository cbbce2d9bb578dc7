// Package boundary is the fixed calling contract foreign callers use.
//
// Four operations take raw fixed-size buffers and return a pkgerror.Code:
//
//	Generate(dst)                 fresh version 4 UUID into a 16-byte buffer
//	ToString(src, dst, size)      36-char canonical form + NUL, size >= 37
//	GetInfo(src, version, variant)
//	Compare(a, b, equal)          1 when byte-identical, else 0
//
// Every operation validates all pointer and size preconditions before touching
// memory and writes nothing when it returns anything other than CodeSuccess.
// Panics never escape: they are reported as CodeUnknown. The cgo exports in
// cmd/libuuidgen are thin casts over these functions.
package boundary
