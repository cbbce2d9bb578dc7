package boundary

import (
	"unsafe"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
)

// entropy is stateless; it is a variable only so tests can inject failures.
var entropy pkgentropy.Source = pkgentropy.System{}

// Generate writes a fresh version 4 UUID into dst.
func Generate(dst *[entity.Size]byte) (code pkgerror.Code) {
	defer guard(&code)

	if dst == nil {
		return pkgerror.CodeInvalidParameter
	}

	u, err := entity.New(entropy)
	if err != nil {
		return pkgerror.CodeOf(err)
	}

	*dst = u
	return pkgerror.CodeSuccess
}

// ToString writes the canonical form of src plus a NUL terminator into the
// size-byte buffer starting at dst.
func ToString(src *[entity.Size]byte, dst *byte, size uintptr) (code pkgerror.Code) {
	defer guard(&code)

	if src == nil || dst == nil {
		return pkgerror.CodeInvalidParameter
	}
	if size < entity.CStringLen {
		return pkgerror.CodeBufferTooSmall
	}

	out := unsafe.Slice(dst, entity.CStringLen)
	n := copy(out, entity.UUID(*src).String())
	if n != entity.StringLen {
		return pkgerror.CodeUnknown
	}
	out[n] = 0

	return pkgerror.CodeSuccess
}

// GetInfo writes the version nibble and variant value of src.
func GetInfo(src *[entity.Size]byte, version, variant *uint8) (code pkgerror.Code) {
	defer guard(&code)

	if src == nil || version == nil || variant == nil {
		return pkgerror.CodeInvalidParameter
	}

	u := entity.UUID(*src)
	*version = u.Version()
	*variant = u.Variant()

	return pkgerror.CodeSuccess
}

// Compare writes 1 into equal when a and b hold identical bytes, else 0.
func Compare(a, b *[entity.Size]byte, equal *uint8) (code pkgerror.Code) {
	defer guard(&code)

	if a == nil || b == nil || equal == nil {
		return pkgerror.CodeInvalidParameter
	}

	if entity.UUID(*a).Equal(entity.UUID(*b)) {
		*equal = 1
	} else {
		*equal = 0
	}

	return pkgerror.CodeSuccess
}

func guard(code *pkgerror.Code) {
	if r := recover(); r != nil {
		*code = pkgerror.CodeUnknown
	}
}
