package entity

import (
	"github.com/google/uuid"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
)

const (
	// Size is the length of a UUID in bytes.
	Size = 16
	// StringLen is the length of the canonical string form.
	StringLen = 36
	// CStringLen is the buffer size needed for the canonical form plus a NUL terminator.
	CStringLen = StringLen + 1

	// Version4 is the version nibble stamped on generated values.
	Version4 uint8 = 4
	// VariantRFC4122 is the integer value of the variant bits 10.
	VariantRFC4122 uint8 = 2

	// RandomBits is the number of random bits in a generated version 4 UUID.
	RandomBits = 122
)

// UUID is a 128-bit value in RFC 4122 network byte order.
type UUID [Size]byte

// Nil is the all-zero UUID.
var Nil UUID

// New generates a version 4 UUID from src.
func New(src pkgentropy.Source) (UUID, error) {
	var u UUID
	if err := src.Fill(u[:]); err != nil {
		return Nil, pkgerror.NewEntropy(err)
	}

	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // variant 10

	return u, nil
}

// NewString generates a version 4 UUID from src in canonical form.
func NewString(src pkgentropy.Source) (string, error) {
	u, err := New(src)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// FromBytes wraps exactly 16 external bytes. The result is a plain 128-bit
// value and need not carry v4 version or variant bits.
func FromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != Size {
		return Nil, pkgerror.NewInvalidParameter("uuid must be 16 bytes")
	}
	copy(u[:], b)
	return u, nil
}

// Version returns the high nibble of byte 6.
func (u UUID) Version() uint8 {
	return u[6] >> 4
}

// Variant returns the top two bits of byte 8 read as an integer (0-3).
func (u UUID) Variant() uint8 {
	return u[8] >> 6
}

// IsV4 reports whether u carries the version 4 and RFC 4122 variant bits.
func (u UUID) IsV4() bool {
	return u.Version() == Version4 && u.Variant() == VariantRFC4122
}

// Bytes returns a copy of the raw bytes.
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// Equal reports whether u and o hold identical bytes.
func (u UUID) Equal(o UUID) bool {
	return u == o
}

// String returns the canonical lower-case 8-4-4-4-12 form.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the strict decoder.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Google converts u into a github.com/google/uuid value.
func (u UUID) Google() uuid.UUID {
	return uuid.UUID(u)
}

// FromGoogle converts a github.com/google/uuid value.
func FromGoogle(g uuid.UUID) UUID {
	return UUID(g)
}
