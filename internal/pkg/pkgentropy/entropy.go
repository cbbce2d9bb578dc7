package pkgentropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrEntropy is wrapped by every error returned from Fill.
var ErrEntropy = errors.New("entropy source failure")

// Source fills byte slices with cryptographically secure random data.
type Source interface {
	// Fill writes exactly len(p) random bytes into p. On error the contents
	// of p are unspecified and must not be used.
	Fill(p []byte) error
}

// System is the OS-backed Source. The zero value is ready to use.
type System struct{}

// Fill implements Source using crypto/rand.
func (System) Fill(p []byte) error {
	return fill(rand.Reader, p)
}

// Reader is a Source backed by an arbitrary reader. It exists so failure
// paths can be exercised; production code uses System.
type Reader struct {
	R io.Reader
}

// Fill implements Source.
func (r Reader) Fill(p []byte) error {
	if r.R == nil {
		return fmt.Errorf("%w: no reader configured", ErrEntropy)
	}
	return fill(r.R, p)
}

func fill(r io.Reader, p []byte) error {
	n, err := io.ReadFull(r, p)
	if err != nil {
		return fmt.Errorf("%w: read %d of %d bytes: %w", ErrEntropy, n, len(p), err)
	}
	return nil
}
