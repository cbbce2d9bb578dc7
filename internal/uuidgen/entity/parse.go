package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
)

// Parse decodes the canonical form produced by String. Braces, URN prefixes,
// upper-case digits and any other grouping are rejected.
func Parse(s string) (UUID, error) {
	if len(s) != StringLen {
		return Nil, pkgerror.NewInvalidParameter(fmt.Sprintf("uuid must be %d characters, got %d", StringLen, len(s)))
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return Nil, pkgerror.NewInvalidParameter(fmt.Sprintf("expected '-' at position %d", i))
			}
		default:
			if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
				return Nil, pkgerror.NewInvalidParameter(fmt.Sprintf("invalid character %q at position %d", c, i))
			}
		}
	}

	g, err := uuid.Parse(s)
	if err != nil {
		return Nil, pkgerror.NewUnknown(err)
	}

	return FromGoogle(g), nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}
