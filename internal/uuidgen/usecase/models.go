package usecase

import (
	"time"

	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
)

type InspectResult struct {
	UUID    entity.UUID
	Version uint8
	Variant uint8
	IsV4    bool
	Layout  entity.Layout
}

type SelfTestResult struct {
	Requested  int
	Generated  int
	Duplicates int
	Malformed  int
	Workers    int
	Elapsed    time.Duration
}

// Passed reports whether every generated value was a unique, well-formed v4 UUID.
func (r SelfTestResult) Passed() bool {
	return r.Generated == r.Requested && r.Duplicates == 0 && r.Malformed == 0
}
