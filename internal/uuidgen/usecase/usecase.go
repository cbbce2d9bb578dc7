package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
)

// Defaults shared by the server config and the CLI flags.
const (
	DefaultMaxCount    = 100
	DefaultMaxRetries  = 2
	DefaultBaseBackoff = 10 * time.Millisecond
)

type Dependency struct {
	Entropy     pkgentropy.Source
	MaxCount    int
	MaxRetries  int
	BaseBackoff time.Duration
}

type Usecase struct {
	entropy     pkgentropy.Source
	maxCount    int
	maxRetries  int
	baseBackoff time.Duration
}

func New(dep Dependency) *Usecase {
	entropy := dep.Entropy
	if entropy == nil {
		entropy = pkgentropy.System{}
	}

	maxCount := dep.MaxCount
	if maxCount < 1 {
		maxCount = DefaultMaxCount
	}

	maxRetries := dep.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := dep.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = DefaultBaseBackoff
	}

	return &Usecase{
		entropy:     entropy,
		maxCount:    maxCount,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

// Generate returns count fresh version 4 UUIDs. Entropy failures are retried
// with exponential backoff up to the configured limit; every other failure is
// returned immediately.
func (u *Usecase) Generate(ctx context.Context, count int) ([]entity.UUID, error) {
	if count < 1 || count > u.maxCount {
		return nil, pkgerror.NewInvalidParameter(fmt.Sprintf("count must be between 1 and %d", u.maxCount))
	}

	out := make([]entity.UUID, 0, count)
	for i := 0; i < count; i++ {
		id, err := u.generateOne(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, nil
}

func (u *Usecase) generateOne(ctx context.Context) (entity.UUID, error) {
	backoff := u.baseBackoff
	for attempt := 0; ; attempt++ {
		id, err := entity.New(u.entropy)
		if err == nil {
			return id, nil
		}

		if !pkgerror.CodeOf(err).Retryable() || attempt == u.maxRetries {
			slog.ErrorContext(ctx, "failed to generate uuid", "attempts", attempt+1, "error", err)
			return entity.Nil, err
		}

		slog.WarnContext(ctx, "entropy read failed, retrying", "attempt", attempt+1, "backoff", backoff, "error", err)
		if err := sleep(ctx, backoff); err != nil {
			return entity.Nil, pkgerror.NewEntropy(err)
		}
		backoff *= 2
	}
}

// Inspect decodes raw and reports its version, variant and field layout.
func (u *Usecase) Inspect(ctx context.Context, raw string) (InspectResult, error) {
	id, err := entity.Parse(raw)
	if err != nil {
		slog.DebugContext(ctx, "rejected uuid", "input", raw, "error", err)
		return InspectResult{}, err
	}

	return InspectResult{
		UUID:    id,
		Version: id.Version(),
		Variant: id.Variant(),
		IsV4:    id.IsV4(),
		Layout:  id.Layout(),
	}, nil
}

// Compare decodes both inputs and reports whether they are byte-identical.
func (u *Usecase) Compare(ctx context.Context, a, b string) (bool, error) {
	left, err := entity.Parse(a)
	if err != nil {
		return false, fmt.Errorf("first uuid: %w", err)
	}

	right, err := entity.Parse(b)
	if err != nil {
		return false, fmt.Errorf("second uuid: %w", err)
	}

	return left.Equal(right), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.Join(pkgentropy.ErrEntropy, ctx.Err())
	}
}
