package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgroutine"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
)

// SelfTest generates count UUIDs spread over workers goroutines and checks
// that each one is a well-formed v4 value that round-trips through the
// canonical codec and that no value repeats.
func (u *Usecase) SelfTest(ctx context.Context, count, workers int) (SelfTestResult, error) {
	if count < 1 {
		return SelfTestResult{}, pkgerror.NewInvalidParameter("count must be positive")
	}
	if workers < 1 {
		return SelfTestResult{}, pkgerror.NewInvalidParameter("workers must be positive")
	}
	if workers > count {
		workers = count
	}

	var (
		mu     sync.Mutex
		seen   = make(map[entity.UUID]struct{}, count)
		result = SelfTestResult{Requested: count, Workers: workers}
	)

	start := time.Now()
	mgr := pkgroutine.NewManager(workers)
	for w := 0; w < workers; w++ {
		share := count / workers
		if w < count%workers {
			share++
		}

		mgr.Go(ctx, func(ctx context.Context) error {
			for i := 0; i < share; i++ {
				id, err := u.generateOne(ctx)
				if err != nil {
					return err
				}

				malformed := !wellFormed(id)

				mu.Lock()
				result.Generated++
				if malformed {
					result.Malformed++
				}
				if _, dup := seen[id]; dup {
					result.Duplicates++
				} else {
					seen[id] = struct{}{}
				}
				mu.Unlock()
			}
			return nil
		})
	}

	err := mgr.Wait()
	result.Elapsed = time.Since(start)

	slog.InfoContext(ctx, "self test finished",
		"requested", result.Requested,
		"generated", result.Generated,
		"duplicates", result.Duplicates,
		"malformed", result.Malformed,
		"workers", result.Workers,
		"elapsed", result.Elapsed,
	)

	if err != nil {
		return result, err
	}

	return result, nil
}

func wellFormed(id entity.UUID) bool {
	if !id.IsV4() {
		return false
	}
	back, err := entity.Parse(id.String())
	return err == nil && back == id
}
