package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
)

type flakySource struct {
	mu       sync.Mutex
	failures int
	calls    int
}

func (s *flakySource) Fill(p []byte) error {
	s.mu.Lock()
	s.calls++
	fail := s.calls <= s.failures
	s.mu.Unlock()

	if fail {
		return errors.New("device not ready")
	}
	return pkgentropy.System{}.Fill(p)
}

func newTestUsecase(src pkgentropy.Source, retries int) *Usecase {
	return New(Dependency{
		Entropy:     src,
		MaxCount:    10,
		MaxRetries:  retries,
		BaseBackoff: time.Millisecond,
	})
}

func TestNewDefaults(t *testing.T) {
	uc := New(Dependency{MaxRetries: -1})
	if uc.maxCount != DefaultMaxCount {
		t.Fatalf("expected default max count, got %d", uc.maxCount)
	}
	if uc.maxRetries != 0 {
		t.Fatalf("expected retries clamped to 0, got %d", uc.maxRetries)
	}
	if uc.baseBackoff != DefaultBaseBackoff {
		t.Fatalf("expected default backoff, got %v", uc.baseBackoff)
	}
	if _, ok := uc.entropy.(pkgentropy.System); !ok {
		t.Fatalf("expected system entropy, got %T", uc.entropy)
	}
}

func TestGenerate(t *testing.T) {
	uc := newTestUsecase(pkgentropy.System{}, 0)

	ids, err := uc.Generate(context.Background(), 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ids) != 10 {
		t.Fatalf("expected 10 ids, got %d", len(ids))
	}

	seen := make(map[entity.UUID]struct{}, len(ids))
	for _, id := range ids {
		if !id.IsV4() {
			t.Fatalf("expected v4 uuid, got %s", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate uuid %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestGenerateCountBounds(t *testing.T) {
	uc := newTestUsecase(pkgentropy.System{}, 0)

	for _, count := range []int{0, -1, 11} {
		if _, err := uc.Generate(context.Background(), count); pkgerror.CodeOf(err) != pkgerror.CodeInvalidParameter {
			t.Fatalf("count=%d: expected invalid parameter, got %v", count, err)
		}
	}
}

func TestGenerateRetriesEntropyFailure(t *testing.T) {
	src := &flakySource{failures: 2}
	uc := newTestUsecase(src, 2)

	ids, err := uc.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ids) != 1 || !ids[0].IsV4() {
		t.Fatalf("unexpected result %v", ids)
	}
	if src.calls != 3 {
		t.Fatalf("expected 3 entropy calls, got %d", src.calls)
	}
}

func TestGenerateGivesUpAfterRetries(t *testing.T) {
	src := &flakySource{failures: 5}
	uc := newTestUsecase(src, 1)

	_, err := uc.Generate(context.Background(), 1)
	if got := pkgerror.CodeOf(err); got != pkgerror.CodeEntropyFailure {
		t.Fatalf("expected entropy failure, got %v (%v)", got, err)
	}
	if src.calls != 2 {
		t.Fatalf("expected 2 entropy calls, got %d", src.calls)
	}
}

func TestGenerateCanceledDuringBackoff(t *testing.T) {
	src := &flakySource{failures: 100}
	uc := New(Dependency{Entropy: src, MaxRetries: 10, BaseBackoff: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := uc.Generate(ctx, 1)
	if got := pkgerror.CodeOf(err); got != pkgerror.CodeEntropyFailure {
		t.Fatalf("expected entropy failure, got %v", got)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded in chain, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	uc := newTestUsecase(pkgentropy.System{}, 0)

	res, err := uc.Inspect(context.Background(), "12345678-9abc-4def-8123-456789abcdef")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if res.Version != 4 || res.Variant != 2 || !res.IsV4 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Layout.Node != 0x456789abcdef {
		t.Fatalf("unexpected node %x", res.Layout.Node)
	}

	if _, err := uc.Inspect(context.Background(), "12345678-9ABC-4DEF-8123-456789ABCDEF"); pkgerror.CodeOf(err) != pkgerror.CodeInvalidParameter {
		t.Fatalf("expected invalid parameter for upper case, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	uc := newTestUsecase(pkgentropy.System{}, 0)
	a := "12345678-9abc-4def-8123-456789abcdef"
	b := "12345678-9abc-4def-8123-456789abcdee"

	if eq, err := uc.Compare(context.Background(), a, a); err != nil || !eq {
		t.Fatalf("expected equal, got %v, %v", eq, err)
	}
	if eq, err := uc.Compare(context.Background(), a, b); err != nil || eq {
		t.Fatalf("expected unequal, got %v, %v", eq, err)
	}
	if _, err := uc.Compare(context.Background(), a, "zz"); pkgerror.CodeOf(err) != pkgerror.CodeInvalidParameter {
		t.Fatalf("expected invalid parameter, got %v", err)
	}
}

func TestSelfTest(t *testing.T) {
	uc := newTestUsecase(pkgentropy.System{}, 0)

	res, err := uc.SelfTest(context.Background(), 5000, 8)
	if err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
	if !res.Passed() {
		t.Fatalf("self test failed: %+v", res)
	}
	if res.Generated != 5000 || res.Workers != 8 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSelfTestClampsWorkers(t *testing.T) {
	uc := newTestUsecase(pkgentropy.System{}, 0)

	res, err := uc.SelfTest(context.Background(), 3, 16)
	if err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
	if res.Workers != 3 || res.Generated != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSelfTestInvalidInput(t *testing.T) {
	uc := newTestUsecase(pkgentropy.System{}, 0)

	if _, err := uc.SelfTest(context.Background(), 0, 1); pkgerror.CodeOf(err) != pkgerror.CodeInvalidParameter {
		t.Fatalf("expected invalid parameter for count, got %v", err)
	}
	if _, err := uc.SelfTest(context.Background(), 1, 0); pkgerror.CodeOf(err) != pkgerror.CodeInvalidParameter {
		t.Fatalf("expected invalid parameter for workers, got %v", err)
	}
}

func TestSelfTestEntropyFailure(t *testing.T) {
	uc := newTestUsecase(&flakySource{failures: 1000}, 0)

	res, err := uc.SelfTest(context.Background(), 10, 2)
	if got := pkgerror.CodeOf(err); got != pkgerror.CodeEntropyFailure {
		t.Fatalf("expected entropy failure, got %v (%v)", got, err)
	}
	if res.Passed() {
		t.Fatalf("expected failed result, got %+v", res)
	}
}

func TestWellFormed(t *testing.T) {
	if wellFormed(entity.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")) {
		t.Fatalf("expected version 1 uuid to be rejected")
	}
	if !wellFormed(entity.MustParse("00000000-0000-4000-8000-000000000000")) {
		t.Fatalf("expected stamped zero uuid to be accepted")
	}
}
