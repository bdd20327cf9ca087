package hasher

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	authErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/hasher"
	"github.com/Miraines/StudyPlanner/backend/internal/infra/config"
	"github.com/alexedwards/argon2id"
	"golang.org/x/sync/semaphore"
)

var ErrUnknownHashFormat = errors.New("unknown hash format")

// Hasher hashes with one algorithm and verifies hashes written by any of the
// supported ones. At most workers hash computations run at the same time.
type Hasher struct {
	primary algorithm
	known   []algorithm
	pepper  string
	sem     *semaphore.Weighted
}

var _ hasher.PasswordHasher = (*Hasher)(nil)

func New(name, pepper string, workers int) (*Hasher, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bc := bcryptAlgo{}
	ar := argon2idAlgo{params: argon2id.DefaultParams}

	var primary algorithm
	switch name {
	case config.HasherBcrypt, "":
		primary = bc
	case config.HasherArgon2id:
		primary = ar
	default:
		return nil, fmt.Errorf("unsupported password hasher %q", name)
	}

	return &Hasher{
		primary: primary,
		known:   []algorithm{bc, ar},
		pepper:  pepper,
		sem:     semaphore.NewWeighted(int64(workers)),
	}, nil
}

func NewFromConfig(cfg *config.Config) (*Hasher, error) {
	return New(cfg.PasswordHasher, cfg.PasswordPepper, 0)
}

func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", authErrors.WrapHashing(err, "acquire hash worker")
	}
	defer h.sem.Release(1)

	out, err := h.primary.hash(plaintext + h.pepper)
	if err != nil {
		return "", authErrors.WrapHashing(err, "hash")
	}
	return out, nil
}

func (h *Hasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	algo := h.lookup(hash)
	if algo == nil {
		return false, authErrors.WrapHashing(ErrUnknownHashFormat, "verify")
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, authErrors.WrapHashing(err, "acquire hash worker")
	}
	defer h.sem.Release(1)

	ok, err := algo.verify(plaintext+h.pepper, hash)
	if err != nil {
		return false, authErrors.WrapHashing(err, "verify")
	}
	return ok, nil
}

func (h *Hasher) lookup(hash string) algorithm {
	for _, a := range h.known {
		if a.owns(hash) {
			return a
		}
	}
	return nil
}
