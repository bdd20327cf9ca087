package hasher

import (
	"context"
	"strings"
	"sync"
	"testing"

	authErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasher(t *testing.T, name string) *Hasher {
	t.Helper()
	h, err := New(name, "", 2)
	require.NoError(t, err)
	return h
}

func TestHasher_HashIsSaltedAndVerifies(t *testing.T) {
	for _, name := range []string{"bcrypt", "argon2id"} {
		t.Run(name, func(t *testing.T) {
			h := newHasher(t, name)
			ctx := context.Background()

			first, err := h.Hash(ctx, "secret1")
			require.NoError(t, err)
			second, err := h.Hash(ctx, "secret1")
			require.NoError(t, err)

			require.NotEqual(t, first, second)
			require.NotContains(t, first, "secret1")

			for _, hash := range []string{first, second} {
				ok, err := h.Verify(ctx, "secret1", hash)
				require.NoError(t, err)
				require.True(t, ok)
			}
		})
	}
}

func TestHasher_VerifyMismatch(t *testing.T) {
	h := newHasher(t, "bcrypt")
	ctx := context.Background()

	hash, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)

	for _, other := range []string{"secret2", "Secret1", "", "secret1 "} {
		ok, err := h.Verify(ctx, other, hash)
		require.NoError(t, err)
		require.False(t, ok, "password %q must not verify", other)
	}
}

func TestHasher_DefaultCost(t *testing.T) {
	h := newHasher(t, "bcrypt")
	hash, err := h.Hash(context.Background(), "secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHasher_VerifiesEitherAlgorithm(t *testing.T) {
	ctx := context.Background()
	legacy, err := newHasher(t, "argon2id").Hash(ctx, "secret1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(legacy, "$argon2id$"))

	ok, err := newHasher(t, "bcrypt").Verify(ctx, "secret1", legacy)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHasher_Pepper(t *testing.T) {
	ctx := context.Background()
	peppered, err := New("bcrypt", "pepper", 1)
	require.NoError(t, err)

	hash, err := peppered.Hash(ctx, "secret1")
	require.NoError(t, err)

	ok, err := peppered.Verify(ctx, "secret1", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = newHasher(t, "bcrypt").Verify(ctx, "secret1", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHasher_LongPasswordIsTruncatedForBcrypt(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("a", 80)

	for _, pepper := range []string{"", "pepper"} {
		h, err := New("bcrypt", pepper, 1)
		require.NoError(t, err)

		hash, err := h.Hash(ctx, long)
		require.NoError(t, err, "pepper %q", pepper)

		ok, err := h.Verify(ctx, long, hash)
		require.NoError(t, err)
		require.True(t, ok)

		// Only the first 72 bytes count, as in bcrypt itself.
		ok, err = h.Verify(ctx, strings.Repeat("a", 72)+"different", hash)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = h.Verify(ctx, strings.Repeat("a", 71)+"b", hash)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := newHasher(t, "bcrypt")
	ctx := context.Background()

	for _, bad := range []string{"", "plain-text", "$md5$abc", "$2a$10$short", "$argon2id$v=19$broken"} {
		ok, err := h.Verify(ctx, "secret1", bad)
		require.False(t, ok)
		require.Error(t, err, "hash %q", bad)
		require.True(t, authErrors.IsHashing(err))
	}
}

func TestHasher_CanceledContext(t *testing.T) {
	h := newHasher(t, "bcrypt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Drain the pool so Acquire has to wait on the canceled context.
	require.NoError(t, h.sem.Acquire(context.Background(), 2))
	defer h.sem.Release(2)

	_, err := h.Hash(ctx, "secret1")
	require.True(t, authErrors.IsHashing(err))
}

func TestHasher_Concurrent(t *testing.T) {
	h := newHasher(t, "bcrypt")
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 6)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := h.Hash(ctx, "secret1")
			if err == nil {
				_, err = h.Verify(ctx, "secret1", hash)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := New("md5", "", 1)
	require.Error(t, err)
}
