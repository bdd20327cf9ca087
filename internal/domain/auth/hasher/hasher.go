package hasher

import "context"

type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports (false, nil) on a routine mismatch and an error only when
	// the stored hash cannot be parsed.
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}
