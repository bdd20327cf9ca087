package hasher

import (
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

type algorithm interface {
	hash(plaintext string) (string, error)
	verify(plaintext, hash string) (bool, error)
	owns(hash string) bool
}

// bcrypt only reads the first 72 bytes of its input.
const bcryptMaxInput = 72

// bcryptAlgo always uses bcrypt.DefaultCost. Longer inputs are cut to
// bcryptMaxInput bytes on both paths instead of being rejected.
type bcryptAlgo struct{}

func bcryptInput(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > bcryptMaxInput {
		b = b[:bcryptMaxInput]
	}
	return b
}

func (bcryptAlgo) hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(bcryptInput(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (bcryptAlgo) verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

func (bcryptAlgo) owns(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

type argon2idAlgo struct {
	params *argon2id.Params
}

func (a argon2idAlgo) hash(plaintext string) (string, error) {
	return argon2id.CreateHash(plaintext, a.params)
}

func (argon2idAlgo) verify(plaintext, hash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plaintext, hash)
}

func (argon2idAlgo) owns(hash string) bool {
	return strings.HasPrefix(hash, "$argon2id$")
}
