package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorHelpers(t *testing.T) {
	err := NewValidation("bad")
	require.True(t, IsValidation(err))
	require.False(t, IsAuthentication(err))

	wrapped := fmt.Errorf("register: %w", WrapDatabase(errors.New("conn reset"), "CreateAccount"))
	require.True(t, IsDatabase(wrapped))
	require.False(t, IsHashing(wrapped))

	require.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrNotFound)))
	require.True(t, IsAlreadyExists(ErrAlreadyExists))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("bcrypt: hashedSecret too short")
	err := WrapHashing(cause, "verify")
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, ErrHashing)
}

func TestResponse(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", NewValidation(MsgAlreadyExists), http.StatusBadRequest, MsgAlreadyExists},
		{"authentication", NewAuthentication(MsgInvalidCredentials), http.StatusUnauthorized, MsgInvalidCredentials},
		{"hashing", WrapHashing(errors.New("argon2id: hash is not in the correct format"), "verify"), http.StatusInternalServerError, MsgHashing},
		{"database", WrapDatabase(errors.New(`pq: relation "users" does not exist`), "CreateAccount"), http.StatusInternalServerError, MsgInternal},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, MsgInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := Response(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.msg, msg)
		})
	}
}
