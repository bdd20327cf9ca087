package model

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is fixed-width, so lexical order of stored values is
// chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the public projection of an Account.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func (a Account) Profile() Profile {
	return Profile{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: FormatTimestamp(a.CreatedAt),
	}
}

// Registration is returned by a successful sign-up.
type Registration struct {
	Profile
	Token string `json:"token"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
