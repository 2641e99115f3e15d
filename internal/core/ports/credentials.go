package ports

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/user"
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare.
var ErrPasswordMismatch = errors.New("password does not match")

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// TokenIssuer signs access tokens for logged in users.
type TokenIssuer interface {
	Issue(u *user.User) (token string, expiresAt time.Time, err error)
}
