// Package user holds customer and staff accounts.
package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor") //nolint:staticcheck,revive // matches the other aggregates

// User is an account. Staff users may use the dashboard when they are also
// superusers.
type User struct {
	id           kernel.UUID
	email        string
	firstName    string
	lastName     string
	passwordHash string
	isStaff      bool
	isSuperuser  bool
	isActive     bool
	dateJoined   time.Time
	lastLogin    *time.Time

	isConstructed bool
}

func NewUser(id kernel.UUID, email string, firstName string, lastName string, passwordHash string, joined time.Time) (*User, error) {
	return RestoreUser(id, email, firstName, lastName, passwordHash, false, false, true, joined, nil)
}

func RestoreUser(
	id kernel.UUID,
	email string,
	firstName string,
	lastName string,
	passwordHash string,
	isStaff bool,
	isSuperuser bool,
	isActive bool,
	dateJoined time.Time,
	lastLogin *time.Time,
) (*User, error) {
	u := &User{
		firstName:     strings.TrimSpace(firstName),
		lastName:      strings.TrimSpace(lastName),
		isStaff:       isStaff,
		isSuperuser:   isSuperuser,
		isActive:      isActive,
		dateJoined:    dateJoined.UTC(),
		lastLogin:     lastLogin,
		isConstructed: true,
	}

	var hashErr error
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("password hash")
	}
	if err := errors.Join(id.Validate(), u.setEmail(email), hashErr); err != nil {
		return nil, err
	}
	u.id = id
	u.passwordHash = passwordHash

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID       { return u.id }
func (u *User) Email() string         { return u.email }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) IsStaff() bool         { return u.isStaff }
func (u *User) IsSuperuser() bool     { return u.isSuperuser }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) DateJoined() time.Time { return u.dateJoined }
func (u *User) LastLogin() *time.Time { return u.lastLogin }

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// CanUseDashboard is true for active staff superusers.
func (u *User) CanUseDashboard() bool {
	return u.isActive && u.isStaff && u.isSuperuser
}

func (u *User) PromoteToSuperuser() {
	u.isStaff = true
	u.isSuperuser = true
}

func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) RecordLogin(at time.Time) {
	at = at.UTC()
	u.lastLogin = &at
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

// NormalizeEmail lower-cases the domain part, leaving the mailbox alone.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", errors.Join(err, errors.New("expected a bare address")))
	}
	u.email = email
	return nil
}
