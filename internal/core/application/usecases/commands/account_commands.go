package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 8

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

	// ErrEmailTaken is returned when registering an email that already has an
	// account.
	ErrEmailTaken = errors.New("A user with that email address already exists") //nolint:staticcheck,revive // shown to customers
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("Please enter a correct email and password") //nolint:staticcheck,revive // shown to customers
)

type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	email     string
	firstName string
	lastName  string
	password  string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	email string,
	firstName string,
	lastName string,
	password string,
) (RegisterUserCommand, error) {
	var passwordErr error
	if len(password) < MinPasswordLength {
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, "∞")
	}
	if err := errors.Join(userID.Validate(), passwordErr); err != nil {
		return RegisterUserCommand{}, err
	}
	return RegisterUserCommand{
		userID:    userID,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u, err := user.NewUser(cmd.userID, cmd.email, cmd.firstName, cmd.lastName, hash, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err = repo.GetByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return u, nil
}

type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(email string, password string) (LoginCommand, error) {
	var emailErr, passwordErr error
	if user.NormalizeEmail(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return LoginCommand{}, err
	}
	return LoginCommand{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// LoginResult is the signed token with the user it was issued to.
type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
}

type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher, issuer ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher, issuer: issuer}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := repo.GetByEmail(ctx, cmd.email)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return LoginResult{}, ErrInvalidCredentials
	case err != nil:
		return LoginResult{}, err
	}
	if !u.IsActive() {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err = h.hasher.Compare(u.PasswordHash(), cmd.password); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	u.RecordLogin(time.Now())
	if err = repo.Update(ctx, u); err != nil {
		return LoginResult{}, err
	}
	token, expiresAt, err := h.issuer.Issue(u)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}
