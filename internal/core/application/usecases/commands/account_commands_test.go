package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "grace@EXAMPLE.com", "Grace", "Hopper", "correct horse")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "correct horse").Return("$2a$hash", nil).Once()
	repo := new(MockUserRepository)
	uow := permissiveUoW()
	uow.On("UserRepository").Return(repo)
	repo.On("GetByEmail", ctx, "grace@example.com").Return(nil, errs.NewObjectNotFoundError("user", "grace@example.com")).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	u, err := commands.NewRegisterUserCommandHandler(factoryFor[commands.AccountUoW](uow), hasher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", u.Email())
	assert.Equal(t, "$2a$hash", u.PasswordHash())
	repo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_EmailTaken(t *testing.T) {
	ctx := t.Context()
	existing := newUser(t)
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), existing.Email(), "Ada", "", "long enough")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("hash", nil)
	repo := new(MockUserRepository)
	uow := permissiveUoW()
	uow.On("UserRepository").Return(repo)
	repo.On("GetByEmail", ctx, existing.Email()).Return(existing, nil)

	_, err = commands.NewRegisterUserCommandHandler(factoryFor[commands.AccountUoW](uow), hasher).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailTaken)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewRegisterUserCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "a@example.com", "", "", "short")

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	expires := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		lookupErr  error
		compareErr error
		wantErr    error
	}{
		{name: "success"},
		{name: "unknown email", lookupErr: errs.NewObjectNotFoundError("user", "x"), wantErr: commands.ErrInvalidCredentials},
		{name: "wrong password", compareErr: ports.ErrPasswordMismatch, wantErr: commands.ErrInvalidCredentials},
		{name: "hasher failure", compareErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			u := newUser(t)
			cmd, err := commands.NewLoginCommand(u.Email(), "secret")
			require.NoError(t, err)

			repo := new(MockUserRepository)
			uow := permissiveUoW()
			uow.On("UserRepository").Return(repo)
			if tt.lookupErr != nil {
				repo.On("GetByEmail", ctx, u.Email()).Return(nil, tt.lookupErr)
			} else {
				repo.On("GetByEmail", ctx, u.Email()).Return(u, nil)
			}
			repo.On("Update", ctx, u).Return(nil)
			uow.On("Commit", ctx).Return(nil)
			hasher := new(MockPasswordHasher)
			hasher.On("Compare", "hash", "secret").Return(tt.compareErr)
			issuer := new(MockTokenIssuer)
			issuer.On("Issue", u).Return("signed.jwt", expires, nil)

			res, err := commands.NewLoginCommandHandler(factoryFor[commands.AccountUoW](uow), hasher, issuer).Handle(ctx, cmd)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.compareErr != nil:
				require.Error(t, err)
				assert.NotErrorIs(t, err, commands.ErrInvalidCredentials)
			default:
				require.NoError(t, err)
				assert.Equal(t, "signed.jwt", res.Token)
				assert.Equal(t, expires, res.ExpiresAt)
				assert.NotNil(t, u.LastLogin())
			}
		})
	}
}

func TestLoginCommandHandler_InactiveUser(t *testing.T) {
	ctx := t.Context()
	u, err := user.RestoreUser(kernel.NewUUID(), "old@example.com", "", "", "hash", false, false, false, time.Now(), nil)
	require.NoError(t, err)
	cmd, err := commands.NewLoginCommand(u.Email(), "secret")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := permissiveUoW()
	uow.On("UserRepository").Return(repo)
	repo.On("GetByEmail", ctx, u.Email()).Return(u, nil)

	_, err = commands.NewLoginCommandHandler(factoryFor[commands.AccountUoW](uow), new(MockPasswordHasher), new(MockTokenIssuer)).
		Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}
