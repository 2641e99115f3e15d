package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookEntry(t *testing.T, userID kernel.UUID, defaultShipping bool, defaultBilling bool) *address.UserAddress {
	t.Helper()
	addr, err := address.NewAddress(address.Fields{Line1: "1 Acacia Avenue", Postcode: "BS1 4DJ", Country: "GB"})
	require.NoError(t, err)
	entry, err := address.NewUserAddress(kernel.NewUUID(), userID, addr)
	require.NoError(t, err)
	entry.SetDefaultForShipping(defaultShipping)
	entry.SetDefaultForBilling(defaultBilling)
	return entry
}

func TestUserAddressCommandHandler_HandleAdd_MovesDefault(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	oldShipping := bookEntry(t, userID, true, false)
	oldBilling := bookEntry(t, userID, false, true)

	cmd, err := commands.NewAddUserAddressCommand(kernel.NewUUID(), userID,
		address.Fields{Line1: "2 Station Road", Country: "GB"}, true, false)
	require.NoError(t, err)

	repo := new(MockUserAddressRepository)
	uow := permissiveUoW()
	uow.On("UserAddressRepository").Return(repo)
	repo.On("ListForUser", ctx, userID).Return([]*address.UserAddress{oldShipping, oldBilling}, nil).Once()
	repo.On("Update", ctx, oldShipping).Return(nil).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(a *address.UserAddress) bool {
		return a.ID().IsEqual(cmd.AddressID()) && a.IsDefaultForShipping()
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	err = commands.NewUserAddressCommandHandler(factoryFor[commands.AddressUoW](uow)).HandleAdd(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, oldShipping.IsDefaultForShipping())
	assert.True(t, oldBilling.IsDefaultForBilling())
	repo.AssertExpectations(t)
}

func TestNewAddUserAddressCommand_InvalidAddress(t *testing.T) {
	_, err := commands.NewAddUserAddressCommand(kernel.NewUUID(), kernel.NewUUID(), address.Fields{Country: "GB"}, false, false)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUserAddressCommandHandler_HandleDelete(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("owner deletes", func(t *testing.T) {
		ctx := t.Context()
		entry := bookEntry(t, owner, false, false)
		cmd, err := commands.NewDeleteUserAddressCommand(entry.ID(), owner)
		require.NoError(t, err)

		repo := new(MockUserAddressRepository)
		uow := permissiveUoW()
		uow.On("UserAddressRepository").Return(repo)
		repo.On("Get", ctx, entry.ID()).Return(entry, nil)
		repo.On("Delete", ctx, entry.ID()).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		require.NoError(t, commands.NewUserAddressCommandHandler(factoryFor[commands.AddressUoW](uow)).HandleDelete(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("someone else's address is not found", func(t *testing.T) {
		ctx := t.Context()
		entry := bookEntry(t, owner, false, false)
		cmd, err := commands.NewDeleteUserAddressCommand(entry.ID(), kernel.NewUUID())
		require.NoError(t, err)

		repo := new(MockUserAddressRepository)
		uow := permissiveUoW()
		uow.On("UserAddressRepository").Return(repo)
		repo.On("Get", ctx, entry.ID()).Return(entry, nil)

		err = commands.NewUserAddressCommandHandler(factoryFor[commands.AddressUoW](uow)).HandleDelete(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
