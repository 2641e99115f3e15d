package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddUserAddressCommandIsNotConstructed = errors.New(
		"AddUserAddressCommand must be created via NewAddUserAddressCommand constructor",
	)
	ErrDeleteUserAddressCommandIsNotConstructed = errors.New(
		"DeleteUserAddressCommand must be created via NewDeleteUserAddressCommand constructor",
	)
)

type AddUserAddressCommand struct { //nolint:recvcheck //using for validation
	addressID            kernel.UUID
	userID               kernel.UUID
	address              address.Address
	isDefaultForShipping bool
	isDefaultForBilling  bool

	guard guard.ConstructorGuard
}

func NewAddUserAddressCommand(
	addressID kernel.UUID,
	userID kernel.UUID,
	fields address.Fields,
	isDefaultForShipping bool,
	isDefaultForBilling bool,
) (AddUserAddressCommand, error) {
	addr, addrErr := address.NewAddress(fields)
	if err := errors.Join(addressID.Validate(), userID.Validate(), addrErr); err != nil {
		return AddUserAddressCommand{}, err
	}
	return AddUserAddressCommand{
		addressID:            addressID,
		userID:               userID,
		address:              addr,
		isDefaultForShipping: isDefaultForShipping,
		isDefaultForBilling:  isDefaultForBilling,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

func (c AddUserAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddUserAddressCommandIsNotConstructed)
}

func (c AddUserAddressCommand) AddressID() kernel.UUID     { return c.addressID }
func (c AddUserAddressCommand) UserID() kernel.UUID        { return c.userID }
func (c AddUserAddressCommand) Address() address.Address   { return c.address }
func (c AddUserAddressCommand) IsDefaultForShipping() bool { return c.isDefaultForShipping }
func (c AddUserAddressCommand) IsDefaultForBilling() bool  { return c.isDefaultForBilling }

type DeleteUserAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserAddressCommand(addressID kernel.UUID, userID kernel.UUID) (DeleteUserAddressCommand, error) {
	if err := errors.Join(addressID.Validate(), userID.Validate()); err != nil {
		return DeleteUserAddressCommand{}, err
	}
	return DeleteUserAddressCommand{addressID: addressID, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserAddressCommandIsNotConstructed)
}

func (c DeleteUserAddressCommand) AddressID() kernel.UUID { return c.addressID }
func (c DeleteUserAddressCommand) UserID() kernel.UUID    { return c.userID }

// UserAddressCommandHandler maintains a customer's address book. A user has
// at most one default address for shipping and one for billing.
type UserAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewUserAddressCommandHandler(uowFactory AddressUoWFactory) UserAddressCommandHandler {
	return UserAddressCommandHandler{uowFactory: uowFactory}
}

func (h UserAddressCommandHandler) HandleAdd(ctx context.Context, cmd AddUserAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := address.NewUserAddress(cmd.AddressID(), cmd.UserID(), cmd.Address())
	if err != nil {
		return err
	}
	entry.SetDefaultForShipping(cmd.IsDefaultForShipping())
	entry.SetDefaultForBilling(cmd.IsDefaultForBilling())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserAddressRepository()
	if entry.IsDefaultForShipping() || entry.IsDefaultForBilling() {
		if err = clearDefaults(ctx, repo, entry); err != nil {
			return err
		}
	}
	if err = repo.Add(ctx, entry); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (h UserAddressCommandHandler) HandleDelete(ctx context.Context, cmd DeleteUserAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserAddressRepository()
	entry, err := repo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	// Someone else's address is reported as missing.
	if !entry.BelongsTo(cmd.UserID()) {
		return errs.NewObjectNotFoundError("user address", cmd.AddressID())
	}
	if err = repo.Delete(ctx, entry.ID()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func clearDefaults(ctx context.Context, repo ports.UserAddressRepository, entry *address.UserAddress) error {
	book, err := repo.ListForUser(ctx, entry.UserID())
	if err != nil {
		return err
	}
	for _, other := range book {
		changed := false
		if entry.IsDefaultForShipping() && other.IsDefaultForShipping() {
			other.SetDefaultForShipping(false)
			changed = true
		}
		if entry.IsDefaultForBilling() && other.IsDefaultForBilling() {
			other.SetDefaultForBilling(false)
			changed = true
		}
		if !changed {
			continue
		}
		if err = repo.Update(ctx, other); err != nil {
			return err
		}
	}
	return nil
}
