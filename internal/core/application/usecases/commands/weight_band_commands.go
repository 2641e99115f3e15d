package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddWeightBandCommandIsNotConstructed = errors.New(
		"AddWeightBandCommand must be created via NewAddWeightBandCommand constructor",
	)
	ErrRemoveWeightBandCommandIsNotConstructed = errors.New(
		"RemoveWeightBandCommand must be created via NewRemoveWeightBandCommand constructor",
	)
)

// AddWeightBandCommand adds a band to a weight-based method.
type AddWeightBandCommand struct { //nolint:recvcheck //using for validation
	methodID   kernel.UUID
	bandID     kernel.UUID
	upperLimit decimal.Decimal
	charge     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewAddWeightBandCommand(
	methodID kernel.UUID,
	bandID kernel.UUID,
	upperLimit decimal.Decimal,
	charge decimal.Decimal,
) (AddWeightBandCommand, error) {
	if err := errors.Join(methodID.Validate(), bandID.Validate()); err != nil {
		return AddWeightBandCommand{}, err
	}
	return AddWeightBandCommand{
		methodID:   methodID,
		bandID:     bandID,
		upperLimit: upperLimit,
		charge:     charge,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddWeightBandCommand) Validate() error {
	return c.guard.Validate(ErrAddWeightBandCommandIsNotConstructed)
}

func (c AddWeightBandCommand) MethodID() kernel.UUID       { return c.methodID }
func (c AddWeightBandCommand) BandID() kernel.UUID         { return c.bandID }
func (c AddWeightBandCommand) UpperLimit() decimal.Decimal { return c.upperLimit }
func (c AddWeightBandCommand) Charge() decimal.Decimal     { return c.charge }

type RemoveWeightBandCommand struct { //nolint:recvcheck //using for validation
	methodID kernel.UUID
	bandID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveWeightBandCommand(methodID kernel.UUID, bandID kernel.UUID) (RemoveWeightBandCommand, error) {
	if err := errors.Join(methodID.Validate(), bandID.Validate()); err != nil {
		return RemoveWeightBandCommand{}, err
	}
	return RemoveWeightBandCommand{methodID: methodID, bandID: bandID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveWeightBandCommand) Validate() error {
	return c.guard.Validate(ErrRemoveWeightBandCommandIsNotConstructed)
}

func (c RemoveWeightBandCommand) MethodID() kernel.UUID { return c.methodID }
func (c RemoveWeightBandCommand) BandID() kernel.UUID   { return c.bandID }

// WeightBandCommandHandler edits the band table of weight-based methods.
type WeightBandCommandHandler struct {
	uowFactory ShippingUoWFactory
}

func NewWeightBandCommandHandler(uowFactory ShippingUoWFactory) WeightBandCommandHandler {
	return WeightBandCommandHandler{uowFactory: uowFactory}
}

func (h WeightBandCommandHandler) HandleAdd(ctx context.Context, cmd AddWeightBandCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	band, err := shipping.NewWeightBand(cmd.BandID(), cmd.UpperLimit(), cmd.Charge())
	if err != nil {
		return err
	}
	return h.edit(ctx, cmd.MethodID(), func(m *shipping.WeightBased) error {
		return m.AddBand(band)
	})
}

func (h WeightBandCommandHandler) HandleRemove(ctx context.Context, cmd RemoveWeightBandCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.edit(ctx, cmd.MethodID(), func(m *shipping.WeightBased) error {
		return m.RemoveBand(cmd.BandID())
	})
}

func (h WeightBandCommandHandler) edit(ctx context.Context, methodID kernel.UUID, change func(*shipping.WeightBased) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShippingMethodRepository()
	m, err := weightBased(ctx, repo, methodID)
	if err != nil {
		return err
	}
	if err = change(m); err != nil {
		return err
	}
	if err = repo.Update(ctx, m); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func weightBased(ctx context.Context, repo ports.ShippingMethodRepository, id kernel.UUID) (*shipping.WeightBased, error) {
	method, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m, ok := method.(*shipping.WeightBased)
	if !ok {
		return nil, errs.NewStateIsInvalidErrorWithCause("shipping method", string(method.Kind()),
			fmt.Errorf("%s has no weight bands", method.Code()))
	}
	return m, nil
}
