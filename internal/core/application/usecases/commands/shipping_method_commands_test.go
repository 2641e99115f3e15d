package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShippingMethodCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name string
		kind shipping.Kind
		want string
	}{
		{name: "order and item charges", kind: shipping.KindOrderAndItemCharges, want: "*shipping.OrderAndItemCharges"},
		{name: "weight based", kind: shipping.KindWeightBased, want: "*shipping.WeightBased"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewCreateShippingMethodCommand(kernel.NewUUID(), tt.kind,
				commands.MethodDetails{Name: "Royal Mail 1st Class", Countries: []string{"gb"}, IsEnabled: true},
				commands.Charges{PricePerOrder: dec("3"), PricePerItem: dec("0.5"), DefaultWeight: dec("1")})
			require.NoError(t, err)

			repo := new(MockShippingMethodRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("ShippingMethodRepository").Return(repo).Once(),
				repo.On("Add", ctx, mock.AnythingOfType(tt.want)).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			h := commands.NewCreateShippingMethodCommandHandler(factoryFor[commands.ShippingUoW](uow))
			code, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, "royal-mail-1st-class", code)
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestNewCreateShippingMethodCommand_UnknownKind(t *testing.T) {
	_, err := commands.NewCreateShippingMethodCommand(kernel.NewUUID(), "carrier-pigeon",
		commands.MethodDetails{Name: "x"}, commands.Charges{})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func newWeightBased(t *testing.T) *shipping.WeightBased {
	t.Helper()
	cfg, err := shipping.NewConfiguration(kernel.NewUUID(), "Courier", "", nil, true)
	require.NoError(t, err)
	m, err := shipping.NewWeightBased(cfg, dec("1"))
	require.NoError(t, err)
	return m
}

func TestUpdateShippingMethodCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	m := newWeightBased(t)
	cmd, err := commands.NewUpdateShippingMethodCommand(m.ID(),
		commands.MethodDetails{Name: "Courier Express", Description: "Next day", Countries: []string{"FR"}},
		commands.Charges{DefaultWeight: dec("2")})
	require.NoError(t, err)

	repo := new(MockShippingMethodRepository)
	uow := permissiveUoW()
	uow.On("ShippingMethodRepository").Return(repo)
	repo.On("Get", ctx, m.ID()).Return(m, nil).Once()
	repo.On("Update", ctx, m).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateShippingMethodCommandHandler(factoryFor[commands.ShippingUoW](uow))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "Courier Express", m.Name())
	assert.Equal(t, "courier", m.Code())
	assert.Equal(t, []string{"FR"}, m.Countries())
	assert.False(t, m.IsEnabled())
	assert.True(t, dec("2").Equal(m.DefaultWeight()))
	repo.AssertExpectations(t)
}

func TestWeightBandCommandHandler(t *testing.T) {
	ctx := t.Context()
	m := newWeightBased(t)
	bandID := kernel.NewUUID()

	repo := new(MockShippingMethodRepository)
	uow := permissiveUoW()
	uow.On("ShippingMethodRepository").Return(repo)
	repo.On("Get", ctx, m.ID()).Return(m, nil)
	repo.On("Update", ctx, m).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	h := commands.NewWeightBandCommandHandler(factoryFor[commands.ShippingUoW](uow))

	add, err := commands.NewAddWeightBandCommand(m.ID(), bandID, dec("5"), dec("7.50"))
	require.NoError(t, err)
	require.NoError(t, h.HandleAdd(ctx, add))
	require.Len(t, m.Bands(), 1)

	remove, err := commands.NewRemoveWeightBandCommand(m.ID(), bandID)
	require.NoError(t, err)
	require.NoError(t, h.HandleRemove(ctx, remove))
	assert.Empty(t, m.Bands())
}

func TestWeightBandCommandHandler_WrongKind(t *testing.T) {
	ctx := t.Context()
	cfg, err := shipping.NewConfiguration(kernel.NewUUID(), "Flat", "", nil, true)
	require.NoError(t, err)
	flat, err := shipping.NewOrderAndItemCharges(cfg, dec("3"), dec("0"), nil)
	require.NoError(t, err)

	repo := new(MockShippingMethodRepository)
	uow := permissiveUoW()
	uow.On("ShippingMethodRepository").Return(repo)
	repo.On("Get", ctx, flat.ID()).Return(flat, nil)

	cmd, err := commands.NewAddWeightBandCommand(flat.ID(), kernel.NewUUID(), dec("5"), dec("1"))
	require.NoError(t, err)
	err = commands.NewWeightBandCommandHandler(factoryFor[commands.ShippingUoW](uow)).HandleAdd(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
}

func TestDeleteShippingMethodCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteShippingMethodCommand(id)
	require.NoError(t, err)

	repo := new(MockShippingMethodRepository)
	uow := permissiveUoW()
	uow.On("ShippingMethodRepository").Return(repo)
	repo.On("Delete", ctx, id).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	require.NoError(t, commands.NewDeleteShippingMethodCommandHandler(factoryFor[commands.ShippingUoW](uow)).Handle(ctx, cmd))
	repo.AssertExpectations(t)
}
