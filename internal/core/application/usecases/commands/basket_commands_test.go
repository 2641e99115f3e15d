package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToBasketCommandHandler_Handle_NewBasket(t *testing.T) {
	ctx := t.Context()
	p := newProduct(t, "Tea", true)
	sr := newStockRecord(t, p, "4.50", 5)
	owner := kernel.NewUUID()
	cmd, err := commands.NewAddToBasketCommand(nil, &owner, p.ID(), 2, "GBP")
	require.NoError(t, err)

	baskets := new(MockBasketRepository)
	products := new(MockProductRepository)
	stock := new(MockStockRecordRepository)
	stats := new(MockAnalyticsRepository)
	uow := permissiveUoW()
	uow.On("BasketRepository").Return(baskets)
	uow.On("ProductRepository").Return(products)
	uow.On("StockRecordRepository").Return(stock)
	uow.On("AnalyticsRepository").Return(stats)
	mock.InOrder(
		baskets.On("GetOpenForOwner", ctx, owner).Return(nil, errs.NewObjectNotFoundError("basket", owner)).Once(),
		products.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		stock.On("ListForProduct", ctx, p.ID()).Return([]*partner.StockRecord{sr}, nil).Once(),
		baskets.On("Add", ctx, mock.MatchedBy(func(b *basket.Basket) bool {
			return b.NumItems() == 2 && b.OwnerID().IsEqual(owner)
		})).Return(nil).Once(),
		stats.On("RecordBasketAddition", ctx, p.ID(), &owner).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewAddToBasketCommandHandler(factoryFor[commands.BasketUoW](uow), partner.NewStrategy(nil))
	basketID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, basketID.IsZero())
	baskets.AssertExpectations(t)
	stats.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddToBasketCommandHandler_Handle_SessionBasket(t *testing.T) {
	ctx := t.Context()
	p := newProduct(t, "Tea", true)
	sr := newStockRecord(t, p, "4.50", 3)
	b := newBasketWith(t, p, sr, 2)
	basketID := b.ID()
	cmd, err := commands.NewAddToBasketCommand(&basketID, nil, p.ID(), 1, "GBP")
	require.NoError(t, err)

	baskets := new(MockBasketRepository)
	products := new(MockProductRepository)
	stock := new(MockStockRecordRepository)
	stats := new(MockAnalyticsRepository)
	uow := permissiveUoW()
	uow.On("BasketRepository").Return(baskets)
	uow.On("ProductRepository").Return(products)
	uow.On("StockRecordRepository").Return(stock)
	uow.On("AnalyticsRepository").Return(stats)
	baskets.On("Get", ctx, basketID).Return(b, nil).Once()
	products.On("Get", ctx, p.ID()).Return(p, nil).Once()
	stock.On("ListForProduct", ctx, p.ID()).Return([]*partner.StockRecord{sr}, nil).Once()
	baskets.On("Update", ctx, b).Return(nil).Once()
	stats.On("RecordBasketAddition", ctx, p.ID(), (*kernel.UUID)(nil)).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewAddToBasketCommandHandler(factoryFor[commands.BasketUoW](uow), partner.NewStrategy(nil))
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, got.IsEqual(basketID))
	assert.Equal(t, 1, b.NumLines())
	assert.Equal(t, 3, b.NumItems())
	baskets.AssertExpectations(t)
}

func TestAddToBasketCommandHandler_Handle_NotEnoughStock(t *testing.T) {
	ctx := t.Context()
	p := newProduct(t, "Tea", true)
	sr := newStockRecord(t, p, "4.50", 1)
	cmd, err := commands.NewAddToBasketCommand(nil, nil, p.ID(), 2, "GBP")
	require.NoError(t, err)

	baskets := new(MockBasketRepository)
	products := new(MockProductRepository)
	stock := new(MockStockRecordRepository)
	uow := permissiveUoW()
	uow.On("BasketRepository").Return(baskets)
	uow.On("ProductRepository").Return(products)
	uow.On("StockRecordRepository").Return(stock)
	products.On("Get", ctx, p.ID()).Return(p, nil).Once()
	stock.On("ListForProduct", ctx, p.ID()).Return([]*partner.StockRecord{sr}, nil).Once()

	h := commands.NewAddToBasketCommandHandler(factoryFor[commands.BasketUoW](uow), partner.NewStrategy(nil))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotPurchasable)
	assert.Contains(t, err.Error(), "a maximum of 1 can be bought")
	baskets.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewAddToBasketCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddToBasketCommand(nil, nil, kernel.NewUUID(), 0, "GBP")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateBasketLineCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	p := newProduct(t, "Tea", true)
	sr := newStockRecord(t, p, "4.50", 3)

	tests := []struct {
		name      string
		quantity  int
		wantErr   error
		wantItems int
	}{
		{name: "decrease", quantity: 1, wantItems: 1},
		{name: "remove", quantity: 0, wantItems: 0},
		{name: "increase within stock", quantity: 3, wantItems: 3},
		{name: "increase beyond stock", quantity: 4, wantErr: commands.ErrNotPurchasable, wantItems: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBasketWith(t, p, sr, 2)
			lineID := b.Lines()[0].ID()
			cmd, err := commands.NewUpdateBasketLineCommand(b.ID(), lineID, tt.quantity)
			require.NoError(t, err)

			baskets := new(MockBasketRepository)
			uow := permissiveUoW()
			uow.On("BasketRepository").Return(baskets)
			baskets.On("Get", ctx, b.ID()).Return(b, nil).Once()
			baskets.On("Update", ctx, b).Return(nil).Maybe()
			uow.On("Commit", ctx).Return(nil).Maybe()

			h := commands.NewUpdateBasketLineCommandHandler(factoryFor[commands.BasketUoW](uow), partner.NewStrategy(nil))
			err = h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantItems, b.NumItems())
		})
	}
}

func TestUpdateBasketLineCommandHandler_Handle_UnknownLine(t *testing.T) {
	ctx := t.Context()
	p := newProduct(t, "Tea", true)
	b := newBasketWith(t, p, newStockRecord(t, p, "1", 3), 1)
	cmd, err := commands.NewUpdateBasketLineCommand(b.ID(), kernel.NewUUID(), 1)
	require.NoError(t, err)

	baskets := new(MockBasketRepository)
	uow := permissiveUoW()
	uow.On("BasketRepository").Return(baskets)
	baskets.On("Get", ctx, b.ID()).Return(b, nil).Once()

	h := commands.NewUpdateBasketLineCommandHandler(factoryFor[commands.BasketUoW](uow), partner.NewStrategy(nil))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
