package commands_test

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	args := m.Called()
	return args.Get(0).(T)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) StockRecordRepository() ports.StockRecordRepository {
	return m.Called().Get(0).(ports.StockRecordRepository)
}

func (m *MockUoW) BasketRepository() ports.BasketRepository {
	return m.Called().Get(0).(ports.BasketRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserAddressRepository() ports.UserAddressRepository {
	return m.Called().Get(0).(ports.UserAddressRepository)
}

func (m *MockUoW) ShippingMethodRepository() ports.ShippingMethodRepository {
	return m.Called().Get(0).(ports.ShippingMethodRepository)
}

func (m *MockUoW) VisitorRepository() ports.VisitorRepository {
	return m.Called().Get(0).(ports.VisitorRepository)
}

func (m *MockUoW) AnalyticsRepository() ports.AnalyticsRepository {
	return m.Called().Get(0).(ports.AnalyticsRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}

// permissiveUoW accepts the transaction calls any number of times.
func permissiveUoW() *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func factoryFor[T any](uow T) *MockUoWFactory[T] {
	f := new(MockUoWFactory[T])
	f.On("Create").Return(uow)
	return f
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalogue.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *catalogue.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalogue.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalogue.Product)
	return p, args.Error(1)
}

type MockStockRecordRepository struct{ mock.Mock }

func (m *MockStockRecordRepository) Add(ctx context.Context, r *partner.StockRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockStockRecordRepository) Update(ctx context.Context, r *partner.StockRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockStockRecordRepository) Allocate(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockStockRecordRepository) Get(ctx context.Context, id kernel.UUID) (*partner.StockRecord, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*partner.StockRecord)
	return r, args.Error(1)
}

func (m *MockStockRecordRepository) ListForProduct(ctx context.Context, productID kernel.UUID) ([]*partner.StockRecord, error) {
	args := m.Called(ctx, productID)
	r, _ := args.Get(0).([]*partner.StockRecord)
	return r, args.Error(1)
}

type MockBasketRepository struct{ mock.Mock }

func (m *MockBasketRepository) Add(ctx context.Context, b *basket.Basket) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBasketRepository) Update(ctx context.Context, b *basket.Basket) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBasketRepository) Get(ctx context.Context, id kernel.UUID) (*basket.Basket, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*basket.Basket)
	return b, args.Error(1)
}

func (m *MockBasketRepository) GetOpenForOwner(ctx context.Context, ownerID kernel.UUID) (*basket.Basket, error) {
	args := m.Called(ctx, ownerID)
	b, _ := args.Get(0).(*basket.Basket)
	return b, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) NextNumberSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserAddressRepository struct{ mock.Mock }

func (m *MockUserAddressRepository) Add(ctx context.Context, a *address.UserAddress) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockUserAddressRepository) Update(ctx context.Context, a *address.UserAddress) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockUserAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.UserAddress, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*address.UserAddress)
	return a, args.Error(1)
}

func (m *MockUserAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserAddressRepository) ListForUser(ctx context.Context, userID kernel.UUID) ([]*address.UserAddress, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).([]*address.UserAddress)
	return a, args.Error(1)
}

type MockShippingMethodRepository struct{ mock.Mock }

func (m *MockShippingMethodRepository) Add(ctx context.Context, s shipping.Configured) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShippingMethodRepository) Update(ctx context.Context, s shipping.Configured) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShippingMethodRepository) Get(ctx context.Context, id kernel.UUID) (shipping.Configured, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(shipping.Configured)
	return s, args.Error(1)
}

func (m *MockShippingMethodRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockShippingMethodRepository) List(ctx context.Context) ([]shipping.Configured, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]shipping.Configured)
	return s, args.Error(1)
}

func (m *MockShippingMethodRepository) EnabledMethods(ctx context.Context) ([]shipping.Method, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]shipping.Method)
	return s, args.Error(1)
}

type MockVisitorRepository struct{ mock.Mock }

func (m *MockVisitorRepository) Add(ctx context.Context, v *analytics.Visitor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVisitorRepository) Update(ctx context.Context, v *analytics.Visitor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVisitorRepository) Get(ctx context.Context, sessionKey string) (*analytics.Visitor, error) {
	args := m.Called(ctx, sessionKey)
	v, _ := args.Get(0).(*analytics.Visitor)
	return v, args.Error(1)
}

func (m *MockVisitorRepository) Delete(ctx context.Context, sessionKey string) error {
	return m.Called(ctx, sessionKey).Error(0)
}

func (m *MockVisitorRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitorRepository) AddPageView(ctx context.Context, pv analytics.PageView) error {
	return m.Called(ctx, pv).Error(0)
}

type MockAnalyticsRepository struct{ mock.Mock }

func (m *MockAnalyticsRepository) RecordProductView(ctx context.Context, productID kernel.UUID, userID *kernel.UUID, at time.Time) error {
	return m.Called(ctx, productID, userID, at).Error(0)
}

func (m *MockAnalyticsRepository) RecordBasketAddition(ctx context.Context, productID kernel.UUID, userID *kernel.UUID) error {
	return m.Called(ctx, productID, userID).Error(0)
}

func (m *MockAnalyticsRepository) RecordPurchase(ctx context.Context, productID kernel.UUID, quantity int) error {
	return m.Called(ctx, productID, quantity).Error(0)
}

func (m *MockAnalyticsRepository) RecordUserOrder(
	ctx context.Context, userID kernel.UUID, numLines int, numItems int, total decimal.Decimal, at time.Time,
) error {
	return m.Called(ctx, userID, numLines, numItems, total, at).Error(0)
}

func (m *MockAnalyticsRepository) RecordSearch(ctx context.Context, search analytics.UserSearch) error {
	return m.Called(ctx, search).Error(0)
}

func (m *MockAnalyticsRepository) RecalculateProductScores(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.ProductReview) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.ProductReview) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.ProductReview, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*review.ProductReview)
	return r, args.Error(1)
}

func (m *MockReviewRepository) HasReviewBy(ctx context.Context, productID kernel.UUID, userID kernel.UUID) (bool, error) {
	args := m.Called(ctx, productID, userID)
	return args.Bool(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...ports.Event) error {
	return m.Called(ctx, events).Error(0)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash string, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(u *user.User) (string, time.Time, error) {
	args := m.Called(u)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
