package commands

import (
	"context"
	"time"

	"storefront/internal/core/application/checkout"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"go.uber.org/zap"
)

// PlaceOrderCommandHandler runs the last step of the checkout.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	flow       *checkout.Flow
	placer     services.OrderPlacer
	publisher  ports.EventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	flow *checkout.Flow,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		flow:       flow,
		placer:     services.NewOrderPlacer(),
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle places the order. A checkout that is not ready yet comes back as a
// *checkout.FailedPreConditionError. Once the transaction commits the
// checkout session is cleared and remembers the order number and basket.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	r := cmd.Request()

	if err := h.flow.Dispatch(ctx, checkout.PlaceOrderStep, r); err != nil {
		return nil, err
	}
	submission, err := h.flow.BuildSubmission(ctx, r)
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

	b := submission.Basket
	if b.Status() == basket.Open {
		if err = b.Freeze(); err != nil {
			return nil, err
		}
	}

	orderRepo := uow.OrderRepository()
	seq, err := orderRepo.NextNumberSequence(ctx)
	if err != nil {
		return nil, err
	}

	placedAt := h.now().UTC()
	o, allocations, err := h.placer.Place(b, placement(cmd.OrderID(), services.OrderNumber(seq), submission, placedAt))
	if err != nil {
		return nil, err
	}

	// Submitting the basket first makes a concurrent second submission of
	// the same basket fail before any stock is touched.
	if err = uow.BasketRepository().Update(ctx, b); err != nil {
		return nil, err
	}
	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}
	stockRepo := uow.StockRecordRepository()
	for _, a := range allocations {
		if err = stockRepo.Allocate(ctx, a.StockRecordID, a.Quantity); err != nil {
			return nil, err
		}
	}
	if err = recordOrderAnalytics(ctx, uow.AnalyticsRepository(), o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.Publish(ctx, order.NewPlacedEvent(o)); err != nil {
		h.logger.Error("publishing order placed event",
			zap.String("order_number", o.Number()), zap.Error(err))
	}

	r.Session.Flush()
	r.Session.SetOrderNumber(o.Number())
	r.Session.SetSubmittedBasket(b.ID())

	return o, nil
}

func placement(orderID kernel.UUID, number string, s checkout.Submission, placedAt time.Time) services.Placement {
	p := services.Placement{
		OrderID:         orderID,
		Number:          number,
		GuestEmail:      s.GuestEmail,
		ShippingAddress: s.ShippingAddress,
		BillingAddress:  s.BillingAddress,
		ShippingCharge:  s.ShippingCharge,
		PaymentCharge:   kernel.ZeroPrice(s.Basket.Currency()),
		Total:           s.OrderTotal,
		PlacedAt:        placedAt,
	}
	if s.User != nil {
		id := s.User.ID()
		p.UserID = &id
	}
	if s.ShippingMethod != nil {
		p.ShippingMethodCode = s.ShippingMethod.Code()
		p.ShippingMethodName = s.ShippingMethod.Name()
	}
	if s.PaymentMethod != nil {
		p.PaymentMethodCode = s.PaymentMethod.Code()
	}
	if s.PaymentCharge != nil {
		p.PaymentCharge = *s.PaymentCharge
	}
	return p
}

func recordOrderAnalytics(ctx context.Context, repo ports.AnalyticsRepository, o *order.Order) error {
	for _, l := range o.Lines() {
		if err := repo.RecordPurchase(ctx, l.ProductID(), l.Quantity()); err != nil {
			return err
		}
	}
	if o.UserID() == nil {
		return nil
	}
	return repo.RecordUserOrder(ctx, *o.UserID(), len(o.Lines()), o.NumItems(), o.Total().InclTax(), o.PlacedAt())
}
