package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// TrackingCommandHandler runs the small analytics writes that need no
// command object of their own.
type TrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
}

func NewTrackingCommandHandler(uowFactory TrackingUoWFactory) TrackingCommandHandler {
	return TrackingCommandHandler{uowFactory: uowFactory}
}

// EndVisit marks the visit as ended, on logout.
func (h TrackingCommandHandler) EndVisit(ctx context.Context, sessionKey string, at time.Time) error {
	return h.inTx(ctx, func(uow TrackingUoW) error {
		repo := uow.VisitorRepository()
		v, err := repo.Get(ctx, sessionKey)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		v.End(at)
		return repo.Update(ctx, v)
	})
}

func (h TrackingCommandHandler) DeleteVisitor(ctx context.Context, sessionKey string) error {
	if sessionKey == "" {
		return errs.NewValueIsRequiredError("session key")
	}
	return h.inTx(ctx, func(uow TrackingUoW) error {
		return uow.VisitorRepository().Delete(ctx, sessionKey)
	})
}

// DeleteExpiredVisitors removes visitors whose session expired before
// cutoff and returns how many went.
func (h TrackingCommandHandler) DeleteExpiredVisitors(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	err := h.inTx(ctx, func(uow TrackingUoW) error {
		var err error
		n, err = uow.VisitorRepository().DeleteExpired(ctx, cutoff)
		return err
	})
	return n, err
}

func (h TrackingCommandHandler) RecalculateProductScores(ctx context.Context) (int64, error) {
	var n int64
	err := h.inTx(ctx, func(uow TrackingUoW) error {
		var err error
		n, err = uow.AnalyticsRepository().RecalculateProductScores(ctx)
		return err
	})
	return n, err
}

func (h TrackingCommandHandler) RecordProductView(ctx context.Context, productID kernel.UUID, userID *kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	return h.inTx(ctx, func(uow TrackingUoW) error {
		return uow.AnalyticsRepository().RecordProductView(ctx, productID, userID, time.Now())
	})
}

func (h TrackingCommandHandler) RecordSearch(ctx context.Context, userID *kernel.UUID, query string, resultCount int) error {
	search, err := analytics.NewUserSearch(kernel.NewUUID(), userID, query, resultCount, time.Now())
	if err != nil {
		return err
	}
	return h.inTx(ctx, func(uow TrackingUoW) error {
		return uow.AnalyticsRepository().RecordSearch(ctx, search)
	})
}

func (h TrackingCommandHandler) inTx(ctx context.Context, fn func(TrackingUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
