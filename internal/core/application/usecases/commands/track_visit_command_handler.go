package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"go.uber.org/zap"
)

type TrackVisitCommandHandler struct {
	uowFactory  TrackingUoWFactory
	botPatterns []string
	resolver    analytics.Resolver
	logger      *zap.Logger
}

// NewTrackVisitCommandHandler looks up the hostname of new visitors when
// resolver is not nil.
func NewTrackVisitCommandHandler(
	uowFactory TrackingUoWFactory,
	botPatterns []string,
	resolver analytics.Resolver,
	logger *zap.Logger,
) TrackVisitCommandHandler {
	return TrackVisitCommandHandler{
		uowFactory:  uowFactory,
		botPatterns: botPatterns,
		resolver:    resolver,
		logger:      logger,
	}
}

// Handle creates or refreshes the visitor and returns it so the caller can
// re-issue the tracking cookie.
func (h TrackVisitCommandHandler) Handle(ctx context.Context, cmd TrackVisitCommand) (*analytics.Visitor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VisitorRepository()
	v, err := repo.Get(ctx, cmd.SessionKey())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		v, err = h.startVisit(ctx, repo, cmd)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		v.Refresh(cmd.UserID(), cmd.ExpiryAge(), cmd.UserAgent(), cmd.VisitTime())
		if err = repo.Update(ctx, v); err != nil {
			return nil, err
		}
	}

	if pv := cmd.PageView(); pv != nil {
		if err = h.recordPageView(ctx, repo, v, *pv, cmd); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

func (h TrackVisitCommandHandler) startVisit(
	ctx context.Context,
	repo ports.VisitorRepository,
	cmd TrackVisitCommand,
) (*analytics.Visitor, error) {
	v, err := analytics.NewVisitor(cmd.SessionKey(), cmd.Identity(), cmd.IPAddress(), cmd.VisitTime())
	if err != nil {
		return nil, err
	}
	v.Refresh(cmd.UserID(), cmd.ExpiryAge(), cmd.UserAgent(), cmd.VisitTime())
	v.Profile(h.botPatterns)
	if h.resolver != nil {
		v.ReverseLookup(ctx, h.resolver, h.botPatterns)
	}

	err = repo.Add(ctx, v)
	if !errors.Is(err, ports.ErrVisitorExists) {
		return v, err
	}

	// A parallel request stored the visitor first; continue with its row.
	h.logger.Debug("visitor inserted concurrently", zap.String("session_key", cmd.SessionKey()))
	stored, err := repo.Get(ctx, cmd.SessionKey())
	if err != nil {
		return nil, err
	}
	stored.Refresh(cmd.UserID(), cmd.ExpiryAge(), cmd.UserAgent(), cmd.VisitTime())
	if err = repo.Update(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (h TrackVisitCommandHandler) recordPageView(
	ctx context.Context,
	repo ports.VisitorRepository,
	v *analytics.Visitor,
	in PageViewInput,
	cmd TrackVisitCommand,
) error {
	pv, err := analytics.NewPageView(kernel.NewUUID(), v.SessionKey(), in.URL, in.Method, cmd.VisitTime())
	if err != nil {
		return err
	}
	if in.Referer != "" {
		pv.Referer = &in.Referer
	}
	if in.QueryString != "" {
		pv.QueryString = &in.QueryString
	}
	return repo.AddPageView(ctx, pv)
}
