package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// sessionBasketKey holds the id of an anonymous visitor's basket.
const sessionBasketKey = "basket_id"

func sessionBasketID(c echo.Context) *kernel.UUID {
	sess := currentSession(c)
	if sess == nil {
		return nil
	}
	var raw string
	if found, err := sess.Get(sessionBasketKey, &raw); err != nil || !found {
		return nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil
	}
	return &id
}

// currentBasket finds the basket the visitor is filling: the user's open
// basket, then the one remembered by the session. Visitors without one get
// an empty basket that is not stored until something is added.
func (s *Server) currentBasket(c echo.Context) (*basket.Basket, error) {
	ctx := c.Request().Context()
	repo := s.uow.Create().BasketRepository()
	ownerID := currentUserID(c)

	if ownerID != nil {
		b, err := repo.GetOpenForOwner(ctx, *ownerID)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	if id := sessionBasketID(c); id != nil {
		b, err := repo.Get(ctx, *id)
		switch {
		case err == nil && b.Status().IsEditable() && (b.OwnerID() == nil || (ownerID != nil && b.OwnerID().IsEqual(*ownerID))):
			return b, nil
		case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
			return nil, err
		}
	}

	return basket.NewBasket(kernel.NewUUID(), ownerID, s.settings.Currency)
}

// GetBasket handles GET /basket/.
func (s *Server) GetBasket(c echo.Context) error {
	b, err := s.currentBasket(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newBasket(b))
}

// AddToBasket handles POST /basket/ - adds a product and remembers the
// basket in the session.
func (s *Server) AddToBasket(c echo.Context) error {
	var req servers.AddToBasketJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	productID, err := toUUID(req.ProductId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddToBasketCommand(sessionBasketID(c), currentUserID(c), productID, req.Quantity, s.settings.Currency)
	if err != nil {
		return err
	}
	basketID, err := s.cmd.AddToBasket.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	if err = currentSession(c).Set(sessionBasketKey, basketID.String()); err != nil {
		return err
	}

	b, err := s.uow.Create().BasketRepository().Get(c.Request().Context(), basketID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newBasket(b))
}

// UpdateBasketLine handles PATCH /basket/lines/{line_id}/. Zero removes the
// line.
func (s *Server) UpdateBasketLine(c echo.Context, lineId servers.LineID) error {
	var req servers.UpdateBasketLineJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	return s.setLineQuantity(c, lineId, req.Quantity)
}

// RemoveBasketLine handles DELETE /basket/lines/{line_id}/.
func (s *Server) RemoveBasketLine(c echo.Context, lineId servers.LineID) error {
	return s.setLineQuantity(c, lineId, 0)
}

func (s *Server) setLineQuantity(c echo.Context, lineId servers.LineID, quantity int) error {
	lineID, err := toUUID(lineId)
	if err != nil {
		return err
	}
	b, err := s.currentBasket(c)
	if err != nil {
		return err
	}
	if _, ok := b.Line(lineID); !ok {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}

	cmd, err := commands.NewUpdateBasketLineCommand(b.ID(), lineID, quantity)
	if err != nil {
		return err
	}
	if err = s.cmd.UpdateBasketLine.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	if b, err = s.uow.Create().BasketRepository().Get(c.Request().Context(), b.ID()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newBasket(b))
}
