package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func newOrderSummary(o queries.GetOrdersQueryResponse) servers.OrderSummary {
	return servers.OrderSummary{
		Id:           o.ID.Bytes(),
		Number:       o.Number,
		Status:       o.Status.String(),
		UserId:       fromOptionalUUID(o.UserID),
		Email:        o.Email,
		Currency:     o.Currency,
		NumItems:     o.NumItems,
		TotalInclTax: o.TotalInclTax,
		PlacedAt:     o.PlacedAt,
	}
}

// Register handles POST /accounts/register/.
func (s *Server) Register(c echo.Context) error {
	var req servers.RegisterJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		return err
	}
	u, err := s.cmd.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newUser(u))
}

// Login handles POST /accounts/login/. The session key changes on login so
// a key fixed before sign-in is useless afterwards.
func (s *Server) Login(c echo.Context) error {
	var req servers.LoginJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	result, err := s.cmd.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if err = currentSession(c).CycleKey(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.LoginResult{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      newUser(result.User),
	})
}

// Logout handles POST /accounts/logout/ - ends the visit and forgets the
// session.
func (s *Server) Logout(c echo.Context) error {
	sess := currentSession(c)
	if err := s.cmd.Tracking.EndVisit(c.Request().Context(), sess.Key(), s.now()); err != nil {
		s.logger.Warn("ending visit", zap.Error(err))
	}
	if err := sess.Flush(); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /accounts/me/.
func (s *Server) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, newUser(currentUser(c)))
}

// ListAddresses handles GET /accounts/addresses/.
func (s *Server) ListAddresses(c echo.Context) error {
	book, err := s.uow.Create().UserAddressRepository().ListForUser(c.Request().Context(), currentUser(c).ID())
	if err != nil {
		return err
	}
	resp := make([]servers.UserAddress, 0, len(book))
	for _, a := range book {
		resp = append(resp, newUserAddress(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// AddAddress handles POST /accounts/addresses/.
func (s *Server) AddAddress(c echo.Context) error {
	var req servers.AddAddressJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAddUserAddressCommand(
		kernel.NewUUID(), currentUser(c).ID(), fromAddress(req.Address), req.IsDefaultForShipping, req.IsDefaultForBilling,
	)
	if err != nil {
		return err
	}
	if err = s.cmd.UserAddresses.HandleAdd(c.Request().Context(), cmd); err != nil {
		return err
	}

	entry, err := s.uow.Create().UserAddressRepository().Get(c.Request().Context(), cmd.AddressID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newUserAddress(entry))
}

// DeleteAddress handles DELETE /accounts/addresses/{address_id}/.
func (s *Server) DeleteAddress(c echo.Context, addressId servers.AddressID) error {
	addressID, err := toUUID(addressId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteUserAddressCommand(addressID, currentUser(c).ID())
	if err != nil {
		return err
	}
	if err = s.cmd.UserAddresses.HandleDelete(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMyOrders handles GET /accounts/orders/.
func (s *Server) ListMyOrders(c echo.Context, params servers.ListMyOrdersParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	userID := currentUser(c).ID()
	query, err := queries.NewGetOrdersQuery(queries.OrderFilter{UserID: &userID}, page)
	if err != nil {
		return err
	}
	orders, err := s.qry.Orders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.OrderPage{
		Items:    convertAll(orders.Items, newOrderSummary),
		Total:    orders.Total,
		Page:     orders.Page.Number,
		PageSize: orders.Page.Size,
		NumPages: orders.NumPages(),
	})
}

// GetMyOrder handles GET /accounts/orders/{number}/. Other customers'
// orders look missing.
func (s *Server) GetMyOrder(c echo.Context, number servers.OrderNumber) error {
	o, err := s.uow.Create().OrderRepository().GetByNumber(c.Request().Context(), number)
	if err != nil {
		return err
	}
	if o.UserID() == nil || !o.UserID().IsEqual(currentUser(c).ID()) {
		return errs.NewObjectNotFoundError("order", number)
	}
	return c.JSON(http.StatusOK, newOrder(o, false))
}
