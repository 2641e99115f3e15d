package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// methodDetails and methodCharges split a method form into what every kind
// shares and the charges; charges that do not apply to the kind are ignored.
func methodDetails(r servers.ShippingMethodRequest) commands.MethodDetails {
	return commands.MethodDetails{
		Name:        r.Name,
		Description: r.Description,
		Countries:   r.Countries,
		IsEnabled:   r.IsEnabled,
	}
}

func methodCharges(r servers.ShippingMethodRequest) commands.Charges {
	return commands.Charges{
		PricePerOrder:         r.PricePerOrder,
		PricePerItem:          r.PricePerItem,
		FreeShippingThreshold: r.FreeShippingThreshold,
		DefaultWeight:         r.DefaultWeight,
	}
}

func newShippingMethodConfig(m shipping.Configured) servers.ShippingMethodConfig {
	resp := servers.ShippingMethodConfig{
		Id:          m.ID().Bytes(),
		Code:        m.Code(),
		Kind:        string(m.Kind()),
		Name:        m.Name(),
		Description: m.Description(),
		Countries:   m.Countries(),
		IsEnabled:   m.IsEnabled(),
	}
	if resp.Countries == nil {
		resp.Countries = []string{}
	}

	switch method := m.(type) {
	case *shipping.OrderAndItemCharges:
		perOrder, perItem := method.PricePerOrder(), method.PricePerItem()
		resp.PricePerOrder = &perOrder
		resp.PricePerItem = &perItem
		resp.FreeShippingThreshold = method.FreeShippingThreshold()
	case *shipping.WeightBased:
		defaultWeight := method.DefaultWeight()
		resp.DefaultWeight = &defaultWeight
		resp.Bands = []servers.WeightBand{}
		for _, band := range method.Bands() {
			resp.Bands = append(resp.Bands, servers.WeightBand{
				Id:         band.ID().Bytes(),
				UpperLimit: band.UpperLimit(),
				Charge:     band.Charge(),
			})
		}
	}
	return resp
}

func newUserAgent(ua *analytics.UserAgentData) *servers.UserAgent {
	if ua == nil {
		return nil
	}
	return &servers.UserAgent{
		Browser:        ua.Browser,
		BrowserVersion: ua.BrowserVersion,
		Os:             ua.OS,
		Platform:       ua.Platform,
		Mobile:         ua.Mobile,
		Bot:            ua.Bot,
	}
}

// DashboardListProducts handles GET /dashboard/products/ - disabled
// products included.
func (s *Server) DashboardListProducts(c echo.Context, params servers.DashboardListProductsParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	query := queries.NewGetProductsQuery(page, optionalString(params.Q), false)
	products, err := s.qry.Products.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.ProductPage{
		Items:    convertAll(products.Items, newProductSummary),
		Total:    products.Total,
		Page:     products.Page.Number,
		PageSize: products.Page.Size,
		NumPages: products.NumPages(),
	})
}

// CreateProduct handles POST /dashboard/products/.
func (s *Server) CreateProduct(c echo.Context) error {
	var req servers.CreateProductJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	isShippingRequired := true
	if req.IsShippingRequired != nil {
		isShippingRequired = *req.IsShippingRequired
	}
	currency := req.Stock.Currency
	if currency == "" {
		currency = s.settings.Currency
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), req.Title, req.Upc, req.Description, isShippingRequired, req.Attributes,
		commands.StockInput{
			StockRecordID: kernel.NewUUID(),
			PartnerSKU:    req.Stock.PartnerSku,
			Currency:      currency,
			PriceExclTax:  req.Stock.PriceExclTax,
			NumInStock:    req.Stock.NumInStock,
		},
	)
	if err != nil {
		return err
	}
	if err = s.cmd.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, servers.Created{Id: cmd.ProductID().Bytes()})
}

// SetProductEnabled handles PATCH /dashboard/products/{product_id}/.
func (s *Server) SetProductEnabled(c echo.Context, productId servers.ProductID) error {
	productID, err := toUUID(productId)
	if err != nil {
		return err
	}
	var req servers.SetProductEnabledJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSetProductEnabledCommand(productID, *req.IsEnabled)
	if err != nil {
		return err
	}
	if err = s.cmd.SetProductEnabled.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DashboardListReviews handles GET /dashboard/products/{product_id}/reviews/
// and includes reviews awaiting moderation.
func (s *Server) DashboardListReviews(c echo.Context, productId servers.ProductID, params servers.DashboardListReviewsParams) error {
	return s.listReviews(c, productId, params.Page, params.PageSize, optionalString(params.SortBy), false)
}

// ModerateReview handles POST /dashboard/reviews/{review_id}/status/.
func (s *Server) ModerateReview(c echo.Context, reviewId servers.ReviewID) error {
	reviewID, err := toUUID(reviewId)
	if err != nil {
		return err
	}
	var req servers.ModerateReviewJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewModerateReviewCommand(reviewID, review.Status(*req.Status))
	if err != nil {
		return err
	}
	if err = s.cmd.Reviews.HandleModerate(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DashboardListOrders handles GET /dashboard/orders/. It filters on status,
// number and user_id.
func (s *Server) DashboardListOrders(c echo.Context, params servers.DashboardListOrdersParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	filter := queries.OrderFilter{Number: optionalString(params.Number)}
	if raw := optionalString(params.Status); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	if filter.UserID, err = toOptionalUUID(params.UserId); err != nil {
		return err
	}

	query, err := queries.NewGetOrdersQuery(filter, page)
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

// DashboardGetOrder handles GET /dashboard/orders/{number}/ and shows every
// note.
func (s *Server) DashboardGetOrder(c echo.Context, number servers.OrderNumber) error {
	o, err := s.uow.Create().OrderRepository().GetByNumber(c.Request().Context(), number)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrder(o, true))
}

// AddOrderNote handles POST /dashboard/orders/{order_id}/notes/.
func (s *Server) AddOrderNote(c echo.Context, orderId servers.OrderID) error {
	orderID, err := toUUID(orderId)
	if err != nil {
		return err
	}
	var req servers.AddOrderNoteJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAddOrderNoteCommand(orderID, kernel.NewUUID(), currentUserID(c), req.Message, req.IsVisibleOnFrontend)
	if err != nil {
		return err
	}
	if err = s.cmd.AddOrderNote.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderDashboardOrder(c, orderID, http.StatusCreated)
}

// ChangeOrderStatus handles POST /dashboard/orders/{order_id}/status/.
func (s *Server) ChangeOrderStatus(c echo.Context, orderId servers.OrderID) error {
	orderID, err := toUUID(orderId)
	if err != nil {
		return err
	}
	var req servers.ChangeOrderStatusJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return err
	}
	if err = s.cmd.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderDashboardOrder(c, orderID, http.StatusOK)
}

func (s *Server) renderDashboardOrder(c echo.Context, orderID kernel.UUID, status int) error {
	o, err := s.uow.Create().OrderRepository().Get(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(status, newOrder(o, true))
}

// ListShippingMethods handles GET /dashboard/shipping/methods/.
func (s *Server) ListShippingMethods(c echo.Context) error {
	methods, err := s.uow.Create().ShippingMethodRepository().List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, convertAll(methods, newShippingMethodConfig))
}

// CreateShippingMethod handles POST /dashboard/shipping/methods/.
func (s *Server) CreateShippingMethod(c echo.Context) error {
	var req servers.CreateShippingMethodJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateShippingMethodCommand(
		kernel.NewUUID(), shipping.Kind(req.Kind), methodDetails(req), methodCharges(req),
	)
	if err != nil {
		return err
	}
	if _, err = s.cmd.CreateShippingMethod.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderShippingMethod(c, cmd.MethodID(), http.StatusCreated)
}

// UpdateShippingMethod handles PUT /dashboard/shipping/methods/{method_id}/.
// The kind of a method cannot change.
func (s *Server) UpdateShippingMethod(c echo.Context, methodId servers.MethodID) error {
	methodID, err := toUUID(methodId)
	if err != nil {
		return err
	}
	var req servers.UpdateShippingMethodJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateShippingMethodCommand(methodID, methodDetails(req), methodCharges(req))
	if err != nil {
		return err
	}
	if err = s.cmd.UpdateShippingMethod.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderShippingMethod(c, methodID, http.StatusOK)
}

// DeleteShippingMethod handles DELETE /dashboard/shipping/methods/{method_id}/.
func (s *Server) DeleteShippingMethod(c echo.Context, methodId servers.MethodID) error {
	methodID, err := toUUID(methodId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteShippingMethodCommand(methodID)
	if err != nil {
		return err
	}
	if err = s.cmd.DeleteShippingMethod.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddWeightBand handles POST /dashboard/shipping/methods/{method_id}/bands/.
func (s *Server) AddWeightBand(c echo.Context, methodId servers.MethodID) error {
	methodID, err := toUUID(methodId)
	if err != nil {
		return err
	}
	var req servers.AddWeightBandJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAddWeightBandCommand(methodID, kernel.NewUUID(), req.UpperLimit, req.Charge)
	if err != nil {
		return err
	}
	if err = s.cmd.WeightBands.HandleAdd(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderShippingMethod(c, methodID, http.StatusCreated)
}

// RemoveWeightBand handles
// DELETE /dashboard/shipping/methods/{method_id}/bands/{band_id}/.
func (s *Server) RemoveWeightBand(c echo.Context, methodId servers.MethodID, bandId servers.BandID) error {
	methodID, err := toUUID(methodId)
	if err != nil {
		return err
	}
	bandID, err := toUUID(bandId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveWeightBandCommand(methodID, bandID)
	if err != nil {
		return err
	}
	if err = s.cmd.WeightBands.HandleRemove(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderShippingMethod(c, methodID, http.StatusOK)
}

func (s *Server) renderShippingMethod(c echo.Context, methodID kernel.UUID, status int) error {
	m, err := s.uow.Create().ShippingMethodRepository().Get(c.Request().Context(), methodID)
	if err != nil {
		return err
	}
	return c.JSON(status, newShippingMethodConfig(m))
}

// ProductReport handles GET /dashboard/reports/products/.
func (s *Server) ProductReport(c echo.Context, params servers.ProductReportParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	query, err := queries.NewGetProductAnalyticsQuery(optionalString(params.OrderBy), page)
	if err != nil {
		return err
	}
	rows, err := s.qry.ProductAnalytics.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.ProductReportPage{
		Items: convertAll(rows.Items, func(r queries.GetProductAnalyticsQueryResponse) servers.ProductReportRow {
			return servers.ProductReportRow{
				ProductId:          r.ProductID.Bytes(),
				Title:              r.Title,
				NumViews:           r.NumViews,
				NumBasketAdditions: r.NumBasketAdditions,
				NumPurchases:       r.NumPurchases,
				Score:              r.Score,
			}
		}),
		Total:    rows.Total,
		Page:     rows.Page.Number,
		PageSize: rows.Page.Size,
		NumPages: rows.NumPages(),
	})
}

// CustomerReport handles GET /dashboard/reports/customers/.
func (s *Server) CustomerReport(c echo.Context, params servers.CustomerReportParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	rows, err := s.qry.CustomerAnalytics.Handle(c.Request().Context(), queries.NewGetCustomerAnalyticsQuery(page))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.CustomerReportPage{
		Items: convertAll(rows.Items, func(r queries.GetCustomerAnalyticsQueryResponse) servers.CustomerReportRow {
			return servers.CustomerReportRow{
				UserId:             r.UserID.Bytes(),
				Email:              r.Email,
				NumProductViews:    r.NumProductViews,
				NumBasketAdditions: r.NumBasketAdditions,
				NumOrders:          r.NumOrders,
				NumOrderLines:      r.NumOrderLines,
				NumOrderItems:      r.NumOrderItems,
				TotalSpent:         r.TotalSpent,
				DateLastOrder:      r.DateLastOrder,
			}
		}),
		Total:    rows.Total,
		Page:     rows.Page.Number,
		PageSize: rows.Page.Size,
		NumPages: rows.NumPages(),
	})
}

// SearchReport handles GET /dashboard/reports/searches/.
func (s *Server) SearchReport(c echo.Context, params servers.SearchReportParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	rows, err := s.qry.Searches.Handle(c.Request().Context(), queries.NewGetSearchesQuery(optionalString(params.Q), page))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.SearchReportPage{
		Items: convertAll(rows.Items, func(r queries.GetSearchesQueryResponse) servers.SearchReportRow {
			return servers.SearchReportRow{
				Id:          r.ID.Bytes(),
				UserId:      fromOptionalUUID(r.UserID),
				UserEmail:   r.UserEmail,
				Query:       r.Query,
				ResultCount: r.ResultCount,
				CreatedAt:   r.CreatedAt,
			}
		}),
		Total:    rows.Total,
		Page:     rows.Page.Number,
		PageSize: rows.Page.Size,
		NumPages: rows.NumPages(),
	})
}

// AbandonedCartReport handles GET /dashboard/reports/abandoned-carts/.
func (s *Server) AbandonedCartReport(c echo.Context, params servers.AbandonedCartReportParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	rows, err := s.qry.AbandonedCarts.Handle(c.Request().Context(), queries.NewGetAbandonedCartsQuery(s.now(), page))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.AbandonedCartPage{
		Items: convertAll(rows.Items, func(r queries.GetAbandonedCartsQueryResponse) servers.AbandonedCart {
			return servers.AbandonedCart{
				BasketId:     r.BasketID.Bytes(),
				OwnerId:      fromOptionalUUID(r.OwnerID),
				OwnerEmail:   r.OwnerEmail,
				Currency:     r.Currency,
				NumLines:     r.NumLines,
				NumItems:     r.NumItems,
				TotalExclTax: r.TotalExclTax,
				TotalInclTax: r.TotalInclTax,
				CreatedAt:    r.CreatedAt,
			}
		}),
		Total:    rows.Total,
		Page:     rows.Page.Number,
		PageSize: rows.Page.Size,
		NumPages: rows.NumPages(),
	})
}

// VisitorReport handles GET /dashboard/reports/visitors/.
func (s *Server) VisitorReport(c echo.Context, params servers.VisitorReportParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	filter := queries.VisitorFilter{
		IsBot:        params.IsBot,
		Search:       optionalString(params.Q),
		StartedAfter: params.StartedAfter,
	}

	rows, err := s.qry.Visitors.Handle(c.Request().Context(), queries.NewGetVisitorsQuery(filter, page))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.VisitorPage{
		Items: convertAll(rows.Items, func(r queries.GetVisitorsQueryResponse) servers.Visitor {
			return servers.Visitor{
				SessionKey:        r.SessionKey,
				Identity:          r.Identity.Bytes(),
				UserId:            fromOptionalUUID(r.UserID),
				IpAddress:         r.IPAddress,
				Hostname:          r.Hostname,
				StartTime:         r.StartTime,
				TimeOnSiteSeconds: r.TimeOnSite.Seconds(),
				IsBot:             r.IsBot,
				Client:            newUserAgent(r.Client),
				NumPageViews:      r.NumPageViews,
				LandingPage:       r.LandingPage,
				SessionOver:       r.SessionOver,
			}
		}),
		Total:    rows.Total,
		Page:     rows.Page.Number,
		PageSize: rows.Page.Size,
		NumPages: rows.NumPages(),
	})
}

// PageViewReport handles GET /dashboard/reports/page-views/.
func (s *Server) PageViewReport(c echo.Context, params servers.PageViewReportParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}
	filter := queries.PageViewFilter{
		SessionKey: optionalString(params.SessionKey),
		IPAddress:  optionalString(params.IpAddress),
	}

	rows, err := s.qry.PageViews.Handle(c.Request().Context(), queries.NewGetPageViewsQuery(filter, page))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.PageViewPage{
		Items: convertAll(rows.Items, func(r queries.GetPageViewsQueryResponse) servers.PageView {
			return servers.PageView{
				Id:         r.ID.Bytes(),
				SessionKey: r.SessionKey,
				Path:       r.Path,
				Referer:    r.Referer,
				Method:     r.Method,
				ViewTime:   r.ViewTime,
			}
		}),
		Total:    rows.Total,
		Page:     rows.Page.Number,
		PageSize: rows.Page.Size,
		NumPages: rows.NumPages(),
	})
}

// DeleteVisitor handles DELETE /dashboard/visitors/{session_key}/ together
// with the visitor's page views.
func (s *Server) DeleteVisitor(c echo.Context, sessionKey servers.SessionKey) error {
	if err := s.cmd.Tracking.DeleteVisitor(c.Request().Context(), sessionKey); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
