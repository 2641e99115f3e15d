package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func newProductSummary(p queries.GetProductsQueryResponse) servers.ProductSummary {
	return servers.ProductSummary{
		Id:                 p.ID.Bytes(),
		Title:              p.Title,
		Upc:                p.UPC,
		IsEnabled:          p.IsEnabled,
		IsShippingRequired: p.IsShippingRequired,
		Currency:           p.Currency,
		PriceExclTax:       p.PriceExclTax,
		NetStockLevel:      p.NetStockLevel,
	}
}

func newReview(r queries.GetReviewsQueryResponse) servers.Review {
	return servers.Review{
		Id:         r.ID.Bytes(),
		UserId:     fromOptionalUUID(r.UserID),
		Name:       r.Name,
		Score:      r.Score,
		Title:      r.Title,
		Body:       r.Body,
		Status:     r.Status.String(),
		TotalVotes: r.TotalVotes,
		DeltaVotes: r.DeltaVotes,
		CreatedAt:  r.CreatedAt,
	}
}

// ListProducts handles GET /catalogue/ - lists enabled products and
// records searches.
func (s *Server) ListProducts(c echo.Context, params servers.ListProductsParams) error {
	page, err := newPage(params.Page, params.PageSize)
	if err != nil {
		return err
	}

	query := queries.NewGetProductsQuery(page, optionalString(params.Q), true)
	products, err := s.qry.Products.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	if query.Search() != "" {
		if err = s.cmd.Tracking.RecordSearch(c.Request().Context(), currentUserID(c), query.Search(), int(products.Total)); err != nil {
			s.logger.Warn("recording search", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, servers.ProductPage{
		Items:    convertAll(products.Items, newProductSummary),
		Total:    products.Total,
		Page:     products.Page.Number,
		PageSize: products.Page.Size,
		NumPages: products.NumPages(),
	})
}

// GetProduct handles GET /catalogue/{product_id}/ - shows a product with its
// price and availability.
func (s *Server) GetProduct(c echo.Context, productId servers.ProductID) error {
	productID, err := toUUID(productId)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	uow := s.uow.Create()
	product, err := uow.ProductRepository().Get(ctx, productID)
	if err != nil {
		return err
	}
	u := currentUser(c)
	if !product.IsEnabled() && (u == nil || !u.IsStaff()) {
		return errs.NewObjectNotFoundError("product", productID.String())
	}
	records, err := uow.StockRecordRepository().ListForProduct(ctx, productID)
	if err != nil {
		return err
	}
	info := s.strategy.FetchForProduct(product, records)

	if err = s.cmd.Tracking.RecordProductView(ctx, productID, currentUserID(c)); err != nil {
		s.logger.Warn("recording product view", zap.Error(err))
	}

	return c.JSON(http.StatusOK, servers.Product{
		Id:                 product.ID().Bytes(),
		Title:              product.Title(),
		Upc:                product.UPC(),
		Description:        product.Description(),
		IsShippingRequired: product.IsShippingRequired(),
		Attributes:         product.Attributes(),
		Price:              newOptionalPrice(info.Price),
		Availability:       newAvailability(info.Availability),
	})
}

// ListReviews handles GET /catalogue/{product_id}/reviews/.
func (s *Server) ListReviews(c echo.Context, productId servers.ProductID, params servers.ListReviewsParams) error {
	var sortBy string
	if params.SortBy != nil {
		sortBy = string(*params.SortBy)
	}
	return s.listReviews(c, productId, params.Page, params.PageSize, sortBy, true)
}

func (s *Server) listReviews(
	c echo.Context,
	productId servers.ProductID,
	pageNumber *servers.Page,
	pageSize *servers.PageSize,
	sortBy string,
	approvedOnly bool,
) error {
	productID, err := toUUID(productId)
	if err != nil {
		return err
	}
	page, err := newPage(pageNumber, pageSize)
	if err != nil {
		return err
	}

	query, err := queries.NewGetReviewsQuery(productID, sortBy, approvedOnly, page)
	if err != nil {
		return err
	}
	reviews, err := s.qry.Reviews.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servers.ReviewPage{
		Items:    convertAll(reviews.Items, newReview),
		Total:    reviews.Total,
		Page:     reviews.Page.Number,
		PageSize: reviews.Page.Size,
		NumPages: reviews.NumPages(),
	})
}

// CreateReview handles POST /catalogue/{product_id}/reviews/. Signed-in
// customers review under their account; guests give a name and email.
func (s *Server) CreateReview(c echo.Context, productId servers.ProductID) error {
	productID, err := toUUID(productId)
	if err != nil {
		return err
	}
	var req servers.CreateReviewJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}

	author := review.Author{UserID: currentUserID(c), Name: req.Name, Email: req.Email}
	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), productID, author, req.Score, req.Title, req.Body)
	if err != nil {
		return err
	}
	created, err := s.cmd.Reviews.HandleCreate(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.CreatedReview{
		Id:     created.ID().Bytes(),
		Status: created.Status().String(),
	})
}

// VoteOnReview handles POST /catalogue/{product_id}/reviews/{review_id}/vote/.
func (s *Server) VoteOnReview(c echo.Context, _ servers.ProductID, reviewId servers.ReviewID) error {
	reviewID, err := toUUID(reviewId)
	if err != nil {
		return err
	}
	var req servers.VoteOnReviewJSONRequestBody
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewVoteOnReviewCommand(reviewID, currentUserID(c), req.Delta)
	if err != nil {
		return err
	}
	if err = s.cmd.Reviews.HandleVote(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
