package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/checkout"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// redirect sends the client to another checkout step.
func redirect(c echo.Context, url string, messages ...string) error {
	c.Response().Header().Set(echo.HeaderLocation, url)
	return c.JSON(http.StatusSeeOther, servers.Redirect{RedirectUrl: url, Messages: messages})
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if url, messages, ok := checkout.AsRedirect(err); ok {
		_ = redirect(c, url, messages...)
		return
	}

	code, message := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, servers.Error{Code: code, Message: message})
}

// statusFor maps domain errors onto status codes. Unknown errors hide their
// text from the client.
func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, commands.ErrEmailTaken),
		errors.Is(err, review.ErrAlreadyReviewed),
		errors.Is(err, review.ErrAlreadyVoted):
		return http.StatusConflict, err.Error()
	case errors.Is(err, review.ErrReviewNotAllowed),
		errors.Is(err, review.ErrOwnReview),
		errors.Is(err, review.ErrAnonymousVote):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, commands.ErrNotPurchasable),
		errors.Is(err, partner.ErrInsufficientStock):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
