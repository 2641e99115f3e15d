package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// bindBody decodes the JSON body into dst and runs its validate tags.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return err
	}
	return c.Validate(dst)
}

// toUUID turns an identifier bound by the generated wrapper into a domain
// one. The nil UUID is rejected.
func toUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}

func toOptionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func fromOptionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}

func newPage(page *servers.Page, size *servers.PageSize) (queries.Page, error) {
	var number, perPage int
	if page != nil {
		number = *page
	}
	if size != nil {
		perPage = *size
	}
	return queries.NewPage(number, perPage)
}

func convertAll[R any, T any](in []R, convert func(R) T) []T {
	out := make([]T, len(in))
	for i, item := range in {
		out[i] = convert(item)
	}
	return out
}

func optionalString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
