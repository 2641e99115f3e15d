package analytics

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

type PageView struct {
	ID          kernel.UUID
	SessionKey  string
	URL         string
	Referer     *string
	QueryString *string
	Method      string
	ViewTime    time.Time
}

func NewPageView(id kernel.UUID, sessionKey string, url string, method string, viewTime time.Time) (PageView, error) {
	var keyErr, urlErr error
	if sessionKey == "" {
		keyErr = errs.NewValueIsRequiredError("session key")
	}
	if url == "" {
		urlErr = errs.NewValueIsRequiredError("url")
	}
	if err := errors.Join(id.Validate(), keyErr, urlErr); err != nil {
		return PageView{}, err
	}
	return PageView{ID: id, SessionKey: sessionKey, URL: url, Method: method, ViewTime: viewTime.UTC()}, nil
}
