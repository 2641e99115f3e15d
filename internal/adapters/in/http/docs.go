package http

import (
	_ "embed"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPISpec []byte

var (
	docsOnce sync.Once
	docsJSON []byte
	errDocs  error
)

type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string { return string(docsJSON) }

// registerDocs validates the embedded OpenAPI document and publishes it to
// swag, which echo-swagger reads from. It runs once per process.
func registerDocs() error {
	docsOnce.Do(func() {
		doc, err := loadOpenAPI()
		if err != nil {
			errDocs = err
			return
		}
		if docsJSON, errDocs = doc.MarshalJSON(); errDocs != nil {
			return
		}
		swag.Register(swag.Name, openAPIDoc{})
	})
	return errDocs
}

func loadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

func serveOpenAPI(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, docsJSON)
}
