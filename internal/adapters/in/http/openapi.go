package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// swaggerInstance is the swag registry name the Swagger UI reads from.
const swaggerInstance = "ordertracker"

//go:embed openapi.yaml
var openAPISpec []byte

var registerSwagDoc sync.Once

// APIDocs holds the validated OpenAPI document.
type APIDocs struct {
	doc  *openapi3.T
	json []byte
}

// LoadAPIDocs parses and validates the embedded OpenAPI document and
// registers it with swag for the Swagger UI.
func LoadAPIDocs(ctx context.Context) (*APIDocs, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	registerSwagDoc.Do(func() {
		swag.Register(swaggerInstance, swagDoc(raw))
	})

	return &APIDocs{doc: doc, json: raw}, nil
}

// Version returns info.version of the document.
func (d *APIDocs) Version() string {
	return d.doc.Info.Version
}

// ServeJSON handles GET /api/openapi.json.
func (d *APIDocs) ServeJSON(ctx echo.Context) error {
	return ctx.JSONBlob(http.StatusOK, d.json)
}

// SwaggerUI returns the handler mounted under /swagger/*.
func (d *APIDocs) SwaggerUI() echo.HandlerFunc {
	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance))
}

type swagDoc []byte

func (s swagDoc) ReadDoc() string {
	return string(s)
}
