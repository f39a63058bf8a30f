package http

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openapiDoc exposes the embedded document to swag as JSON.
type openapiDoc struct {
	json string
}

func (d openapiDoc) ReadDoc() string {
	return d.json
}

var registerDoc sync.Once

// registerSwaggerDoc registers doc as the default swag instance. swag panics on a second
// registration, so only the first document is kept.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, openapiDoc{json: string(raw)})
	})
	return nil
}

// mountDocs serves Swagger UI under /swagger/ and the raw document at /openapi.yaml.
func mountDocs(e *echo.Echo, doc *openapi3.T) error {
	if err := registerSwaggerDoc(doc); err != nil {
		return err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", openapiSpec)
	})
	return nil
}
