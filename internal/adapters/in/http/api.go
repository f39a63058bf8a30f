package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetSuggestionsV2Params are the query parameters of GET /api/v2/couriers/{courierId}/suggestions.
type GetSuggestionsV2Params struct {
	// Committed is nil when the parameter is absent and empty when it has no ids.
	Committed []string
}

// ServerInterface is implemented by Server. One method per operation of openapi.yaml.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (GET /api/v1/couriers/{courierId}/suggestions)
	GetSuggestions(ctx echo.Context, courierID string) error
	// (GET /api/v2/couriers/{courierId}/suggestions)
	GetSuggestionsV2(ctx echo.Context, courierID string, params GetSuggestionsV2Params) error
}

// ServerInterfaceWrapper binds request parameters and forwards to the ServerInterface.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) GetSuggestions(ctx echo.Context) error {
	courierID, err := bindCourierID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetSuggestions(ctx, courierID)
}

func (w *ServerInterfaceWrapper) GetSuggestionsV2(ctx echo.Context) error {
	courierID, err := bindCourierID(ctx)
	if err != nil {
		return err
	}

	var params GetSuggestionsV2Params
	if ctx.QueryParams().Has("committed") {
		if params.Committed, err = bindCommitted(ctx); err != nil {
			return err
		}
	}

	return w.Handler.GetSuggestionsV2(ctx, courierID, params)
}

// bindCommitted returns a non-nil slice: a present but empty parameter is an explicit empty set.
func bindCommitted(ctx echo.Context) ([]string, error) {
	ids := []string{}
	if strings.TrimSpace(ctx.QueryParam("committed")) == "" {
		return ids, nil
	}

	var committed *[]string
	err := runtime.BindQueryParameter("form", false, false, "committed", ctx.QueryParams(), &committed)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter committed: "+err.Error())
	}
	if committed == nil {
		return ids, nil
	}
	for _, id := range *committed {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func bindCourierID(ctx echo.Context) (string, error) {
	var courierID string
	err := runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter courierId: "+err.Error())
	}
	return courierID, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group RegisterHandlers needs.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", wrapper.GetHealth)
	router.GET("/api/v1/couriers/:courierId/suggestions", wrapper.GetSuggestions)
	router.GET("/api/v2/couriers/:courierId/suggestions", wrapper.GetSuggestionsV2)
}
