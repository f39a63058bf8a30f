package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"shipconvenient/internal/core/application/usecases/queries"
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SuggestionHandler is the part of queries.SuggestParcelsQueryHandler the server calls.
type SuggestionHandler interface {
	Handle(ctx context.Context, query queries.SuggestParcelsQuery) ([]queries.SuggestedParcel, error)
	HandleV2(ctx context.Context, query queries.SuggestParcelsV2Query) ([]queries.SuggestedParcel, error)
}

// Server implements ServerInterface on top of the suggestion use case.
type Server struct {
	suggestions SuggestionHandler
	logger      *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server over the suggestion handler.
func NewServer(suggestions SuggestionHandler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		suggestions: suggestions,
		logger:      logger.With("component", "http_server"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetSuggestions handles GET /api/v1/couriers/{courierId}/suggestions.
func (s *Server) GetSuggestions(ctx echo.Context, courierID string) error {
	id, err := kernel.UUIDFromString(courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewSuggestParcelsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	suggestions, err := s.suggestions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSuggestions(suggestions))
}

// GetSuggestionsV2 handles GET /api/v2/couriers/{courierId}/suggestions.
func (s *Server) GetSuggestionsV2(ctx echo.Context, courierID string, params GetSuggestionsV2Params) error {
	id, err := kernel.UUIDFromString(courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	var committed []kernel.UUID
	if params.Committed != nil {
		committed = make([]kernel.UUID, 0, len(params.Committed))
		for _, raw := range params.Committed {
			parcelID, parseErr := kernel.UUIDFromString(raw)
			if parseErr != nil {
				return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("committed", parseErr))
			}
			committed = append(committed, parcelID)
		}
	}

	query, err := queries.NewSuggestParcelsV2Query(id, committed)
	if err != nil {
		return s.fail(ctx, err)
	}

	suggestions, err := s.suggestions.HandleV2(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSuggestions(suggestions))
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "suggestion request failed",
			"path", ctx.Path(), "error", err)
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, queries.ErrCourierNotFound):
		return http.StatusNotFound, "Courier not found"
	case errors.Is(err, queries.ErrCommittedNotFound):
		return http.StatusNotFound, "Committed parcel not found"
	case errors.Is(err, queries.ErrProfileIsMissing):
		return http.StatusPreconditionFailed, "Courier profile is not created"
	case errors.Is(err, queries.ErrCapacityExceeded):
		return http.StatusConflict, "Courier already has too many parcels in flight"
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "Invalid request: " + err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "Request was cancelled"
	}
	return http.StatusInternalServerError, "Failed to suggest parcels"
}
