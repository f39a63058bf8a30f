package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "shipconvenient/internal/adapters/in/http"
	"shipconvenient/internal/core/application/usecases/queries"
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/kernel/kerneltest"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSuggestionHandler struct {
	mock.Mock
}

func (m *MockSuggestionHandler) Handle(
	ctx context.Context,
	query queries.SuggestParcelsQuery,
) ([]queries.SuggestedParcel, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.SuggestedParcel), args.Error(1)
}

func (m *MockSuggestionHandler) HandleV2(
	ctx context.Context,
	query queries.SuggestParcelsV2Query,
) ([]queries.SuggestedParcel, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.SuggestedParcel), args.Error(1)
}

func newRouter(t *testing.T, handler *MockSuggestionHandler) *echo.Echo {
	t.Helper()

	e, err := httpadapter.NewRouter(httpadapter.NewServer(handler, nil), nil)
	require.NoError(t, err)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newSuggestion(t *testing.T, distance float64) queries.SuggestedParcel {
	t.Helper()

	product, err := parcel.NewProduct(kernel.NewUUID(), "rice", 45000)
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		kerneltest.GeoPoint(10.771, 106.705),
		kerneltest.GeoPoint(10.771, 106.715),
		[]parcel.Product{product},
		parcel.Approved,
	)
	require.NoError(t, err)

	return queries.SuggestedParcel{Parcel: p, DistanceExtend: distance}
}

func forCourier(id kernel.UUID) any {
	return mock.MatchedBy(func(q queries.SuggestParcelsQuery) bool {
		return q.CourierID().IsEqual(id)
	})
}

func TestSpec_IsValid(t *testing.T) {
	doc, err := httpadapter.Spec()

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v2/couriers/{courierId}/suggestions"))
}

func TestServer_GetHealth(t *testing.T) {
	rec := get(newRouter(t, new(MockSuggestionHandler)), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_ServesDocs(t *testing.T) {
	e := newRouter(t, new(MockSuggestionHandler))

	t.Run("swagger ui", func(t *testing.T) {
		rec := get(e, "/swagger/index.html")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger-ui")
	})

	t.Run("swagger document is the embedded api", func(t *testing.T) {
		rec := get(e, "/swagger/doc.json")

		require.Equal(t, http.StatusOK, rec.Code)
		var doc struct {
			OpenAPI string         `json:"openapi"`
			Paths   map[string]any `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.True(t, strings.HasPrefix(doc.OpenAPI, "3."))
		assert.Contains(t, doc.Paths, "/api/v2/couriers/{courierId}/suggestions")
	})

	t.Run("raw document", func(t *testing.T) {
		rec := get(e, "/openapi.yaml")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/v1/couriers/{courierId}/suggestions")
	})
}

func TestServer_GetSuggestions(t *testing.T) {
	t.Run("should render suggestions", func(t *testing.T) {
		// Given
		courierID := kernel.NewUUID()
		suggestion := newSuggestion(t, 1150.5)
		handler := new(MockSuggestionHandler)
		handler.On("Handle", mock.Anything, forCourier(courierID)).
			Return([]queries.SuggestedParcel{suggestion}, nil).Once()

		// When
		rec := get(newRouter(t, handler), "/api/v1/couriers/"+courierID.String()+"/suggestions")

		// Then
		require.Equal(t, http.StatusOK, rec.Code)

		var body []httpadapter.Suggestion
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, suggestion.Parcel.ID().Bytes(), body[0].ID)
		assert.Equal(t, "APPROVED", body[0].Status)
		assert.InDelta(t, 10.771, body[0].Pickup.Latitude, 0)
		assert.InDelta(t, 106.715, body[0].DropOff.Longitude, 0)
		assert.Equal(t, int64(45000), body[0].TotalPrice)
		assert.Equal(t, "rice", body[0].Products[0].Name)
		assert.InDelta(t, 1150.5, body[0].DistanceExtend, 0)
		handler.AssertExpectations(t)
	})

	t.Run("should render an empty list as []", func(t *testing.T) {
		handler := new(MockSuggestionHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.SuggestedParcel{}, nil).Once()

		rec := get(newRouter(t, handler), "/api/v1/couriers/"+kernel.NewUUID().String()+"/suggestions")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should map use case errors", func(t *testing.T) {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "courier not found", err: queries.ErrCourierNotFound, status: http.StatusNotFound},
			{name: "profile missing", err: queries.ErrProfileIsMissing, status: http.StatusPreconditionFailed},
			{
				name:   "capacity exceeded",
				err:    fmt.Errorf("%w: %d in flight", queries.ErrCapacityExceeded, 2),
				status: http.StatusConflict,
			},
			{
				name:   "committed not found",
				err:    errors.Join(queries.ErrCommittedNotFound, errs.NewObjectNotFoundError("parcel", "x")),
				status: http.StatusNotFound,
			},
			{name: "invalid value", err: errs.NewValueIsInvalidError("direction"), status: http.StatusBadRequest},
			{name: "cancelled", err: context.Canceled, status: http.StatusServiceUnavailable},
			{name: "unexpected", err: errors.New("connection refused"), status: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				handler := new(MockSuggestionHandler)
				handler.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

				rec := get(newRouter(t, handler), "/api/v1/couriers/"+kernel.NewUUID().String()+"/suggestions")

				assert.Equal(t, tc.status, rec.Code)
				var body httpadapter.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.status, body.Code)
				assert.NotEmpty(t, body.Message)
				assert.NotContains(t, body.Message, "connection refused")
			})
		}
	})

	t.Run("should reject a malformed courier id before the handler", func(t *testing.T) {
		handler := new(MockSuggestionHandler)

		rec := get(newRouter(t, handler), "/api/v1/couriers/not-a-uuid/suggestions")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "courierId")
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject the nil uuid", func(t *testing.T) {
		handler := new(MockSuggestionHandler)

		rec := get(newRouter(t, handler), "/api/v1/couriers/00000000-0000-0000-0000-000000000000/suggestions")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer unknown paths with a json 404", func(t *testing.T) {
		rec := get(newRouter(t, new(MockSuggestionHandler)), "/api/v3/nothing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":404`)
	})
}

func TestServer_GetSuggestionsV2(t *testing.T) {
	courierID := kernel.NewUUID()
	base := "/api/v2/couriers/" + courierID.String() + "/suggestions"

	committedIs := func(explicit bool, ids ...kernel.UUID) any {
		return mock.MatchedBy(func(q queries.SuggestParcelsV2Query) bool {
			got, ok := q.Committed()
			if ok != explicit || len(got) != len(ids) || !q.CourierID().IsEqual(courierID) {
				return false
			}
			for i := range ids {
				if !got[i].IsEqual(ids[i]) {
					return false
				}
			}
			return true
		})
	}

	t.Run("should use in-flight parcels without the parameter", func(t *testing.T) {
		handler := new(MockSuggestionHandler)
		handler.On("HandleV2", mock.Anything, committedIs(false)).Return([]queries.SuggestedParcel{}, nil).Once()

		rec := get(newRouter(t, handler), base)

		assert.Equal(t, http.StatusOK, rec.Code)
		handler.AssertExpectations(t)
	})

	t.Run("should treat an empty value as nothing committed", func(t *testing.T) {
		handler := new(MockSuggestionHandler)
		handler.On("HandleV2", mock.Anything, committedIs(true)).Return([]queries.SuggestedParcel{}, nil).Once()

		rec := get(newRouter(t, handler), base+"?committed=")

		assert.Equal(t, http.StatusOK, rec.Code)
		handler.AssertExpectations(t)
	})

	t.Run("should pass explicit ids in order", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		handler := new(MockSuggestionHandler)
		handler.On("HandleV2", mock.Anything, committedIs(true, b, a)).
			Return([]queries.SuggestedParcel{newSuggestion(t, 2000)}, nil).Once()

		rec := get(newRouter(t, handler), base+"?committed="+b.String()+","+a.String())

		assert.Equal(t, http.StatusOK, rec.Code)
		handler.AssertExpectations(t)
	})

	t.Run("should pass a single explicit id", func(t *testing.T) {
		a := kernel.NewUUID()
		handler := new(MockSuggestionHandler)
		handler.On("HandleV2", mock.Anything, committedIs(true, a)).Return([]queries.SuggestedParcel{}, nil).Once()

		rec := get(newRouter(t, handler), base+"?committed="+a.String())

		assert.Equal(t, http.StatusOK, rec.Code)
		handler.AssertExpectations(t)
	})

	t.Run("should reject malformed committed ids", func(t *testing.T) {
		handler := new(MockSuggestionHandler)

		rec := get(newRouter(t, handler), base+"?committed="+kernel.NewUUID().String()+",nope")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "HandleV2", mock.Anything, mock.Anything)
	})

	t.Run("should reject too many committed ids", func(t *testing.T) {
		ids := make([]string, 11)
		for i := range ids {
			ids[i] = kernel.NewUUID().String()
		}
		handler := new(MockSuggestionHandler)

		rec := get(newRouter(t, handler), base+"?committed="+strings.Join(ids, ","))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "HandleV2", mock.Anything, mock.Anything)
	})
}
