package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubHistory struct{}

func (stubHistory) ListByUser(context.Context, int64) ([]Booking, error) { return []Booking{}, nil }

func setupTestRouter(t *testing.T) (*gin.Engine, *fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := newFixture(t, time.Second)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-User-ID") != "" {
			c.Set("user_id", int64(42))
		}
		c.Next()
	})
	NewHandler(f.svc, stubHistory{}).RegisterRoutes(r.Group("/api/v1"))
	return r, f
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func doJSONRequest(t *testing.T, r http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User-ID", "42")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return rr.Code, env
}

func TestHandler_Quote(t *testing.T) {
	r, _ := setupTestRouter(t)

	code, env := doJSONRequest(t, r, http.MethodPost, "/api/v1/quotes", map[string]any{
		"venue_id": 1, "date": "2026-11-14", "guest_count": 2,
	})
	require.Equal(t, http.StatusOK, code)
	var q Quote
	require.NoError(t, json.Unmarshal(env.Data, &q))
	assert.Equal(t, 132.0, q.Total)

	code, env = doJSONRequest(t, r, http.MethodPost, "/api/v1/quotes", map[string]any{
		"venue_id": 1, "date": "2026-11-14", "guest_count": 9,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "CAPACITY_EXCEEDED", env.Error.Code)

	code, env = doJSONRequest(t, r, http.MethodPost, "/api/v1/quotes", map[string]any{
		"venue_id": 404, "date": "2026-11-14", "guest_count": 1,
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestHandler_ReservationFlow(t *testing.T) {
	r, f := setupTestRouter(t)

	code, env := doJSONRequest(t, r, http.MethodPost, "/api/v1/reservations", map[string]any{"venue_id": 1})
	require.Equal(t, http.StatusCreated, code)
	var res Reservation
	require.NoError(t, json.Unmarshal(env.Data, &res))
	base := "/api/v1/reservations/" + res.ID

	details := map[string]any{
		"date":        "2026-11-14",
		"guest_count": 2,
		"contact":     map[string]any{"name": "Sita", "email": "bad", "phone": "9800000000"},
	}
	code, _ = doJSONRequest(t, r, http.MethodPut, base+"/details", details)
	require.Equal(t, http.StatusOK, code)

	code, env = doJSONRequest(t, r, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "Email")

	details["contact"] = map[string]any{"name": "Sita", "email": "sita@example.com", "phone": "9800000000"}
	code, _ = doJSONRequest(t, r, http.MethodPut, base+"/details", details)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSONRequest(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, code)

	code, env = doJSONRequest(t, r, http.MethodPost, base+"/confirm", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "PAYMENT_METHOD_REQUIRED", env.Error.Code)

	code, env = doJSONRequest(t, r, http.MethodPut, base+"/payment-method", map[string]any{"method": "bitcoin"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_PAYMENT_METHOD", env.Error.Code)

	code, _ = doJSONRequest(t, r, http.MethodPut, base+"/payment-method", map[string]any{"method": "esewa"})
	require.Equal(t, http.StatusOK, code)

	f.confirmer.On("Confirm", mock.Anything, mock.Anything).Return(Confirmation{}, errors.New("gateway down")).Once()
	code, env = doJSONRequest(t, r, http.MethodPost, base+"/confirm", nil)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "CONFIRMATION_FAILED", env.Error.Code)

	code, _ = doJSONRequest(t, r, http.MethodPost, base+"/retry", nil)
	require.Equal(t, http.StatusOK, code)

	f.confirmer.On("Confirm", mock.Anything, mock.Anything).Return(Confirmation{BookingID: 3}, nil).Once()
	f.notifier.On("BookingConfirmed", mock.Anything, mock.Anything).Return(nil)
	code, env = doJSONRequest(t, r, http.MethodPost, base+"/confirm", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, PhaseConfirmed, res.Phase)

	code, env = doJSONRequest(t, r, http.MethodPost, base+"/edit", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_PHASE", env.Error.Code)

	code, _ = doJSONRequest(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSONRequest(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
