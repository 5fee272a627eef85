package venue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/internal/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewRepository(testutil.OpenDB(t, &Venue{}))
	r := gin.New()
	NewHandler(repo).RegisterRoutes(r.Group("/api/v1"))
	return r, repo
}

func seed(t *testing.T, repo *Repository, venues ...*Venue) {
	t.Helper()
	for _, v := range venues {
		require.NoError(t, repo.Create(context.Background(), v))
	}
}

func TestGet_IncludesWeekendRate(t *testing.T) {
	r, repo := setupTestRouter(t)
	seed(t, repo, &Venue{Name: "Hillside Villa", Category: "house", Pricing: PricingNightly, Price: 100, Capacity: 6})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/venues/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Hillside Villa", body.Data.Name)
	assert.Equal(t, 120.0, body.Data.WeekendRate)
}

func TestGet_Errors(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/venues/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/venues/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestList_Filters(t *testing.T) {
	r, repo := setupTestRouter(t)
	rate := 50.0
	seed(t, repo,
		&Venue{Name: "A", Category: "house", City: "Pokhara", Pricing: PricingNightly, Price: 80, Capacity: 4},
		&Venue{Name: "B", Category: "wedding_hall", City: "Kathmandu", Pricing: PricingHourly, HourlyRate: &rate, Capacity: 300},
		&Venue{Name: "C", Category: "house", City: "Kathmandu", Pricing: PricingNightly, Price: 60, Capacity: 2},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/venues?category=house&guests=3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Venues, 1)
	assert.Equal(t, "A", body.Data.Venues[0].Name)
	assert.Equal(t, int64(1), body.Data.Total)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/venues?city=kathmandu", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Venues, 2)
}

func TestWeekendRate(t *testing.T) {
	explicit := 150.0
	assert.Equal(t, 120.0, (&Venue{Price: 100}).WeekendRate())
	assert.Equal(t, 150.0, (&Venue{Price: 100, WeekendPrice: &explicit}).WeekendRate())
}
