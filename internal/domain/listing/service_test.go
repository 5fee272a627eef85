package listing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepository(testutil.OpenDB(t, &Listing{})))
}

func price(v float64) *float64 { return &v }

func TestCreate_StoresDraftWithSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, 7, Payload{
		Category:  "house",
		Pricing:   "nightly",
		Title:     "  Lake view cottage ",
		Address:   "Lakeside, Pokhara",
		Photos:    []string{"a", "b"},
		Amenities: nil,
		Price:     price(100),
	})
	require.NoError(t, err)
	assert.Len(t, l.ID, 36)
	assert.Equal(t, StatusDraft, l.Status)
	assert.Equal(t, "lake-view-cottage", l.Slug)
	assert.Equal(t, "Lake view cottage", l.Title)

	stored, err := svc.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(stored.Photos))
	assert.JSONEq(t, `[]`, string(stored.Amenities))
	require.NotNil(t, stored.Price)
	assert.Equal(t, 100.0, *stored.Price)
}

func TestCreate_SlugCollisionGetsSuffix(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 7, Payload{Title: "Cosy Flat", Category: "apartment"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, 8, Payload{Title: "Cosy flat", Category: "apartment"})
	require.NoError(t, err)

	assert.Equal(t, "cosy-flat", first.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "cosy-flat-"), second.Slug)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_TitleRequired(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(context.Background(), 7, Payload{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleMissing)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHandler_DraftVisibleToOwnerOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	l, err := svc.Create(context.Background(), 7, Payload{Title: "Hidden gem"})
	require.NoError(t, err)

	var userID int64
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))

	userID = 8
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/listings/"+l.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	userID = 7
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/listings/"+l.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/listings/mine", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Listings []Listing `json:"listings"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Listings, 1)
	assert.Equal(t, l.ID, body.Data.Listings[0].ID)
}
