package menuControllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cravespot/cravespot-api/auth"
	"github.com/cravespot/cravespot-api/models"
	"github.com/cravespot/cravespot-api/routes"
	"github.com/cravespot/cravespot-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	s := store.NewMemoryStores()
	r := gin.New()
	routes.SetupRoutes(r, s)
	return r, s
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, s *store.Stores) string {
	t.Helper()
	_, err := s.Users.Insert(context.Background(), &models.User{Email: "root@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	token, err := auth.GenerateToken("root@x.com", "")
	require.NoError(t, err)
	return token
}

// seedMenu inserts n items named item-0..item-(n-1) in order.
func seedMenu(t *testing.T, s *store.Stores, n int, category string) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		item := models.MenuItem{
			Name:     fmt.Sprintf("item-%d", i),
			Category: category,
			Price:    float64(i + 1),
		}
		_, err := s.Menus.Insert(ctx, &item)
		require.NoError(t, err)
	}
}

func fetchMenu(t *testing.T, r http.Handler, path string) []models.MenuItem {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	return items
}

func TestGetMenu_Pagination(t *testing.T) {
	r, s := newTestServer(t)
	seedMenu(t, s, 25, "pizza")

	// page is a zero-indexed window multiplier: skip = page*limit.
	page0 := fetchMenu(t, r, "/menu?page=0&limit=10")
	require.Len(t, page0, 10)
	assert.Equal(t, "item-0", page0[0].Name)
	assert.Equal(t, "item-9", page0[9].Name)

	page1 := fetchMenu(t, r, "/menu?page=1&limit=10")
	require.Len(t, page1, 10)
	assert.Equal(t, "item-10", page1[0].Name)
	assert.Equal(t, "item-19", page1[9].Name)

	page2 := fetchMenu(t, r, "/menu?page=2&limit=10")
	assert.Len(t, page2, 5)

	// Past the end: empty window, not an error.
	page9 := fetchMenu(t, r, "/menu?page=9&limit=10")
	assert.Empty(t, page9)
}

func TestGetMenu_DefaultsReturnEverything(t *testing.T) {
	r, s := newTestServer(t)
	seedMenu(t, s, 7, "salad")

	// Default page=1, limit=0: no cap and zero skip.
	items := fetchMenu(t, r, "/menu")
	assert.Len(t, items, 7)
}

func TestGetMenu_CategoryFilter(t *testing.T) {
	r, s := newTestServer(t)
	seedMenu(t, s, 3, "pizza")
	seedMenu(t, s, 2, "dessert")

	items := fetchMenu(t, r, "/menu?category=dessert")
	assert.Len(t, items, 2)
}

func TestGetMenu_InvalidPage(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/menu?page=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMenu_PageTimesLimitOverflow(t *testing.T) {
	r, s := newTestServer(t)
	seedMenu(t, s, 3, "pizza")

	// page*limit would wrap past MaxInt64 into a negative skip.
	w := doJSON(t, r, http.MethodGet, "/menu?page=3074457345618258603&limit=3", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/menu?page=%d&limit=2", int64(math.MaxInt64)), nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The largest page that still fits is fine: empty window, not an error.
	items := fetchMenu(t, r, fmt.Sprintf("/menu?page=%d&limit=2", int64(math.MaxInt64/2)))
	assert.Empty(t, items)
}

func TestCountMenu(t *testing.T) {
	r, s := newTestServer(t)
	seedMenu(t, s, 4, "pizza")
	seedMenu(t, s, 2, "dessert")

	w := doJSON(t, r, http.MethodGet, "/menuCount", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":6`)

	w = doJSON(t, r, http.MethodGet, "/menuCount?category=pizza", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":4`)
}

func TestCreateMenuItem_RequiresAdmin(t *testing.T) {
	r, s := newTestServer(t)

	item := gin.H{"name": "Ramen", "category": "soup", "price": 11.0}

	w := doJSON(t, r, http.MethodPost, "/menu", item, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, err := s.Users.Insert(context.Background(), &models.User{Email: "plain@x.com", Role: models.RoleUser})
	require.NoError(t, err)
	token, err := auth.GenerateToken("plain@x.com", "")
	require.NoError(t, err)

	w = doJSON(t, r, http.MethodPost, "/menu", item, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateMenuItem_AsAdmin(t *testing.T) {
	r, s := newTestServer(t)
	token := adminToken(t, s)

	w := doJSON(t, r, http.MethodPost, "/menu", gin.H{"name": "Ramen", "category": "soup", "price": 11.0}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["insertedId"])

	count, err := s.Menus.Count(context.Background(), "soup")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateMenuItem(t *testing.T) {
	r, s := newTestServer(t)
	token := adminToken(t, s)

	item := models.MenuItem{Name: "Ramen", Category: "soup", Price: 11}
	id, err := s.Menus.Insert(context.Background(), &item)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPatch, "/menu/"+id, gin.H{"price": 13.5}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"modifiedCount":1`)

	updated, err := s.Menus.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 13.5, updated.Price)
	assert.Equal(t, "Ramen", updated.Name)
}

func TestDeleteMenuItem(t *testing.T) {
	r, s := newTestServer(t)
	token := adminToken(t, s)

	item := models.MenuItem{Name: "Ramen", Category: "soup", Price: 11}
	id, err := s.Menus.Insert(context.Background(), &item)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/menu/"+id, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deletedCount":1`)
}

func TestGetMenuItem(t *testing.T) {
	r, s := newTestServer(t)

	item := models.MenuItem{Name: "Ramen", Category: "soup", Price: 11}
	id, err := s.Menus.Insert(context.Background(), &item)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/menu/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ramen")
}

func TestGetMenuItem_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/menu/65b2f0a1c9e77c0012345678", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMenuItem_InvalidID(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/menu/nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportMenu_RequiresAdmin(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/menu/export", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExportMenu_AsAdmin(t *testing.T) {
	r, s := newTestServer(t)
	token := adminToken(t, s)
	seedMenu(t, s, 3, "pizza")

	w := doJSON(t, r, http.MethodGet, "/menu/export", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "menu.xlsx")
	assert.NotZero(t, w.Body.Len())
}
