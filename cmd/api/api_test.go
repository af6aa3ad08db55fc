package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/JesusTreelabx/routvi-console/internal/queue"
	"github.com/JesusTreelabx/routvi-console/internal/service"
	"github.com/JesusTreelabx/routvi-console/internal/store/file"
	"github.com/JesusTreelabx/routvi-console/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := zap.NewNop().Sugar()

	st, err := file.New(file.Config{Path: filepath.Join(t.TempDir(), "business.json")})
	require.NoError(t, err)

	broker := queue.NewMemoryBroker()
	catalogService := service.NewCatalogService(st, logger)

	return &application{
		config:              config{addr: ":0"},
		logger:              logger,
		store:               st,
		broker:              broker,
		profileService:      service.NewProfileService(st, logger),
		catalogService:      catalogService,
		promoService:        service.NewPromotionsService(st, logger),
		dailySpecialService: service.NewDailySpecialService(st, logger),
		socialService:       service.NewSocialService(st, logger),
		feedService:         service.NewFeedService(st, nil, logger),
		importService:       service.NewImportService(memory.NewImportTaskRepository(), catalogService, nil, broker, logger),
		publishService:      service.NewPublishService(st, broker, logger),
	}
}

func execute(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))

	return out
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "healthy", body["status"])
}

func TestGetProfileReturnsDefaults(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodGet, "/api/v1/business/profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Chicago Deep Pizza", body["name"])
}

func TestUpdateProfile(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodPut, "/api/v1/business/profile", map[string]any{
		"name": "La Terraza",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = execute(t, mux, http.MethodGet, "/api/v1/business/profile", nil)
	body := decodeBody(t, rr)
	assert.Equal(t, "La Terraza", body["name"])
}

func TestCategoryAndProductLifecycle(t *testing.T) {
	mux := newTestApplication(t).mount()

	// create category
	rr := execute(t, mux, http.MethodPost, "/api/v1/business/menu/categories", map[string]any{"name": "Pizzas"})
	require.Equal(t, http.StatusCreated, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Categoría creada correctamente", body["message"])
	categoryID := body["data"].(map[string]any)["id"].(string)
	require.NotEmpty(t, categoryID)

	// create product, price as a currency string
	rr = execute(t, mux, http.MethodPost, fmt.Sprintf("/api/v1/business/menu/categories/%s/products", categoryID), map[string]any{
		"name":  "Deep Dish",
		"price": "$249",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	product := decodeBody(t, rr)["data"].(map[string]any)
	productID := product["id"].(string)
	assert.Equal(t, float64(249), product["price"])
	assert.Equal(t, true, product["available"])

	// partial update
	rr = execute(t, mux, http.MethodPut, "/api/v1/business/menu/products/"+productID, map[string]any{
		"available": false,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, false, updated["available"])
	assert.Equal(t, "Deep Dish", updated["name"])

	// cascade delete
	rr = execute(t, mux, http.MethodDelete, "/api/v1/business/menu/categories/"+categoryID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = execute(t, mux, http.MethodPut, "/api/v1/business/menu/products/"+productID, map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = execute(t, mux, http.MethodDelete, "/api/v1/business/menu/categories/"+categoryID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateCategoryValidation(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodPost, "/api/v1/business/menu/categories", map[string]any{"name": ""})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decodeBody(t, rr)
	assert.Contains(t, body, "error")
}

func TestPromotionLifecycle(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodPost, "/api/v1/business/promotions", map[string]any{
		"title":       "2x1 en pizzas",
		"description": "Martes y jueves",
		"code":        "PIZZA2X1",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	promo := decodeBody(t, rr)["data"].(map[string]any)
	promoID := promo["id"].(string)
	assert.Equal(t, "10%", promo["discount"])
	assert.Equal(t, true, promo["active"])
	assert.NotEmpty(t, promo["expiryDate"])

	rr = execute(t, mux, http.MethodPut, "/api/v1/business/promotions/"+promoID, map[string]any{
		"discount": "25%",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = execute(t, mux, http.MethodGet, "/api/v1/business/promotions", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	promos := decodeBody(t, rr)["data"].([]any)
	require.Len(t, promos, 1)
	assert.Equal(t, "25%", promos[0].(map[string]any)["discount"])

	rr = execute(t, mux, http.MethodDelete, "/api/v1/business/promotions/"+promoID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = execute(t, mux, http.MethodDelete, "/api/v1/business/promotions/"+promoID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDailySpecialEndpoints(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodPost, "/api/v1/business/daily-special/set", map[string]any{
		"productId": "prod_1",
		"dayOfWeek": "Lunes",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = execute(t, mux, http.MethodGet, "/api/v1/business/daily-special", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	specials := decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, "prod_1", specials["Lunes"])

	// invalid weekday
	rr = execute(t, mux, http.MethodPost, "/api/v1/business/daily-special/set", map[string]any{
		"productId": "prod_1",
		"dayOfWeek": "Monday",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSocialPostEndpoints(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodPost, "/api/v1/business/social-posts", map[string]any{
		"content": "¡Nueva pizza de temporada!",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = execute(t, mux, http.MethodGet, "/api/v1/business/social-posts", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	posts := decodeBody(t, rr)["data"].([]any)
	require.Len(t, posts, 1)
	assert.Equal(t, "¡Nueva pizza de temporada!", posts[0].(map[string]any)["content"])
}

func TestBusinessDetailEndpoint(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodGet, "/api/v1/businesses/chicago-deep-pizza", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, true, body["available"])
	assert.Equal(t, "Chicago Deep Pizza", body["name"])

	rr = execute(t, mux, http.MethodGet, "/api/v1/businesses/otro-negocio", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHomeFeedEndpoint(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodGet, "/api/v1/home-feed?lat=22.77&lng=-102.58", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	entries := decodeBody(t, rr)["data"].([]any)
	require.Len(t, entries, 1)

	entry := entries[0].(map[string]any)
	assert.Equal(t, "chicago-deep-pizza", entry["slug"])
	assert.Contains(t, entry, "isOpenNow")
	assert.Contains(t, entry, "hasActivePromotion")
}

func TestImportEndpoints(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodPost, "/api/v1/business/menu/import", map[string]any{
		"spreadsheet_id": "sheet-123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	data := decodeBody(t, rr)["data"].(map[string]any)
	taskID := data["task_id"].(string)
	assert.Equal(t, "queued", data["status"])

	rr = execute(t, mux, http.MethodGet, "/api/v1/business/menu/import/"+taskID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = execute(t, mux, http.MethodPost, "/api/v1/business/menu/import", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPublishEndpoint(t *testing.T) {
	mux := newTestApplication(t).mount()

	rr := execute(t, mux, http.MethodPost, "/api/v1/business/publish", nil)
	require.Equal(t, http.StatusAccepted, rr.Code)

	data := decodeBody(t, rr)["data"].(map[string]any)
	assert.NotEmpty(t, data["jobId"])
	assert.Equal(t, "queued", data["status"])
}
