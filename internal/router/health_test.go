package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hasnainyaqub/Microservice-App/internal/cache"
	"github.com/hasnainyaqub/Microservice-App/internal/menu"
	"github.com/hasnainyaqub/Microservice-App/internal/recommend"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(withAdmin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := menu.NewInMemoryRepository()
	service := recommend.NewService(
		repo,
		noopCache{},
		recommend.NewMultiplicativeMoodPolicy(),
		nil,
		recommend.DefaultConfig(),
	)

	var cacheOps *cache.Handler
	if withAdmin {
		cacheOps = cache.NewHandler(cache.NewMenuCache())
	}

	return New(recommend.NewHandler(service), cacheOps)
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, branch int) ([]menu.Item, bool) { return nil, false }
func (noopCache) Set(ctx context.Context, branch int, items []menu.Item) {}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestRootMessage(t *testing.T) {
	r := setupTestRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "Restaurant Recommendation API Running" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupTestRouter(true)

	req := httptest.NewRequest(http.MethodDelete, "/admin/cache/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestAdminRoutesNotMountedWithoutCache(t *testing.T) {
	r := setupTestRouter(false)

	req := httptest.NewRequest(http.MethodDelete, "/admin/cache/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 when admin surface is absent, got %d", w.Code)
	}
}
