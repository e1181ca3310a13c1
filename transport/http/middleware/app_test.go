package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	"hotel/infras/otel"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAppMiddleware_Tracing(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hotel-api"

	app := middleware.NewAppMiddleware(otel.New(cfg), cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)))

	handler := app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("continues the caller's trace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", rec.Header().Get("X-Trace-Id"))
	})

	t.Run("starts a new trace", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

		assert.Len(t, rec.Header().Get("X-Trace-Id"), 32)
	})
}
