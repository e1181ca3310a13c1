package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
)

func TestHandler_Health(t *testing.T) {
	tests := []struct {
		name     string
		redisErr error
		wantCode int
	}{
		{
			name:     "all dependencies answer",
			wantCode: http.StatusOK,
		},
		{
			name:     "redis down",
			redisErr: errors.New("connection refused"),
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Handler{
				checks: []check{
					{name: "postgres", ping: func(context.Context) error { return nil }},
					{name: "redis", ping: func(context.Context) error { return tt.redisErr }},
				},
				otel: mocks.NewOtel(),
			}

			recorder := httptest.NewRecorder()
			handler.Health(recorder, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
