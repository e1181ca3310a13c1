package room_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func setup(t *testing.T) (*roomMocks.MockRoomService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := roomMocks.NewMockRoomService(ctrl)
	handler := room.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/public", handler.Router)
	router.Route("/admin", handler.AdminRouter)

	return svc, router
}

func serve(router http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_GetPublicRooms(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name:  "cheapest first with type and availability filters",
			query: "?type=Deluxe&available_only=true&sort_by=name&sort_dir=DESC",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
						assert.Equal(t, "rooms.price", params.SortBy)
						assert.Equal(t, gDto.SortDirAsc, params.SortDir)
						assert.Len(t, filter.Filters, 2)
						assert.Equal(t, gDto.FilterGroupOperatorAnd, filter.Operator)

						return dto.GetRoomsResponse{}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown room type",
			query:     "?type=Penthouse",
			setupMock: func(_ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			res := serve(router, httptest.NewRequest(http.MethodGet, "/public/rooms"+tt.query, nil))

			assert.Equal(t, tt.wantCode, res.Code)
		})
	}
}

func TestHandler_CreateRoom(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name:   "valid form",
			fields: map[string]string{"name": "Deluxe 101", "type": "Deluxe", "price": "280", "capacity": "2"},
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.CreateRoomRequest) error {
						assert.Equal(t, "Deluxe 101", req.Name)
						assert.InDelta(t, 280.0, req.Price, 0.001)
						assert.Equal(t, 2, *req.Capacity)

						return nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "price is not a number",
			fields:    map[string]string{"name": "Deluxe 101", "price": "cheap"},
			setupMock: func(_ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing name",
			fields:    map[string]string{"type": "Suite"},
			setupMock: func(_ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			body := &bytes.Buffer{}
			writer := multipart.NewWriter(body)

			for key, value := range tt.fields {
				assert.NoError(t, writer.WriteField(key, value))
			}

			assert.NoError(t, writer.Close())

			request := httptest.NewRequest(http.MethodPost, "/admin/rooms/", body)
			request.Header.Set("Content-Type", writer.FormDataContentType())

			res := serve(router, request)

			assert.Equal(t, tt.wantCode, res.Code)
		})
	}
}

func TestHandler_UpdateRoomStatus(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name: "maintenance",
			body: `{"status":"Maintenance"}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().
					UpdateStatus(gomock.Any(), dto.UpdateRoomStatusRequest{Status: "Maintenance"}, "room-1").
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown status",
			body:      `{"status":"Closed"}`,
			setupMock: func(_ *roomMocks.MockRoomService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room not found",
			body: `{"status":"Cleaning"}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "room-1").Return(failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			request := httptest.NewRequest(http.MethodPatch, "/admin/rooms/room-1/status", strings.NewReader(tt.body))
			res := serve(router, request)

			assert.Equal(t, tt.wantCode, res.Code)
		})
	}
}
