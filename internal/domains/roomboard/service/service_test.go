package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/domains/roomboard/service"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func TestRoomBoardService_Snapshot(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "1", Name: "Room 101", Status: roomModel.StatusOccupied},
		{ID: "2", Name: "Room 102", Status: roomModel.StatusAvailable},
		{ID: "3", Name: "Room 204", Status: roomModel.StatusCleaning},
	}

	tests := []struct {
		name       string
		status     string
		setupMock  func(repo *roomMocks.MockRoom)
		wantCode   int
		wantFloors []string
	}{
		{
			name: "all rooms grouped by floor",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]roomModel.Room, error) {
						assert.Equal(t, "rooms.name", params.SortBy)
						assert.Equal(t, gDto.SortDirAsc, params.SortDir)

						return rooms, nil
					})
			},
			wantFloors: []string{"1", "2"},
		},
		{
			name:   "status filter keeps counts over all rooms",
			status: "Cleaning",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
			},
			wantFloors: []string{"2"},
		},
		{
			name:      "invalid status",
			status:    "Dirty",
			setupMock: func(_ *roomMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(repo)

			res, err := service.New(repo, mocks.NewOtel()).Snapshot(context.Background(), tt.status)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 3, res.Total)
			assert.Equal(t, 1, res.Counts["Occupied"])
			assert.Equal(t, 0, res.Counts["Maintenance"])

			floors := make([]string, len(res.Floors))
			for i, floor := range res.Floors {
				floors[i] = floor.Floor
			}

			assert.Equal(t, tt.wantFloors, floors)
		})
	}
}
