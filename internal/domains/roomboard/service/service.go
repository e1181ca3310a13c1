package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/domains/roomboard/model/dto"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type RoomBoard interface {
	Snapshot(ctx context.Context, status string) (dto.SnapshotResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(roomRepo roomRepo.Room, otel otel.Otel) RoomBoard {
	return &serviceImpl{
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// Snapshot always reads the rooms table directly so pushed boards never lag behind a write.
func (s *serviceImpl) Snapshot(ctx context.Context, status string) (res dto.SnapshotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomBoard.Snapshot")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filterStatus := roomModel.Status(status)
	if filterStatus != "" && !filterStatus.IsValid() {
		return res, failure.BadRequestFromString("invalid room status") //nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  roomModel.TableName + "." + roomModel.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	rooms, err := s.roomRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for board")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, filterStatus)

	return res, nil
}
