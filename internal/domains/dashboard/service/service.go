package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/model/dto"
	"hotel/internal/domains/dashboard/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Analytics(ctx context.Context, months int) (dto.AnalyticsResponse, error)
}

type serviceImpl struct {
	repo        repository.Dashboard
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Dashboard, bookingRepo bookingRepo.Booking, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Stats")
	defer scope.End()
	defer scope.TraceIfError(&err)

	totals, err := s.repo.Totals(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard totals")

		return res, fmt.Errorf("failed to get dashboard totals: %w", err)
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   model.RecentBookingsLimit,
		SortBy:  bookingModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	recent, err := s.bookingRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.FromModels(totals, recent)

	return res, nil
}

func (s *serviceImpl) Analytics(ctx context.Context, months int) (res dto.AnalyticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Analytics")
	defer scope.End()
	defer scope.TraceIfError(&err)

	keys, since := model.MonthRange(timezone.Now(), model.ClampMonths(months))

	points, err := s.repo.Monthly(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly analytics")

		return res, fmt.Errorf("failed to get monthly analytics: %w", err)
	}

	occupancy, err := s.repo.Occupancy(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room occupancy")

		return res, fmt.Errorf("failed to get room occupancy: %w", err)
	}

	statuses, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings by status")

		return res, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	res.FromModels(keys, points, occupancy, statuses)

	return res, nil
}
