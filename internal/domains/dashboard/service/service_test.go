package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	dashboardMocks "hotel/internal/domains/dashboard/mocks"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/service"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

type fixture struct {
	repo     *dashboardMocks.MockDashboard
	bookings *bookingMocks.MockBooking
	svc      service.Dashboard
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := dashboardMocks.NewMockDashboard(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)

	return fixture{
		repo:     repo,
		bookings: bookings,
		svc:      service.New(repo, bookings, mocks.NewOtel()),
	}
}

func TestDashboardService_Stats(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "totals with recent bookings",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Totals(gomock.Any()).Return(model.Totals{
					TotalRooms: 10, AvailableRooms: 6, OccupiedRooms: 3, TotalCustomers: 12, TotalBookings: 15, Revenue: 4200,
				}, nil)
				f.bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]bookingModel.BookingDetail, error) {
						assert.Equal(t, model.RecentBookingsLimit, params.Limit)
						assert.Equal(t, "bookings.created_at", params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)

						return []bookingModel.BookingDetail{{Booking: bookingModel.Booking{ID: "b1"}}}, nil
					})
			},
		},
		{
			name: "totals error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Totals(gomock.Any()).Return(model.Totals{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Stats(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 10, res.TotalRooms)
			assert.Equal(t, 4200.0, res.Revenue)
			assert.Len(t, res.RecentBookings, 1)
		})
	}
}

func TestDashboardService_Analytics(t *testing.T) {
	f := newFixture(t)
	thisMonth := timezone.Now().Format(model.MonthLayout)

	f.repo.EXPECT().
		Monthly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) ([]model.MonthlyPoint, error) {
			assert.Equal(t, 1, since.Day())
			assert.Equal(t, timezone.GetLocation(), since.Location())

			return []model.MonthlyPoint{{Month: thisMonth, Revenue: 840, Bookings: 2}}, nil
		})
	f.repo.EXPECT().Occupancy(gomock.Any()).Return([]model.RoomStatusCount{{Status: "Occupied", Total: 4}}, nil)
	f.bookings.EXPECT().CountByStatus(gomock.Any()).Return([]bookingModel.StatusCount{
		{Status: bookingModel.StatusConfirmed, Total: 3},
	}, nil)

	res, err := f.svc.Analytics(context.Background(), 100)

	assert.NoError(t, err)
	assert.Equal(t, model.MaxMonths, res.Months)
	assert.Len(t, res.Monthly, model.MaxMonths)
	assert.Equal(t, thisMonth, res.Monthly[model.MaxMonths-1].Month)
	assert.Equal(t, 840.0, res.Monthly[model.MaxMonths-1].Revenue)
	assert.Equal(t, 0, res.Monthly[0].Bookings)
	assert.Equal(t, 4, res.Occupancy["Occupied"])
	assert.Equal(t, 0, res.Occupancy["Available"])
	assert.Equal(t, 3, res.BookingsByStatus.Counts["Confirmed"])
	assert.Equal(t, 0, res.BookingsByStatus.Counts["Pending"])
}
