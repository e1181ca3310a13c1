package dto

import (
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/dashboard/model"
	roomModel "hotel/internal/domains/room/model"
)

type StatsResponse struct {
	TotalRooms     int                          `json:"total_rooms"`
	AvailableRooms int                          `json:"available_rooms"`
	OccupiedRooms  int                          `json:"occupied_rooms"`
	TotalCustomers int                          `json:"total_customers"`
	TotalBookings  int                          `json:"total_bookings"`
	Revenue        float64                      `json:"revenue"`
	RecentBookings []bookingDto.BookingResponse `json:"recent_bookings"`
}

func (r *StatsResponse) FromModels(totals model.Totals, recent []bookingModel.BookingDetail) {
	r.TotalRooms = totals.TotalRooms
	r.AvailableRooms = totals.AvailableRooms
	r.OccupiedRooms = totals.OccupiedRooms
	r.TotalCustomers = totals.TotalCustomers
	r.TotalBookings = totals.TotalBookings
	r.Revenue = totals.Revenue

	r.RecentBookings = make([]bookingDto.BookingResponse, len(recent))
	for i, detail := range recent {
		r.RecentBookings[i].FromModel(detail)
	}
}

type MonthlyResponse struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type AnalyticsResponse struct {
	Months           int                             `json:"months"`
	Monthly          []MonthlyResponse               `json:"monthly"`
	Occupancy        map[string]int                  `json:"occupancy"`
	BookingsByStatus bookingDto.StatusCountsResponse `json:"bookings_by_status"`
}

// FromModels fills every month in keys and every room status, using zero where no rows exist.
func (r *AnalyticsResponse) FromModels(keys []string, points []model.MonthlyPoint, occupancy []model.RoomStatusCount,
	statuses []bookingModel.StatusCount,
) {
	byMonth := make(map[string]model.MonthlyPoint, len(points))
	for _, point := range points {
		byMonth[point.Month] = point
	}

	r.Months = len(keys)
	r.Monthly = make([]MonthlyResponse, len(keys))

	for i, key := range keys {
		point := byMonth[key]
		r.Monthly[i] = MonthlyResponse{Month: key, Revenue: point.Revenue, Bookings: point.Bookings}
	}

	r.Occupancy = make(map[string]int, len(roomModel.AllStatuses()))
	for _, status := range roomModel.AllStatuses() {
		r.Occupancy[string(status)] = 0
	}

	for _, row := range occupancy {
		r.Occupancy[row.Status] += row.Total
	}

	r.BookingsByStatus.FromModels(statuses)
}
