package model

import (
	"time"

	"hotel/shared/timezone"
)

const (
	EntityName = "dashboard"

	RecentBookingsLimit = 5
	DefaultMonths       = 12
	MaxMonths           = 24
	MonthLayout         = "2006-01"
)

type Totals struct {
	TotalRooms     int     `db:"total_rooms"`
	AvailableRooms int     `db:"available_rooms"`
	OccupiedRooms  int     `db:"occupied_rooms"`
	TotalCustomers int     `db:"total_customers"`
	TotalBookings  int     `db:"total_bookings"`
	Revenue        float64 `db:"revenue"`
}

type MonthlyPoint struct {
	Month    string  `db:"month"`
	Revenue  float64 `db:"revenue"`
	Bookings int     `db:"bookings"`
}

type RoomStatusCount struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}

// ClampMonths bounds a requested analytics window to [1, MaxMonths], defaulting to DefaultMonths.
func ClampMonths(months int) int {
	switch {
	case months <= 0:
		return DefaultMonths
	case months > MaxMonths:
		return MaxMonths
	default:
		return months
	}
}

// MonthRange lists the months keys ending at now, oldest first, and returns the first day of the oldest one.
func MonthRange(now time.Time, months int) ([]string, time.Time) {
	start := timezone.StartOfMonth(now).AddDate(0, -(months - 1), 0)

	keys := make([]string, months)
	for i := range keys {
		keys[i] = start.AddDate(0, i, 0).Format(MonthLayout)
	}

	return keys, start
}
