package model

import (
	"math"

	bookingModel "hotel/internal/domains/booking/model"
)

const NumberPrefix = "INV-"

// Invoice is derived from a booking on every request, never stored.
type Invoice struct {
	Number       string
	Booking      bookingModel.BookingDetail
	Nights       int
	RatePerNight float64
	Subtotal     float64
	TaxRate      float64
	Tax          float64
	GrandTotal   float64
}

// NewInvoice prices the stay at the room's current rate. Tax is rounded to whole currency units.
func NewInvoice(booking bookingModel.BookingDetail, taxRate float64) Invoice {
	nights := booking.Nights()
	subtotal := float64(nights) * booking.RoomPrice
	tax := math.Round(subtotal * taxRate)

	return Invoice{
		Number:       NumberPrefix + bookingModel.ShortID(booking.ID),
		Booking:      booking,
		Nights:       nights,
		RatePerNight: booking.RoomPrice,
		Subtotal:     subtotal,
		TaxRate:      taxRate,
		Tax:          tax,
		GrandTotal:   subtotal + tax,
	}
}
