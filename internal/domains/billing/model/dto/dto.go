package dto

import (
	"hotel/internal/domains/billing/model"
	bookingModel "hotel/internal/domains/booking/model"
)

type InvoiceCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type InvoiceResponse struct {
	Number        string            `json:"number"`
	BookingID     string            `json:"booking_id"`
	Reference     string            `json:"reference"`
	Customer      InvoiceCustomer   `json:"customer"`
	RoomName      string            `json:"room_name"`
	RoomType      string            `json:"room_type"`
	CheckIn       string            `json:"check_in"`
	CheckOut      string            `json:"check_out"`
	Nights        int               `json:"nights"`
	LineItems     []InvoiceLineItem `json:"line_items"`
	Subtotal      float64           `json:"subtotal"`
	TaxRate       float64           `json:"tax_rate"`
	Tax           float64           `json:"tax"`
	GrandTotal    float64           `json:"grand_total"`
	StoredTotal   float64           `json:"stored_total"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
}

func (r *InvoiceResponse) FromModel(invoice model.Invoice) {
	booking := invoice.Booking

	r.Number = invoice.Number
	r.BookingID = booking.ID
	r.Reference = booking.Reference()
	r.Customer = InvoiceCustomer{
		Name:  booking.CustomerName,
		Email: booking.CustomerEmail,
		Phone: booking.CustomerPhone,
	}
	r.RoomName = booking.RoomName
	r.RoomType = string(booking.RoomType)
	r.CheckIn = booking.CheckIn.Format(bookingModel.DateLayout)
	r.CheckOut = booking.CheckOut.Format(bookingModel.DateLayout)
	r.Nights = invoice.Nights
	r.LineItems = []InvoiceLineItem{{
		Description: booking.RoomName,
		Quantity:    invoice.Nights,
		UnitPrice:   invoice.RatePerNight,
		Amount:      invoice.Subtotal,
	}}
	r.Subtotal = invoice.Subtotal
	r.TaxRate = invoice.TaxRate
	r.Tax = invoice.Tax
	r.GrandTotal = invoice.GrandTotal
	r.StoredTotal = booking.TotalPrice
	r.Status = string(booking.Status)
	r.PaymentStatus = string(booking.PaymentStatus)
}

// BillableBooking is one entry of the invoice picker.
type BillableBooking struct {
	ID            string `json:"id"`
	Reference     string `json:"reference"`
	CustomerName  string `json:"customer_name"`
	RoomName      string `json:"room_name"`
	PaymentStatus string `json:"payment_status"`
}

type GetBillableBookingsResponse struct {
	Bookings []BillableBooking `json:"bookings"`
}

func (r *GetBillableBookingsResponse) FromModels(models []bookingModel.BookingDetail) {
	r.Bookings = make([]BillableBooking, len(models))
	for i, mod := range models {
		r.Bookings[i] = BillableBooking{
			ID:            mod.ID,
			Reference:     mod.Reference(),
			CustomerName:  mod.CustomerName,
			RoomName:      mod.RoomName,
			PaymentStatus: string(mod.PaymentStatus),
		}
	}
}
