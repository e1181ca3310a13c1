package dto

import (
	"net/http"
	"time"

	"hotel/internal/domains/booking/model"
	customerModel "hotel/internal/domains/customer/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   *int   `json:"guests"    validate:"omitempty,min=1"`
}

// Dates parses the stay boundaries.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.ParseDate(c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToCustomer(user string) customerModel.Customer {
	return customerModel.Customer{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Metadata: gModel.NewMetadata(user),
	}
}

func (c *CreateBookingRequest) ToModel(user, customerID string, checkIn, checkOut time.Time, pricePerNight float64, status model.Status) model.Booking {
	guests := model.DefaultGuests
	if c.Guests != nil {
		guests = *c.Guests
	}

	return model.Booking{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		RoomID:        c.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        guests,
		Status:        status,
		PaymentStatus: model.PaymentUnpaid,
		TotalPrice:    model.TotalPrice(checkIn, checkOut, pricePerNight),
		Metadata:      gModel.NewMetadata(user),
	}
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof='Pending' 'Confirmed' 'Checked In' 'Checked Out' 'Cancelled'"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `db:"payment_status" json:"payment_status" validate:"required,oneof=Unpaid Paid Refunded"`
}

// ListBookingsQuery filters the admin booking list.
type ListBookingsQuery struct {
	Status        string
	PaymentStatus string
}

func (q *ListBookingsQuery) FromRequest(r *http.Request) {
	q.Status = r.URL.Query().Get("status")
	q.PaymentStatus = r.URL.Query().Get("payment_status")
}

func (q *ListBookingsQuery) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if q.Status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.FieldStatus, Value: q.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	if q.PaymentStatus != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.FieldPaymentStatus, Value: q.PaymentStatus, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	return filter
}

type BookingCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingRoom struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

type BookingResponse struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	Customer      BookingCustomer `json:"customer"`
	Room          BookingRoom     `json:"room"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Nights        int             `json:"nights"`
	Guests        int             `json:"guests"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	TotalPrice    float64         `json:"total_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(detail model.BookingDetail) {
	r.ID = detail.ID
	r.Reference = detail.Reference()
	r.Customer = BookingCustomer{
		ID:    detail.CustomerID,
		Name:  detail.CustomerName,
		Email: detail.CustomerEmail,
		Phone: detail.CustomerPhone,
	}
	r.Room = BookingRoom{
		ID:    detail.RoomID,
		Name:  detail.RoomName,
		Type:  string(detail.RoomType),
		Price: detail.RoomPrice,
	}
	r.CheckIn = detail.CheckIn.Format(model.DateLayout)
	r.CheckOut = detail.CheckOut.Format(model.DateLayout)
	r.Nights = detail.Nights()
	r.Guests = detail.Guests
	r.Status = string(detail.Status)
	r.PaymentStatus = string(detail.PaymentStatus)
	r.TotalPrice = detail.TotalPrice
	r.Metadata.FromModel(detail.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingConfirmation is what a guest sees after submitting the public form.
type BookingConfirmation struct {
	ID           string  `json:"id"`
	Reference    string  `json:"reference"`
	CustomerName string  `json:"customer_name"`
	RoomName     string  `json:"room_name"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Guests       int     `json:"guests"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
}

func (c *BookingConfirmation) FromModel(detail model.BookingDetail) {
	c.ID = detail.ID
	c.Reference = detail.Reference()
	c.CustomerName = detail.CustomerName
	c.RoomName = detail.RoomName
	c.CheckIn = detail.CheckIn.Format(model.DateLayout)
	c.CheckOut = detail.CheckOut.Format(model.DateLayout)
	c.Guests = detail.Guests
	c.Nights = detail.Nights()
	c.TotalPrice = detail.TotalPrice
	c.Status = string(detail.Status)
}

// StatusCountsResponse tallies bookings per status. Every status is present.
type StatusCountsResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

func (r *StatusCountsResponse) FromModels(rows []model.StatusCount) {
	r.Counts = make(map[string]int, len(model.AllStatuses()))
	for _, status := range model.AllStatuses() {
		r.Counts[string(status)] = 0
	}

	r.Total = 0
	for _, row := range rows {
		r.Counts[string(row.Status)] += row.Total
		r.Total += row.Total
	}
}
