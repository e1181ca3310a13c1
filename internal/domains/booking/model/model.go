package model

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	customerModel "hotel/internal/domains/customer/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/model"
	"hotel/shared/timezone"
)

const (
	TableName      = "bookings"
	EntityName     = "booking"
	CacheKeyPrefix = "booking:"

	FieldID            = "id"
	FieldCustomerID    = "customer_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuests        = "guests"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldTotalPrice    = "total_price"
)

const (
	DateLayout      = timezone.DateLayout
	DefaultGuests   = 1
	ReferenceLength = 8
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "Checked In"
	StatusCheckedOut Status = "Checked Out"
	StatusCancelled  Status = "Cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}
}

func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// RoomStatus is the room status a booking entering s forces, if any.
func (s Status) RoomStatus() (roomModel.Status, bool) {
	switch s {
	case StatusCheckedIn:
		return roomModel.StatusOccupied, true
	case StatusCheckedOut:
		return roomModel.StatusCleaning, true
	case StatusCancelled:
		return roomModel.StatusAvailable, true
	default:
		return "", false
	}
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "Unpaid"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentUnpaid, PaymentPaid, PaymentRefunded}
}

func (p PaymentStatus) IsValid() bool {
	return slices.Contains(AllPaymentStatuses(), p)
}

type Booking struct {
	ID            string        `db:"id"`
	CustomerID    string        `db:"customer_id"`
	RoomID        string        `db:"room_id"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      time.Time     `db:"check_out"`
	Guests        int           `db:"guests"`
	Status        Status        `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	TotalPrice    float64       `db:"total_price"`
	model.Metadata
}

// Reference is the short code shown to guests.
func (b Booking) Reference() string {
	return ShortID(b.ID)
}

func (b Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// BookingDetail is a booking joined with its customer and room.
type BookingDetail struct {
	Booking
	CustomerName  string         `column:"name"   db:"customer_name"  table:"customers"`
	CustomerEmail string         `column:"email"  db:"customer_email" table:"customers"`
	CustomerPhone string         `column:"phone"  db:"customer_phone" table:"customers"`
	RoomName      string         `column:"name"   db:"room_name"      table:"rooms"`
	RoomType      roomModel.Type `column:"type"   db:"room_type"      table:"rooms"`
	RoomPrice     float64        `column:"price"  db:"room_price"     table:"rooms"`
	RoomStatus    string         `column:"status" db:"room_status"    table:"rooms"`
}

func (BookingDetail) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.id = %s.%s JOIN %s ON %s.id = %s.%s",
		customerModel.TableName, customerModel.TableName, TableName, FieldCustomerID,
		roomModel.TableName, roomModel.TableName, TableName, FieldRoomID)
}

// StatusCount is one row of the per-status booking tally.
type StatusCount struct {
	Status Status `db:"status"`
	Total  int    `db:"total"`
}

// Nights is the number of started 24h periods between check-in and check-out, at least one.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}

	return nights
}

func TotalPrice(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}

// ShortID upper-cases the first ReferenceLength characters of id.
func ShortID(id string) string {
	if len(id) > ReferenceLength {
		id = id[:ReferenceLength]
	}

	return strings.ToUpper(id)
}
