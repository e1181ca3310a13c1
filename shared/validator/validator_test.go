package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests"    validate:"omitempty,min=1"`
	RoomType string `json:"room_type" validate:"omitempty,oneof=Standard Deluxe Suite"`
}

func validBooking() bookingForm {
	return bookingForm{
		Name:    "Ada",
		Email:   "ada@example.com",
		RoomID:  "7f1f7c2e-4d7b-4b1e-9a55-0c8e2f0f6d11",
		CheckIn: "2026-03-01",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(form *bookingForm)
		wantMsg string
	}{
		{name: "valid", mutate: func(_ *bookingForm) {}},
		{name: "missing name", mutate: func(f *bookingForm) { f.Name = "" }, wantMsg: "name is required"},
		{name: "bad email", mutate: func(f *bookingForm) { f.Email = "ada" }, wantMsg: "email must be a valid email address"},
		{name: "room id is not a uuid", mutate: func(f *bookingForm) { f.RoomID = "101" }, wantMsg: "room_id must be a valid id"},
		{name: "wrong date format", mutate: func(f *bookingForm) { f.CheckIn = "01/03/2026" }, wantMsg: "check_in must match the format 2006-01-02"},
		{name: "zero guests is omitted", mutate: func(f *bookingForm) { f.Guests = 0 }},
		{name: "room type outside the catalogue", mutate: func(f *bookingForm) { f.RoomType = "Penthouse" }, wantMsg: "room_type must be one of Standard Deluxe Suite"},
		{name: "name too long", mutate: func(f *bookingForm) { f.Name = strings.Repeat("a", 101) }, wantMsg: "name must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBooking()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantDecode bool
	}{
		{
			name: "valid body",
			body: `{"name":"Ada","email":"ada@example.com","room_id":"7f1f7c2e-4d7b-4b1e-9a55-0c8e2f0f6d11","check_in":"2026-03-01"}`,
		},
		{name: "malformed json", body: `{"name":`, wantCode: http.StatusBadRequest, wantDecode: true},
		{name: "wrong type", body: `{"guests":"two"}`, wantCode: http.StatusBadRequest, wantDecode: true},
		{name: "empty object", body: `{}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := bookingForm{}
			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "Ada", form.Name)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantDecode, failure.IsDecode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("Cleaning", "oneof=Available Occupied Cleaning Maintenance"))
	assert.Error(t, validator.ValidateVar("Closed", "oneof=Available Occupied Cleaning Maintenance"))
	assert.Error(t, validator.ValidateVar(-1, "gte=0"))
}

type roomImage struct {
	Upload  *multipart.FileHeader `json:"image"   validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=1"`
	DataURL string                `json:"picture" validate:"omitempty,mimetypes=image/png image/webp"`
}

func upload(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: "room.png", Header: header, Size: size}
}

func TestFileRules(t *testing.T) {
	tests := []struct {
		name    string
		image   roomImage
		wantMsg string
	}{
		{name: "no image", image: roomImage{}},
		{name: "png upload", image: roomImage{Upload: upload("image/png", 512*1024)}},
		{name: "pdf upload", image: roomImage{Upload: upload("application/pdf", 1024)}, wantMsg: "image must be one of image/png image/jpeg"},
		{name: "upload too large", image: roomImage{Upload: upload("image/jpeg", 2<<20)}, wantMsg: "image must not be larger than 1 MB"},
		{name: "webp data url", image: roomImage{DataURL: "data:image/webp;base64,UklGRg=="}},
		{name: "plain link is not a data url", image: roomImage{DataURL: "https://cdn.example.com/101.webp"}, wantMsg: "picture must be one of image/png image/webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.image)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
