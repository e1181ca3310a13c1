package dto

import (
	"mime/multipart"
	"net/http"
	"sort"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Type        string                `json:"type"        validate:"omitempty,oneof=Standard Deluxe Suite"`
	Price       float64               `json:"price"       validate:"omitempty,min=0"`
	Capacity    *int                  `json:"capacity"    validate:"omitempty,min=0"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	Status      string                `json:"status"      validate:"omitempty,oneof=Available Occupied Cleaning Maintenance"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	roomType := model.TypeStandard
	if c.Type != "" {
		roomType = model.Type(c.Type)
	}

	capacity := model.DefaultCapacity
	if c.Capacity != nil {
		capacity = *c.Capacity
	}

	status := model.StatusAvailable
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Type:        roomType,
		Price:       c.Price,
		Capacity:    capacity,
		Description: c.Description,
		Image:       imageURL,
		Status:      status,
		Metadata:    gModel.NewMetadata(user),
	}
}

type UpdateRoomRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Type        string                `db:"type"        json:"type"        validate:"omitempty,oneof=Standard Deluxe Suite"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=1000"`
	Status      string                `db:"status"      json:"status"      validate:"omitempty,oneof=Available Occupied Cleaning Maintenance"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

type UpdateRoomStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=Available Occupied Cleaning Maintenance"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Status      string  `json:"status"`
	Floor       string  `json:"floor"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = string(model.Type)
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Image = model.Image
	r.Status = string(model.Status)
	r.Floor = model.Floor()
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailableRoomResponse is the projection offered by the booking form.
type AvailableRoomResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type GetAvailableRoomsResponse struct {
	Rooms []AvailableRoomResponse `json:"rooms"`
}

func (r *GetAvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i] = AvailableRoomResponse{ID: mod.ID, Name: mod.Name, Price: mod.Price}
	}
}

// MaintenanceResponse splits rooms into the housekeeping queues.
type MaintenanceResponse struct {
	Maintenance []RoomResponse `json:"maintenance"`
	Cleaning    []RoomResponse `json:"cleaning"`
	Available   []RoomResponse `json:"available"`
}

func (r *MaintenanceResponse) FromModels(models []model.Room) {
	r.Maintenance = []RoomResponse{}
	r.Cleaning = []RoomResponse{}
	r.Available = []RoomResponse{}

	sorted := make([]model.Room, len(models))
	copy(sorted, models)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, mod := range sorted {
		var res RoomResponse
		res.FromModel(mod)

		switch mod.Status {
		case model.StatusMaintenance:
			r.Maintenance = append(r.Maintenance, res)
		case model.StatusCleaning:
			r.Cleaning = append(r.Cleaning, res)
		case model.StatusAvailable:
			r.Available = append(r.Available, res)
		}
	}
}

// ListRoomsQuery carries the public listing filters. Both are combined with AND.
type ListRoomsQuery struct {
	Type          string `json:"type"           validate:"omitempty,oneof=Standard Deluxe Suite"`
	AvailableOnly bool   `json:"available_only"`
}

func (q *ListRoomsQuery) FromRequest(r *http.Request) {
	q.Type = r.URL.Query().Get("type")

	if availableOnly := shared.ConvertStringToBool(r.URL.Query().Get("available_only")); availableOnly != nil {
		q.AvailableOnly = *availableOnly
	}
}

func (q *ListRoomsQuery) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if q.Type != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldType,
			Value:    q.Type,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if q.AvailableOnly {
		filter.Filters = append(filter.Filters, model.FilterByStatus(model.StatusAvailable))
	}

	return filter
}
