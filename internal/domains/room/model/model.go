package model

import (
	"regexp"
	"slices"

	"hotel/shared/dto"
	"hotel/shared/model"
)

const (
	TableName      = "rooms"
	EntityName     = "room"
	CacheKeyPrefix = "room:"

	FieldID          = "id"
	FieldName        = "name"
	FieldType        = "type"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldStatus      = "status"
)

const (
	DefaultCapacity = 2
	DefaultFloor    = "0"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusOccupied    Status = "Occupied"
	StatusCleaning    Status = "Cleaning"
	StatusMaintenance Status = "Maintenance"
)

func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance}
}

func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

type Type string

const (
	TypeStandard Type = "Standard"
	TypeDeluxe   Type = "Deluxe"
	TypeSuite    Type = "Suite"
)

func AllTypes() []Type {
	return []Type{TypeStandard, TypeDeluxe, TypeSuite}
}

func (t Type) IsValid() bool {
	return slices.Contains(AllTypes(), t)
}

var floorPattern = regexp.MustCompile(`Room (\d)`)

type Room struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Type        Type    `db:"type"`
	Price       float64 `db:"price"`
	Capacity    int     `db:"capacity"`
	Description string  `db:"description"`
	Image       string  `db:"image"`
	Status      Status  `db:"status"`
	model.Metadata
}

// Floor is the first digit following "Room " in the name, or DefaultFloor.
func (r Room) Floor() string {
	match := floorPattern.FindStringSubmatch(r.Name)
	if len(match) < 2 {
		return DefaultFloor
	}

	return match[1]
}

func FilterByStatus(statuses ...Status) dto.Filter {
	if len(statuses) == 1 {
		return dto.Filter{Field: FieldStatus, Value: string(statuses[0]), Operator: dto.FilterOperatorEq, Table: TableName}
	}

	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = string(status)
	}

	return dto.Filter{Field: FieldStatus, Value: values, Operator: dto.FilterOperatorIn, Table: TableName}
}
