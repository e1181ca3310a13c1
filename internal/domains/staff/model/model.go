package model

import (
	"hotel/shared/model"
)

const (
	TableName      = "staff"
	EntityName     = "staff"
	CacheKeyPrefix = "staff:"

	FieldID    = "id"
	FieldName  = "name"
	FieldRole  = "role"
	FieldPhone = "phone"
	FieldEmail = "email"
)

type Staff struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Role  string `db:"role"`
	Phone string `db:"phone"`
	Email string `db:"email"`
	model.Metadata
}
