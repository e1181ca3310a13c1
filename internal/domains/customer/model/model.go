package model

import (
	"hotel/shared/model"
)

const (
	TableName      = "customers"
	EntityName     = "customer"
	CacheKeyPrefix = "customer:"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

type Customer struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
	model.Metadata
}
