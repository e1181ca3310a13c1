package model

import "time"

const (
	TableName      = "contact_messages"
	EntityName     = "contact message"
	CacheKeyPrefix = "contact:"

	FieldID        = "id"
	FieldCreatedAt = "created_at"
)

type Message struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
