package dto

import (
	"time"

	"hotel/internal/domains/contact/model"
	"hotel/shared"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (c *CreateMessageRequest) ToModel() model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: timezone.Now(),
	}
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Subject = model.Subject
	r.Message = model.Message
	r.CreatedAt = model.CreatedAt
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
