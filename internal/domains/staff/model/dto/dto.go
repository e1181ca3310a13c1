package dto

import (
	"hotel/internal/domains/staff/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Role  string `json:"role"  validate:"required,max=50"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	return model.Staff{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Role:     c.Role,
		Phone:    c.Phone,
		Email:    c.Email,
		Metadata: gModel.NewMetadata(user),
	}
}

type UpdateStaffRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Role  string `db:"role"  json:"role"  validate:"omitempty,max=50"`
	Phone string `db:"phone" json:"phone" validate:"omitempty,max=20"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
}

type StaffResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Role = model.Role
	r.Phone = model.Phone
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
