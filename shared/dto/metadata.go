package dto

import (
	"hotel/shared/constant"
	"hotel/shared/model"
	"hotel/shared/timezone"
)

// Metadata renders the audit block in the application timezone. Rows never modified
// after creation carry no modification fields.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(audit model.Metadata) {
	m.CreatedAt = timezone.Format(audit.CreatedAt, constant.DateFormat)
	m.CreatedBy = audit.CreatedBy

	if audit.ModifiedAt.IsZero() || (audit.ModifiedAt.Equal(audit.CreatedAt) && audit.ModifiedBy == audit.CreatedBy) {
		return
	}

	m.ModifiedAt = timezone.Format(audit.ModifiedAt, constant.DateFormat)
	m.ModifiedBy = audit.ModifiedBy
}
