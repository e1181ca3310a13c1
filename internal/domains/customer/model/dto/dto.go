package dto

import (
	"net/http"

	"hotel/internal/domains/customer/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}

// SearchQuery matches the term against name or email.
type SearchQuery struct {
	Search string
}

func (q *SearchQuery) FromRequest(r *http.Request) {
	q.Search = r.URL.Query().Get("search")
}

func (q *SearchQuery) ToFilter() gDto.FilterGroup {
	if q.Search == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "search_name", Field: model.FieldName, Value: q.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Value: q.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		},
	}
}
