package dto_test

import (
	"testing"

	"hotel/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality on a joined table",
			filter:    dto.Filter{Field: "status", Value: "Pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "Pending"},
		},
		{
			name:      "case insensitive search with a custom argument",
			filter:    dto.Filter{ArgName: "q", Field: "email", Value: " ada ", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(email) LIKE LOWER(:q)",
			wantArgs:  map[string]any{"q": "%ada%"},
		},
		{
			name:      "blank search term does not restrict",
			filter:    dto.Filter{Field: "name", Value: "  ", Operator: dto.FilterOperatorLike},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "room statuses",
			filter:    dto.Filter{Field: "status", Value: []string{"Cleaning", "Maintenance"}, Operator: dto.FilterOperatorIn, Table: "rooms"},
			wantWhere: "rooms.status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "Cleaning", "status_1": "Maintenance"},
		},
		{
			name:      "empty in list does not restrict",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "check in on or after",
			filter:    dto.Filter{Field: "check_in", Value: "2026-03-01", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "check_in >= :check_in",
			wantArgs:  map[string]any{"check_in": "2026-03-01"},
		},
		{
			name:      "missing image",
			filter:    dto.Filter{Field: "image", Operator: dto.FilterIsNull, Table: "rooms"},
			wantWhere: "rooms.image IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "type", Value: "Deluxe", Operator: dto.FilterOperatorEq, Table: "rooms"},
			dto.Filter{Field: "name", Value: "", Operator: dto.FilterOperatorLike, Table: "rooms"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "s1", Field: "status", Value: "Available", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "s2", Field: "status", Value: "Cleaning", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.type = :type AND (status = :s1 OR status = :s2))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{Filters: []any{dto.Filter{Field: "name", Operator: dto.FilterOperatorLike}}}
	where, _ = empty.GetWhereClause()

	assert.Empty(t, where)
}
