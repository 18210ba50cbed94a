package dto_test

import (
	"testing"
	"time"

	"cleanrate/shared/constant"
	"cleanrate/shared/dto"
	"cleanrate/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "admin-1",
		ModifiedBy: "admin-2",
	})

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(parsedCreated))

	parsedModified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, modifiedAt.Equal(parsedModified))

	assert.Equal(t, "admin-1", metadata.CreatedBy)
	assert.Equal(t, "admin-2", metadata.ModifiedBy)
}

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name         string
		params       dto.QueryParams
		wantOrdering string
		wantPaging   string
		wantArgs     map[string]any
	}{
		{
			name:     "zero value",
			wantArgs: map[string]any{},
		},
		{
			name:         "limit only",
			params:       dto.QueryParams{Limit: 100, SortBy: "history.created_at", SortDir: dto.SortDirDesc},
			wantOrdering: "ORDER BY history.created_at DESC",
			wantPaging:   "LIMIT :limit",
			wantArgs:     map[string]any{"limit": 100},
		},
		{
			name:         "page and limit",
			params:       dto.QueryParams{Page: 3, Limit: 10, SortBy: "rooms.room_name", SortDir: dto.SortDirAsc},
			wantOrdering: "ORDER BY rooms.room_name ASC",
			wantPaging:   "LIMIT :limit OFFSET :offset",
			wantArgs:     map[string]any{"limit": 10, "offset": 20},
		},
		{
			name:     "unknown direction is ignored",
			params:   dto.QueryParams{SortBy: "users.name", SortDir: "sideways"},
			wantArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{}

			assert.Equal(t, tt.wantOrdering, tt.params.Ordering())
			assert.Equal(t, tt.wantPaging, tt.params.Pagination(args))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "employee_id", Value: "e1", Operator: dto.FilterOperatorEq, Table: "ratings"},
			wantWhere: "ratings.employee_id = :employee_id",
			wantArgs:  map[string]any{"employee_id": "e1"},
		},
		{
			name:      "exclusive lower bound",
			filter:    dto.Filter{Field: "created_at", ArgName: "created_from", Value: "2024-01-01", Operator: dto.FilterOperatorGreater},
			wantWhere: "created_at > :created_from",
			wantArgs:  map[string]any{"created_from": "2024-01-01"},
		},
		{
			name:      "exclusive upper bound",
			filter:    dto.Filter{Field: "created_at", ArgName: "created_to", Value: "2024-02-01", Operator: dto.FilterOperatorLess},
			wantWhere: "created_at < :created_to",
			wantArgs:  map[string]any{"created_to": "2024-02-01"},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Value: "ann", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%ann%"},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1) ",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "in empty slice",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
			wantWhere: "deleted_at IS NULL",
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
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq, Table: "users"},
			dto.Filter{Field: "unknown", Operator: "nope"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "name", ArgName: "search_name", Value: "jo", Operator: dto.FilterOperatorLike},
					dto.Filter{Field: "email", ArgName: "search_email", Value: "jo", Operator: dto.FilterOperatorLike},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(users.is_active = :is_active AND (LOWER(name) LIKE LOWER(:search_name)  OR LOWER(email) LIKE LOWER(:search_email) ))", where)
	assert.Equal(t, map[string]any{"is_active": true, "search_name": "%jo%", "search_email": "%jo%"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
