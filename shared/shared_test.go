package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"courtside/shared"
	"courtside/shared/constant"
	"courtside/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 50, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Status string `db:"status"`
		Reason string `db:"cancellation_reason"`
		Note   string
	}

	fields := shared.TransformFields(update{Status: "confirmed"}, "staff-1")

	assert.Equal(t, "confirmed", fields["status"])
	assert.NotContains(t, fields, "cancellation_reason", "zero fields are skipped")
	assert.Equal(t, "staff-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "bookings")

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "bookings.id = :id")
	assert.Equal(t, "abc", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:42", shared.BuildCacheKey("booking", "get", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filterA := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
		},
	}
	filterB := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed"},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, filterB)

	assert.NotEqual(t, keyA, keyB, "distinct filters must cache independently")
	assert.Equal(t, keyA, shared.BuildCacheKeyWithQuery("booking:gets", params, filterA))
}
