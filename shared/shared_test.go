package shared_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cleanrate/shared"
	"cleanrate/shared/cache/mocks"
	"cleanrate/shared/constant"
	"cleanrate/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{"true", boolPtr(true)},
		{"0", boolPtr(false)},
		{"", nil},
		{"maybe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt(" 42 ")
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = shared.ConvertStringToInt("ten")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"room_name"`
		Number   *int   `db:"floor_number"`
		IsActive *bool  `db:"is_active"`
		Skipped  string `db:"-"`
		NoTag    string
	}

	zero := 0
	inactive := false

	result := shared.TransformFields(update{
		Name:     "301",
		Number:   &zero,
		IsActive: &inactive,
		Skipped:  "x",
		NoTag:    "y",
	}, "admin-1")

	assert.Equal(t, "301", result["room_name"])
	assert.Equal(t, &zero, result["floor_number"])
	assert.Equal(t, &inactive, result["is_active"])
	assert.NotContains(t, result, "-")
	assert.Equal(t, "admin-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 5)

	empty := shared.TransformFields(update{}, "admin-1")
	assert.Len(t, empty, 2)
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}, got)

	where, args := got.GetWhereClause()
	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "employee:get", shared.BuildCacheKey("employee:get"))
	assert.Equal(t, "employee:get:42", shared.BuildCacheKey("employee:get", "42"))
	assert.Equal(t, "limiter:1.2.3.4:curl", shared.BuildCacheKey("limiter", "1.2.3.4", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	a := shared.BuildCacheKeyWithQuery("dashboard", "week", 10)
	b := shared.BuildCacheKeyWithQuery("dashboard", "week", 10)
	c := shared.BuildCacheKeyWithQuery("dashboard", "month", 10)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "dashboard:"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "facility:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "facility:")

	mockCache.EXPECT().Clear(gomock.Any(), "dashboard*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "dashboard")
}

func TestUserFromContext(t *testing.T) {
	assert.Equal(t, constant.ContextSystem, shared.UserFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	assert.Equal(t, "admin-1", shared.UserFromContext(ctx))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for first hop", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "127.0.0.1:1234", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": " 10.0.0.9 "}, "127.0.0.1:1234", "10.0.0.9"},
		{"remote addr", nil, "127.0.0.1:1234", "127.0.0.1:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, shared.ClientIP(req))
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
