package dto_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"cleanrate/internal/domains/history/model"
	"cleanrate/internal/domains/history/model/dto"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_ToModel(t *testing.T) {
	entry := dto.Entry{
		UserID:    "550e8400-e29b-41d4-a716-446655440000",
		Action:    model.ActionUpdateRoom,
		TableName: "rooms",
		RecordID:  "room-1",
		OldValues: map[string]string{"room_name": "101"},
		NewValues: json.RawMessage(`{"room_name":"102"}`),
	}

	m, err := entry.ToModel()
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
	require.NotNil(t, m.UserID)
	assert.Equal(t, entry.UserID, *m.UserID)
	assert.JSONEq(t, `{"room_name":"101"}`, string(m.OldValues.JSONText))
	assert.JSONEq(t, `{"room_name":"102"}`, string(m.NewValues.JSONText))
}

func TestEntry_ToModel_SystemActor(t *testing.T) {
	entry := dto.Entry{ID: "fixed", UserID: "system", Action: model.ActionLogin}

	m, err := entry.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "fixed", m.ID)
	assert.Nil(t, m.UserID)
	assert.False(t, m.OldValues.Valid)
	assert.False(t, m.NewValues.Valid)
}

func TestEntry_ToModel_Unencodable(t *testing.T) {
	entry := dto.Entry{Action: model.ActionLogin, NewValues: make(chan int)}

	_, err := entry.ToModel()
	assert.Error(t, err)
}

func TestCreateHistoryRequest_ToEntry(t *testing.T) {
	req := dto.CreateHistoryRequest{Action: "NOTE", NewValues: json.RawMessage(`{"a":1}`)}

	entry := req.ToEntry()
	assert.Equal(t, "NOTE", entry.Action)
	assert.Nil(t, entry.OldValues)
	assert.Equal(t, json.RawMessage(`{"a":1}`), entry.NewValues)
}

func TestHistoryResponse_FromModel(t *testing.T) {
	userID := "u1"
	name := "Admin"
	email := "admin@example.com"

	var res dto.HistoryResponse
	res.FromModel(model.History{
		ID:        "h1",
		UserID:    &userID,
		UserName:  &name,
		UserEmail: &email,
		Action:    model.ActionLogin,
		NewValues: types.NullJSONText{JSONText: types.JSONText(`{"ok":true}`), Valid: true},
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	})

	require.NotNil(t, res.User)
	assert.Equal(t, "Admin", res.User.Name)
	assert.Equal(t, "admin@example.com", res.User.Email)
	assert.Empty(t, res.User.ProfilePicture)
	assert.Nil(t, res.OldValues)
	assert.JSONEq(t, `{"ok":true}`, string(res.NewValues))
	assert.NotEmpty(t, res.CreatedAt)
}

func TestListHistoryRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "day bounds",
			query:    "?from=2024-01-15&to=2024-01-16",
			wantFrom: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "timestamp bounds",
			query:    "?from=2024-01-15T08:00:00Z&to=2024-01-15T17:30:00%2B07:00",
			wantFrom: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ListHistoryRequest{}

			err := req.FromRequest(httptest.NewRequest("GET", "/v1/history"+tt.query, nil))
			require.NoError(t, err)
			require.NotNil(t, req.From)
			require.NotNil(t, req.To)
			assert.True(t, tt.wantFrom.Equal(*req.From))
			assert.True(t, tt.wantTo.Equal(*req.To))
		})
	}
}

func TestListHistoryRequest_FromRequest_Invalid(t *testing.T) {
	req := dto.ListHistoryRequest{}

	err := req.FromRequest(httptest.NewRequest("GET", "/v1/history?from=15/01/2024", nil))
	assert.EqualError(t, err, "Invalid from date")
	assert.Nil(t, req.From)
}
