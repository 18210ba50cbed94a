package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cleanrate/internal/domains/history/model"
	"cleanrate/shared/constant"
	"cleanrate/shared/failure"
	"cleanrate/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const DefaultLimit = 100

// Entry is one audit record as produced by a mutating operation. It is also
// the payload published to the history topic.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	TableName string    `json:"table_name"`
	RecordID  string    `json:"record_id"`
	OldValues any       `json:"old_values,omitempty"`
	NewValues any       `json:"new_values,omitempty"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Entry) ToModel() (model.History, error) {
	oldValues, err := toJSON(e.OldValues)
	if err != nil {
		return model.History{}, fmt.Errorf("failed to encode old values: %w", err)
	}

	newValues, err := toJSON(e.NewValues)
	if err != nil {
		return model.History{}, fmt.Errorf("failed to encode new values: %w", err)
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = timezone.Now()
	}

	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}

	return model.History{
		ID:        id,
		UserID:    actorID(e.UserID),
		Action:    e.Action,
		TableName: e.TableName,
		RecordID:  e.RecordID,
		OldValues: oldValues,
		NewValues: newValues,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		CreatedAt: createdAt,
	}, nil
}

// actorID keeps only real user ids; system and guest actors are stored as NULL.
func actorID(userID string) *string {
	if _, err := uuid.Parse(userID); err != nil {
		return nil
	}

	return &userID
}

func toJSON(value any) (types.NullJSONText, error) {
	if value == nil {
		return types.NullJSONText{}, nil
	}

	if raw, ok := value.(json.RawMessage); ok {
		return types.NullJSONText{JSONText: types.JSONText(raw), Valid: len(raw) > 0}, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return types.NullJSONText{}, err //nolint:wrapcheck
	}

	return types.NullJSONText{JSONText: raw, Valid: true}, nil
}

type CreateHistoryRequest struct {
	Action    string          `json:"action"     validate:"required,max=64"`
	TableName string          `json:"table_name" validate:"omitempty,max=64"`
	RecordID  string          `json:"record_id"  validate:"omitempty,max=64"`
	OldValues json.RawMessage `json:"old_values,omitempty" swaggertype:"object"`
	NewValues json.RawMessage `json:"new_values,omitempty" swaggertype:"object"`
}

func (r *CreateHistoryRequest) ToEntry() Entry {
	entry := Entry{
		Action:    r.Action,
		TableName: r.TableName,
		RecordID:  r.RecordID,
	}

	if len(r.OldValues) > 0 {
		entry.OldValues = r.OldValues
	}

	if len(r.NewValues) > 0 {
		entry.NewValues = r.NewValues
	}

	return entry
}

// ListHistoryRequest bounds are exclusive.
type ListHistoryRequest struct {
	From      *time.Time
	To        *time.Time
	Action    string
	UserID    string
	TableName string
	Limit     int
}

// FromRequest reads ?from&to&action&user_id&table_name&limit. Bounds are RFC3339 timestamps
// or plain days, which mean UTC midnight.
func (r *ListHistoryRequest) FromRequest(request *http.Request) error {
	query := request.URL.Query()

	r.Action = query.Get("action")
	r.UserID = query.Get("user_id")
	r.TableName = query.Get("table_name")

	for key, target := range map[string]**time.Time{"from": &r.From, "to": &r.To} {
		value := query.Get(key)
		if value == "" {
			continue
		}

		t, err := parseBound(value)
		if err != nil {
			return failure.BadRequestFromString("Invalid " + key + " date")
		}

		*target = &t
	}

	if value := query.Get(constant.RequestParamLimit); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit <= 0 {
			return failure.BadRequestFromString("Invalid limit")
		}

		r.Limit = limit
	}

	return nil
}

func parseBound(value string) (time.Time, error) {
	if t, err := time.Parse(constant.DateFormat, value); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(constant.DayFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse history bound %q: %w", value, err)
	}

	return t, nil
}

type Actor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
}

type HistoryResponse struct {
	ID        string          `json:"id"`
	UserID    *string         `json:"user_id"`
	User      *Actor          `json:"user,omitempty"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	OldValues json.RawMessage `json:"old_values,omitempty" swaggertype:"object"`
	NewValues json.RawMessage `json:"new_values,omitempty" swaggertype:"object"`
	IPAddress string          `json:"ip_address"`
	UserAgent string          `json:"user_agent"`
	CreatedAt string          `json:"created_at"`
}

func (r *HistoryResponse) FromModel(m model.History) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.Action = m.Action
	r.TableName = m.TableName
	r.RecordID = m.RecordID
	r.IPAddress = m.IPAddress
	r.UserAgent = m.UserAgent
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)

	if m.OldValues.Valid {
		r.OldValues = json.RawMessage(m.OldValues.JSONText)
	}

	if m.NewValues.Valid {
		r.NewValues = json.RawMessage(m.NewValues.JSONText)
	}

	if m.UserID != nil && m.UserName != nil {
		r.User = &Actor{
			ID:             *m.UserID,
			Name:           deref(m.UserName),
			Email:          deref(m.UserEmail),
			ProfilePicture: deref(m.UserProfilePicture),
		}
	}
}

type ListHistoryResponse struct {
	History []HistoryResponse `json:"history"`
	Total   int               `json:"total"`
}

func (r *ListHistoryResponse) FromModels(models []model.History) {
	r.History = make([]HistoryResponse, len(models))
	for i, m := range models {
		r.History[i].FromModel(m)
	}

	r.Total = len(models)
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}
