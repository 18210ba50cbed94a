package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "history"
	EntityName = "history"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldAction    = "action"
	FieldTableName = "table_name"
	FieldRecordID  = "record_id"
	FieldCreatedAt = "created_at"
)

const (
	ActionLogin = "LOGIN"

	ActionAddRating    = "ADD_RATING"
	ActionUpdateRating = "UPDATE_RATING"
	ActionDeleteRating = "DELETE_RATING"

	ActionCreateEmployee = "CREATE_EMPLOYEE"
	ActionUpdateEmployee = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee = "DELETE_EMPLOYEE"

	ActionCreateBuilding = "CREATE_BUILDING"
	ActionUpdateBuilding = "UPDATE_BUILDING"
	ActionDeleteBuilding = "DELETE_BUILDING"
	ActionCreateFloor    = "CREATE_FLOOR"
	ActionUpdateFloor    = "UPDATE_FLOOR"
	ActionDeleteFloor    = "DELETE_FLOOR"
	ActionCreateRoom     = "CREATE_ROOM"
	ActionUpdateRoom     = "UPDATE_ROOM"
	ActionDeleteRoom     = "DELETE_ROOM"

	ActionAssignFloor  = "ASSIGN_FLOOR"
	ActionReleaseFloor = "RELEASE_FLOOR"
)

const (
	SinkDatabase = "database"
	SinkKafka    = "kafka"
)

// History is append-only. The actor columns come from a LEFT JOIN so entries
// written by the system or by since-deleted users still list.
type History struct {
	ID        string             `db:"id"`
	UserID    *string            `db:"user_id"`
	Action    string             `db:"action"`
	TableName string             `db:"table_name"`
	RecordID  string             `db:"record_id"`
	OldValues types.NullJSONText `db:"old_values"`
	NewValues types.NullJSONText `db:"new_values"`
	IPAddress string             `db:"ip_address"`
	UserAgent string             `db:"user_agent"`
	CreatedAt time.Time          `db:"created_at"`

	UserName           *string `db:"user_name"            table:"users" column:"name"`
	UserEmail          *string `db:"user_email"           table:"users" column:"email"`
	UserProfilePicture *string `db:"user_profile_picture" table:"users" column:"profile_picture"`
}

func (History) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = history.user_id"
}
