package model

import (
	"time"

	"cleanrate/shared/model"
)

const (
	TableName  = "ratings"
	EntityName = "rating"

	FieldID         = "id"
	FieldEmployeeID = "employee_id"
	FieldRoomID     = "room_id"
	FieldRating     = "rating"
	FieldNotes      = "notes"
	FieldRatedBy    = "rated_by"
	FieldRatedAt    = "rated_at"
	FieldRatedOn    = "rated_on"
)

// Rating is one score per (employee, room, UTC day). The joined names make
// the row usable as an audit snapshot without further lookups.
type Rating struct {
	ID         string    `db:"id"`
	EmployeeID string    `db:"employee_id"`
	RoomID     string    `db:"room_id"`
	Rating     int       `db:"rating"`
	Notes      string    `db:"notes"`
	RatedBy    *string   `db:"rated_by"`
	RatedAt    time.Time `db:"rated_at"`
	RatedOn    time.Time `db:"rated_on"`
	model.Metadata

	EmployeeName string  `db:"employee_name" table:"users"     column:"name"`
	RoomName     string  `db:"room_name"     table:"rooms"     column:"room_name"`
	FloorName    string  `db:"floor_name"    table:"floors"    column:"floor_name"`
	BuildingName string  `db:"building_name" table:"buildings" column:"name"`
	RatedByName  *string `db:"rated_by_name" table:"raters"    column:"name"`
}

func (Rating) GetJoinQuery() string {
	return "JOIN users ON users.id = ratings.employee_id " +
		"JOIN rooms ON rooms.id = ratings.room_id " +
		"JOIN floors ON floors.id = rooms.floor_id " +
		"JOIN buildings ON buildings.id = floors.building_id " +
		"LEFT JOIN users raters ON raters.id = ratings.rated_by"
}

// Target names the employee and room a rating is written for.
type Target struct {
	EmployeeName string `db:"employee_name"`
	RoomName     string `db:"room_name"`
}

// ListFilter narrows the rating report. Bounds are inclusive calendar days.
type ListFilter struct {
	EmployeeIDs []string
	From        *time.Time
	To          *time.Time
}
