package model

import (
	"time"

	"cleanrate/shared/model"
)

const (
	TableBuilding      = "buildings"
	TableFloor         = "floors"
	TableRoom          = "rooms"
	TableEmployeeFloor = "employee_floors"
	TableUser          = "users"

	EntityBuilding = "building"
	EntityFloor    = "floor"
	EntityRoom     = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldTotalFloors = "total_floors"
	FieldIsActive    = "is_active"
	FieldBuildingID  = "building_id"
	FieldFloorID     = "floor_id"
	FieldFloorName   = "floor_name"
	FieldFloorNumber = "floor_number"
	FieldRoomName    = "room_name"
	FieldEmployeeID  = "employee_id"
	FieldAssignedAt  = "assigned_at"
	FieldEmail       = "email"
	FieldBuilding    = "assigned_building"
	FieldModifiedAt  = "modified_at"
	FieldModifiedBy  = "modified_by"
)

type Building struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Address     string `db:"address"`
	TotalFloors int    `db:"total_floors"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

type Floor struct {
	ID          string `db:"id"`
	BuildingID  string `db:"building_id"`
	FloorName   string `db:"floor_name"`
	FloorNumber int    `db:"floor_number"`
	IsActive    bool   `db:"is_active"`
	model.Metadata

	BuildingName string `db:"building_name" table:"buildings" column:"name"`
}

func (Floor) GetJoinQuery() string {
	return "JOIN buildings ON buildings.id = floors.building_id"
}

type Room struct {
	ID       string `db:"id"`
	FloorID  string `db:"floor_id"`
	RoomName string `db:"room_name"`
	IsActive bool   `db:"is_active"`
	model.Metadata

	FloorName    string `db:"floor_name"    table:"floors"    column:"floor_name"`
	BuildingID   string `db:"building_id"   table:"floors"    column:"building_id"`
	BuildingName string `db:"building_name" table:"buildings" column:"name"`
}

func (Room) GetJoinQuery() string {
	return "JOIN floors ON floors.id = rooms.floor_id JOIN buildings ON buildings.id = floors.building_id"
}

// FloorAssignment is one active floor and, when held, its holder. A floor
// without a holder has nil employee fields.
type FloorAssignment struct {
	FloorID      string     `db:"floor_id"`
	FloorName    string     `db:"floor_name"`
	FloorNumber  int        `db:"floor_number"`
	BuildingID   string     `db:"building_id"`
	BuildingName string     `db:"building_name"`
	EmployeeID   *string    `db:"employee_id"`
	EmployeeName *string    `db:"employee_name"`
	Email        *string    `db:"employee_email"`
	AssignedAt   *time.Time `db:"assigned_at"`
}

func (a FloorAssignment) HeldBy(employeeID string) bool {
	return a.EmployeeID != nil && *a.EmployeeID == employeeID
}

func (a FloorAssignment) IsHeld() bool {
	return a.EmployeeID != nil
}

// AssignmentFilter narrows the floor scan. Empty fields are not applied.
type AssignmentFilter struct {
	BuildingName string
	FloorNames   []string
	FloorID      string
	EmployeeIDs  []string
	// HeldOnly drops floors nobody holds.
	HeldOnly bool
}

// Assignee is the employee side of an assignment write.
type Assignee struct {
	ID               string  `db:"id"`
	Name             string  `db:"name"`
	Email            string  `db:"email"`
	AssignedBuilding *string `db:"assigned_building"`
}
