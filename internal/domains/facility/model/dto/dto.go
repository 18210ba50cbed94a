package dto

import (
	"cleanrate/internal/domains/facility/model"
	gModel "cleanrate/shared/model"
	"cleanrate/shared/timezone"

	"github.com/google/uuid"
)

type CreateBuildingRequest struct {
	Name        string `json:"name"         validate:"omitempty,max=255"`
	Address     string `json:"address"      validate:"omitempty"`
	TotalFloors int    `json:"total_floors" validate:"omitempty,gte=0"`
}

func (c *CreateBuildingRequest) ToModel(user string) model.Building {
	now := timezone.Now()

	return model.Building{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Address:     c.Address,
		TotalFloors: c.TotalFloors,
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBuildingRequest struct {
	BuildingID  string `db:"-"            json:"building_id"  validate:"required,uuid"`
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=255"`
	Address     string `db:"address"      json:"address"      validate:"omitempty"`
	TotalFloors int    `db:"total_floors" json:"total_floors" validate:"omitempty,gte=0"`
}

func (r UpdateBuildingRequest) IsEmpty() bool {
	return r.Name == "" && r.Address == "" && r.TotalFloors == 0
}

type DeleteBuildingRequest struct {
	BuildingID string `json:"building_id" validate:"required,uuid"`
}

type CreateFloorRequest struct {
	BuildingID  string `json:"building_id"  validate:"omitempty,uuid"`
	FloorName   string `json:"floor_name"   validate:"omitempty,max=255"`
	FloorNumber *int   `json:"floor_number" validate:"omitempty"`
}

func (c *CreateFloorRequest) ToModel(user string) model.Floor {
	now := timezone.Now()

	number := 0
	if c.FloorNumber != nil {
		number = *c.FloorNumber
	}

	return model.Floor{
		ID:          uuid.NewString(),
		BuildingID:  c.BuildingID,
		FloorName:   c.FloorName,
		FloorNumber: number,
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFloorRequest struct {
	ID          string `db:"-"            json:"id"           validate:"required,uuid"`
	FloorName   string `db:"floor_name"   json:"floor_name"   validate:"omitempty,max=255"`
	FloorNumber *int   `db:"floor_number" json:"floor_number" validate:"omitempty"`
	IsActive    *bool  `db:"is_active"    json:"is_active"    validate:"omitempty"`
}

func (r UpdateFloorRequest) IsEmpty() bool {
	return r.FloorName == "" && r.FloorNumber == nil && r.IsActive == nil
}

type CreateRoomRequest struct {
	FloorID  string `json:"floor_id"  validate:"omitempty,uuid"`
	RoomName string `json:"room_name" validate:"omitempty,max=255"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	now := timezone.Now()

	return model.Room{
		ID:       uuid.NewString(),
		FloorID:  c.FloorID,
		RoomName: c.RoomName,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	ID       string `db:"-"         json:"id"        validate:"required,uuid"`
	RoomName string `db:"room_name" json:"room_name" validate:"omitempty,max=255"`
	IsActive *bool  `db:"is_active" json:"is_active" validate:"omitempty"`
}

func (r UpdateRoomRequest) IsEmpty() bool {
	return r.RoomName == "" && r.IsActive == nil
}

type DeleteRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	FloorID      string `json:"floor_id"`
	RoomName     string `json:"room_name"`
	IsActive     bool   `json:"is_active"`
	FloorName    string `json:"floor_name,omitempty"`
	BuildingName string `json:"building_name,omitempty"`
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.FloorID = m.FloorID
	r.RoomName = m.RoomName
	r.IsActive = m.IsActive
	r.FloorName = m.FloorName
	r.BuildingName = m.BuildingName
}

type FloorResponse struct {
	ID           string         `json:"id"`
	BuildingID   string         `json:"building_id"`
	BuildingName string         `json:"building_name,omitempty"`
	FloorName    string         `json:"floor_name"`
	FloorNumber  int            `json:"floor_number"`
	IsActive     bool           `json:"is_active"`
	TotalRooms   int            `json:"total_rooms"`
	Rooms        []RoomResponse `json:"rooms,omitempty"`
}

func (r *FloorResponse) FromModel(m model.Floor) {
	r.ID = m.ID
	r.BuildingID = m.BuildingID
	r.BuildingName = m.BuildingName
	r.FloorName = m.FloorName
	r.FloorNumber = m.FloorNumber
	r.IsActive = m.IsActive
}

type BuildingResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	TotalFloors int             `json:"total_floors"`
	TotalRooms  int             `json:"total_rooms"`
	IsActive    bool            `json:"is_active"`
	Floors      []FloorResponse `json:"floors,omitempty"`
}

func (r *BuildingResponse) FromModel(m model.Building) {
	r.ID = m.ID
	r.Name = m.Name
	r.Address = m.Address
	r.TotalFloors = m.TotalFloors
	r.IsActive = m.IsActive
}

type FacilitiesResponse struct {
	Facilities     []BuildingResponse `json:"facilities"`
	TotalBuildings int                `json:"total_buildings"`
	TotalFloors    int                `json:"total_floors"`
	TotalRooms     int                `json:"total_rooms"`
}

// FromModels nests floors under their building and rooms under their floor,
// keeping the order the slices arrive in.
func (r *FacilitiesResponse) FromModels(buildings []model.Building, floors []model.Floor, rooms []model.Room) {
	roomsByFloor := make(map[string][]RoomResponse, len(floors))

	for _, room := range rooms {
		var res RoomResponse
		res.FromModel(room)
		roomsByFloor[room.FloorID] = append(roomsByFloor[room.FloorID], res)
	}

	floorsByBuilding := make(map[string][]FloorResponse, len(buildings))

	for _, floor := range floors {
		var res FloorResponse
		res.FromModel(floor)
		res.Rooms = roomsByFloor[floor.ID]
		res.TotalRooms = len(res.Rooms)

		floorsByBuilding[floor.BuildingID] = append(floorsByBuilding[floor.BuildingID], res)
	}

	r.Facilities = make([]BuildingResponse, len(buildings))
	r.TotalFloors, r.TotalRooms = 0, 0

	for i, building := range buildings {
		r.Facilities[i].FromModel(building)
		r.Facilities[i].Floors = floorsByBuilding[building.ID]

		for _, floor := range r.Facilities[i].Floors {
			r.Facilities[i].TotalRooms += floor.TotalRooms
		}

		r.TotalFloors += len(r.Facilities[i].Floors)
		r.TotalRooms += r.Facilities[i].TotalRooms
	}

	r.TotalBuildings = len(buildings)
}

type AssignFloorRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	FloorID    string `json:"floor_id"    validate:"required,uuid"`
}

type ReplaceFloorsRequest struct {
	EmployeeID string   `json:"employee_id" validate:"required,uuid"`
	Building   string   `json:"building"    validate:"required,max=255"`
	Floors     []string `json:"floors"      validate:"omitempty,dive,required,max=255"`
}

type ReleaseFloorRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	FloorID    string `json:"floor_id"    validate:"required,uuid"`
}

type AssignedTo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func assignedTo(m model.FloorAssignment) *AssignedTo {
	if !m.IsHeld() {
		return nil
	}

	res := &AssignedTo{ID: *m.EmployeeID}

	if m.EmployeeName != nil {
		res.Name = *m.EmployeeName
	}

	if m.Email != nil {
		res.Email = *m.Email
	}

	return res
}

type FloorAssignmentStatusResponse struct {
	IsAssigned bool        `json:"is_assigned"`
	AssignedTo *AssignedTo `json:"assigned_to,omitempty"`
}

func (r *FloorAssignmentStatusResponse) FromModel(m *model.FloorAssignment) {
	r.IsAssigned = false
	r.AssignedTo = nil

	if m == nil || !m.IsHeld() {
		return
	}

	r.IsAssigned = true
	r.AssignedTo = assignedTo(*m)
}

type FloorAssignmentResponse struct {
	FloorID      string      `json:"floor_id"`
	FloorName    string      `json:"floor_name"`
	FloorNumber  int         `json:"floor_number"`
	BuildingID   string      `json:"building_id"`
	BuildingName string      `json:"building_name"`
	IsAssigned   bool        `json:"is_assigned"`
	AssignedTo   *AssignedTo `json:"assigned_to"`
}

func (r *FloorAssignmentResponse) FromModel(m model.FloorAssignment) {
	r.FloorID = m.FloorID
	r.FloorName = m.FloorName
	r.FloorNumber = m.FloorNumber
	r.BuildingID = m.BuildingID
	r.BuildingName = m.BuildingName
	r.IsAssigned = m.IsHeld()
	r.AssignedTo = assignedTo(m)
}

type FloorAssignmentsResponse struct {
	FloorAssignments []FloorAssignmentResponse `json:"floor_assignments"`
}

func (r *FloorAssignmentsResponse) FromModels(models []model.FloorAssignment) {
	r.FloorAssignments = make([]FloorAssignmentResponse, len(models))
	for i, m := range models {
		r.FloorAssignments[i].FromModel(m)
	}
}

// EmployeeFloorsResponse is an employee's assignment set after a write.
type EmployeeFloorsResponse struct {
	EmployeeID string   `json:"employee_id"`
	Building   *string  `json:"building"`
	Floors     []string `json:"floors"`
}
