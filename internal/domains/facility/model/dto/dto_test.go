package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanrate/internal/domains/facility/model"
	"cleanrate/internal/domains/facility/model/dto"
)

func TestFacilitiesResponse_FromModels(t *testing.T) {
	buildings := []model.Building{
		{ID: "b1", Name: "Tower A"},
		{ID: "b2", Name: "Tower B"},
	}
	floors := []model.Floor{
		{ID: "f2", BuildingID: "b1", FloorName: "2F", FloorNumber: 2},
		{ID: "f1", BuildingID: "b1", FloorName: "1F", FloorNumber: 1},
	}
	rooms := []model.Room{
		{ID: "r1", FloorID: "f2", RoomName: "201"},
		{ID: "r2", FloorID: "f2", RoomName: "202"},
		{ID: "r3", FloorID: "f1", RoomName: "101"},
	}

	var res dto.FacilitiesResponse
	res.FromModels(buildings, floors, rooms)

	assert.Equal(t, 2, res.TotalBuildings)
	assert.Equal(t, 2, res.TotalFloors)
	assert.Equal(t, 3, res.TotalRooms)

	require.Len(t, res.Facilities, 2)
	assert.Equal(t, 3, res.Facilities[0].TotalRooms)
	assert.Equal(t, []string{"2F", "1F"}, []string{res.Facilities[0].Floors[0].FloorName, res.Facilities[0].Floors[1].FloorName})
	assert.Equal(t, 2, res.Facilities[0].Floors[0].TotalRooms)
	assert.Empty(t, res.Facilities[1].Floors)
	assert.Zero(t, res.Facilities[1].TotalRooms)
}

func TestFloorAssignmentStatusResponse_FromModel(t *testing.T) {
	var res dto.FloorAssignmentStatusResponse

	res.FromModel(nil)
	assert.False(t, res.IsAssigned)
	assert.Nil(t, res.AssignedTo)

	id, name := "e1", "Alice"
	res.FromModel(&model.FloorAssignment{FloorID: "f1", EmployeeID: &id, EmployeeName: &name})
	assert.True(t, res.IsAssigned)
	require.NotNil(t, res.AssignedTo)
	assert.Equal(t, "Alice", res.AssignedTo.Name)
	assert.Empty(t, res.AssignedTo.Email)

	res.FromModel(&model.FloorAssignment{FloorID: "f1"})
	assert.False(t, res.IsAssigned)
	assert.Nil(t, res.AssignedTo)
}

func TestRequests_IsEmpty(t *testing.T) {
	zero := 0

	assert.True(t, dto.UpdateBuildingRequest{BuildingID: "b1"}.IsEmpty())
	assert.False(t, dto.UpdateBuildingRequest{BuildingID: "b1", TotalFloors: 3}.IsEmpty())
	assert.True(t, dto.UpdateFloorRequest{ID: "f1"}.IsEmpty())
	assert.False(t, dto.UpdateFloorRequest{ID: "f1", FloorNumber: &zero}.IsEmpty())
	assert.True(t, dto.UpdateRoomRequest{ID: "r1"}.IsEmpty())
}

func TestCreateFloorRequest_ToModel(t *testing.T) {
	number := 7
	req := dto.CreateFloorRequest{BuildingID: "b1", FloorName: "7F", FloorNumber: &number}

	m := req.ToModel("admin-1")
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, 7, m.FloorNumber)
	assert.True(t, m.IsActive)
	assert.Equal(t, "admin-1", m.CreatedBy)
	assert.Equal(t, m.CreatedAt, m.ModifiedAt)
}
