package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cleanrate/infras/otel/mocks"
	pgMocks "cleanrate/infras/postgres/mocks"
	facilityMocks "cleanrate/internal/domains/facility/mocks"
	"cleanrate/internal/domains/facility/model"
	"cleanrate/internal/domains/facility/model/dto"
	"cleanrate/internal/domains/facility/service"
	historyMocks "cleanrate/internal/domains/history/mocks"
	historyModel "cleanrate/internal/domains/history/model"
	cacheMocks "cleanrate/shared/cache/mocks"
	"cleanrate/shared/failure"
)

const (
	aliceID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	bobID   = "9b2f5c1e-2a3d-4b8e-9f00-1c2d3e4f5a6b"
)

func strPtr(s string) *string {
	return &s
}

func floorRow(id, name string, number int, holderID, holderName string) model.FloorAssignment {
	row := model.FloorAssignment{
		FloorID:      id,
		FloorName:    name,
		FloorNumber:  number,
		BuildingID:   buildingID,
		BuildingName: "Tower A",
	}

	if holderID != "" {
		row.EmployeeID = strPtr(holderID)
		row.EmployeeName = strPtr(holderName)
		row.Email = strPtr(holderName + "@example.com")
	}

	return row
}

type assignmentDeps struct {
	repo       *facilityMocks.MockAssignmentRepository
	transactor *pgMocks.MockTransactor
	history    *historyMocks.MockHistoryService
}

func newAssignment(t *testing.T) (service.Assignment, assignmentDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := assignmentDeps{
		repo:       facilityMocks.NewMockAssignmentRepository(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		history:    historyMocks.NewMockHistoryService(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pgMocks.PassThrough(deps.transactor)

	return service.NewAssignment(deps.repo, deps.transactor, deps.history, mockCache, mocks.NewOtel()), deps
}

func TestAssignmentService_CheckConflicts(t *testing.T) {
	tests := []struct {
		name     string
		floors   []string
		rows     []model.FloorAssignment
		wantCode int
		wantMsg  string
		wantLen  int
	}{
		{
			name:    "free floors",
			floors:  []string{"3F", "2F"},
			rows:    []model.FloorAssignment{floorRow("f3", "3F", 3, "", ""), floorRow("f2", "2F", 2, "", "")},
			wantLen: 2,
		},
		{
			name:    "held by the excluded employee",
			floors:  []string{"3F"},
			rows:    []model.FloorAssignment{floorRow("f3", "3F", 3, aliceID, "Alice")},
			wantLen: 1,
		},
		{
			name:     "held by someone else",
			floors:   []string{"3F", "2F"},
			rows:     []model.FloorAssignment{floorRow("f3", "3F", 3, bobID, "Bob"), floorRow("f2", "2F", 2, "", "")},
			wantCode: http.StatusConflict,
			wantMsg:  "Floor already assigned: 3F (Bob)",
		},
		{
			name:     "unknown floor",
			floors:   []string{"3F", "9F"},
			rows:     []model.FloorAssignment{floorRow("f3", "3F", 3, "", "")},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Floor not found in building Tower A: 9F",
		},
		{
			name:    "duplicate names collapse",
			floors:  []string{"3F", "3F", " 3F "},
			rows:    []model.FloorAssignment{floorRow("f3", "3F", 3, "", "")},
			wantLen: 1,
		},
		{
			name:   "earliest holder wins",
			floors: []string{"3F"},
			rows: []model.FloorAssignment{
				floorRow("f3", "3F", 3, aliceID, "Alice"),
				floorRow("f3", "3F", 3, bobID, "Bob"),
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newAssignment(t)

			deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter model.AssignmentFilter) ([]model.FloorAssignment, error) {
					assert.Equal(t, "Tower A", filter.BuildingName)

					seen := map[string]bool{}
					for _, name := range filter.FloorNames {
						assert.False(t, seen[name])
						seen[name] = true
					}

					return tt.rows, nil
				})

			res, err := svc.CheckConflicts(context.Background(), nil, "Tower A", tt.floors, aliceID)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.EqualError(t, err, tt.wantMsg)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestAssignmentService_CheckConflicts_NoFloors(t *testing.T) {
	svc, _ := newAssignment(t)

	res, err := svc.CheckConflicts(context.Background(), nil, "Tower A", nil, aliceID)
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestAssignmentService_AssignFloorsTx(t *testing.T) {
	t.Run("replaces the set", func(t *testing.T) {
		svc, deps := newAssignment(t)

		gomock.InOrder(
			deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]model.FloorAssignment{floorRow("f3", "3F", 3, "", "")}, nil),
			deps.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), aliceID).Return(int64(2), nil),
			deps.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), aliceID, "f3").Return(nil),
		)

		assert.NoError(t, svc.AssignFloorsTx(context.Background(), nil, aliceID, "Tower A", []string{"3F"}))
	})

	t.Run("unique violation is a conflict", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, "", "")}, nil)
		deps.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), aliceID).Return(int64(0), nil)
		deps.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), aliceID, "f3").Return(&pq.Error{Code: "23505"})

		err := svc.AssignFloorsTx(context.Background(), nil, aliceID, "Tower A", []string{"3F"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Floor already assigned: 3F")
	})

	t.Run("conflict stops the write", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, bobID, "Bob")}, nil)

		err := svc.AssignFloorsTx(context.Background(), nil, aliceID, "Tower A", []string{"3F"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAssignmentService_AssignedFloors(t *testing.T) {
	svc, deps := newAssignment(t)

	deps.repo.EXPECT().Scan(gomock.Any(), model.AssignmentFilter{EmployeeIDs: []string{aliceID, bobID}, HeldOnly: true}).
		Return([]model.FloorAssignment{
			floorRow("f3", "3F", 3, aliceID, "Alice"),
			floorRow("f2", "2F", 2, aliceID, "Alice"),
			floorRow("f1", "1F", 1, bobID, "Bob"),
		}, nil)

	res, err := svc.AssignedFloors(context.Background(), aliceID, bobID)
	require.NoError(t, err)
	assert.Equal(t, []string{"3F", "2F"}, res[aliceID])
	assert.Equal(t, []string{"1F"}, res[bobID])
}

func TestAssignmentService_Status(t *testing.T) {
	t.Run("held", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().Scan(gomock.Any(), gomock.Any()).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, bobID, "Bob")}, nil)

		res, err := svc.Status(context.Background(), "Tower A", "3F", aliceID)
		require.NoError(t, err)
		assert.True(t, res.IsAssigned)
		require.NotNil(t, res.AssignedTo)
		assert.Equal(t, "Bob", res.AssignedTo.Name)
	})

	t.Run("held by the excluded employee", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().Scan(gomock.Any(), gomock.Any()).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, aliceID, "Alice")}, nil)

		res, err := svc.Status(context.Background(), "Tower A", "3F", aliceID)
		require.NoError(t, err)
		assert.False(t, res.IsAssigned)
		assert.Nil(t, res.AssignedTo)
	})

	t.Run("unknown floor", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().Scan(gomock.Any(), gomock.Any()).Return([]model.FloorAssignment{}, nil)

		_, err := svc.Status(context.Background(), "Tower A", "9F", "")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAssignmentService_List(t *testing.T) {
	svc, deps := newAssignment(t)

	deps.repo.EXPECT().Scan(gomock.Any(), model.AssignmentFilter{}).Return([]model.FloorAssignment{
		floorRow("f3", "3F", 3, aliceID, "Alice"),
		floorRow("f2", "2F", 2, bobID, "Bob"),
		floorRow("f1", "1F", 1, "", ""),
	}, nil)

	res, err := svc.List(context.Background(), aliceID)
	require.NoError(t, err)
	require.Len(t, res.FloorAssignments, 3)
	assert.False(t, res.FloorAssignments[0].IsAssigned)
	assert.True(t, res.FloorAssignments[1].IsAssigned)
	assert.Equal(t, bobID, res.FloorAssignments[1].AssignedTo.ID)
	assert.Nil(t, res.FloorAssignments[2].AssignedTo)
}

func TestAssignmentService_Assign(t *testing.T) {
	req := dto.AssignFloorRequest{EmployeeID: aliceID, FloorID: "f3"}

	t.Run("success", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).
			Return(model.Assignee{ID: aliceID, Name: "Alice"}, nil)
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{FloorID: "f3"}).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, "", "")}, nil)
		gomock.InOrder(
			deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{EmployeeIDs: []string{aliceID}, HeldOnly: true}).
				Return([]model.FloorAssignment{}, nil),
			deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{EmployeeIDs: []string{aliceID}, HeldOnly: true}).
				Return([]model.FloorAssignment{floorRow("f3", "3F", 3, aliceID, "Alice")}, nil),
		)
		deps.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), aliceID, "f3").Return(nil)
		deps.repo.EXPECT().SetBuildingTx(gomock.Any(), gomock.Any(), aliceID, gomock.Any(), gomock.Any()).Return(nil)
		expectHistory(t, deps.history, historyModel.ActionAssignFloor)

		res, err := svc.Assign(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, []string{"3F"}, res.Floors)
		require.NotNil(t, res.Building)
		assert.Equal(t, "Tower A", *res.Building)
	})

	t.Run("held by another employee", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).Return(model.Assignee{ID: aliceID}, nil)
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{FloorID: "f3"}).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, bobID, "Bob")}, nil)
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FloorAssignment{}, nil)

		_, err := svc.Assign(context.Background(), req)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Floor already assigned: 3F (Bob)")
	})

	t.Run("other building while holding floors", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).
			Return(model.Assignee{ID: aliceID, AssignedBuilding: strPtr("Tower B")}, nil)
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{FloorID: "f3"}).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, "", "")}, nil)
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.FloorAssignment{floorRow("b1", "1F", 1, aliceID, "Alice")}, nil)

		_, err := svc.Assign(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("employee not found", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).Return(model.Assignee{}, nil)

		_, err := svc.Assign(context.Background(), req)
		assert.EqualError(t, err, "Employee not found")
	})

	t.Run("floor not found", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).Return(model.Assignee{ID: aliceID}, nil)
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FloorAssignment{}, nil)

		_, err := svc.Assign(context.Background(), req)
		assert.EqualError(t, err, "Floor not found")
	})
}

func TestAssignmentService_Replace(t *testing.T) {
	svc, deps := newAssignment(t)

	req := dto.ReplaceFloorsRequest{EmployeeID: aliceID, Building: "Tower A", Floors: []string{"3F"}}

	deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).
		Return(model.Assignee{ID: aliceID, AssignedBuilding: strPtr("Tower B")}, nil)
	gomock.InOrder(
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{EmployeeIDs: []string{aliceID}, HeldOnly: true}).
			Return([]model.FloorAssignment{floorRow("b1", "1F", 1, aliceID, "Alice")}, nil),
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{BuildingName: "Tower A", FloorNames: []string{"3F"}}).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, "", "")}, nil),
		deps.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), aliceID).Return(int64(1), nil),
		deps.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), aliceID, "f3").Return(nil),
		deps.repo.EXPECT().SetBuildingTx(gomock.Any(), gomock.Any(), aliceID, gomock.Any(), gomock.Any()).Return(nil),
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), model.AssignmentFilter{EmployeeIDs: []string{aliceID}, HeldOnly: true}).
			Return([]model.FloorAssignment{floorRow("f3", "3F", 3, aliceID, "Alice")}, nil),
	)
	expectHistory(t, deps.history, historyModel.ActionAssignFloor)

	res, err := svc.Replace(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"3F"}, res.Floors)
	assert.Equal(t, "Tower A", *res.Building)
}

func TestAssignmentService_Release(t *testing.T) {
	req := dto.ReleaseFloorRequest{EmployeeID: aliceID, FloorID: "f3"}

	t.Run("success", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).
			Return(model.Assignee{ID: aliceID, AssignedBuilding: strPtr("Tower A")}, nil)
		gomock.InOrder(
			deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]model.FloorAssignment{floorRow("f3", "3F", 3, aliceID, "Alice")}, nil),
			deps.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), aliceID, "f3").Return(int64(1), nil),
			deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FloorAssignment{}, nil),
		)
		expectHistory(t, deps.history, historyModel.ActionReleaseFloor)

		res, err := svc.Release(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, res.Floors)
	})

	t.Run("assignment not found", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).Return(model.Assignee{ID: aliceID}, nil)
		deps.repo.EXPECT().ScanTx(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FloorAssignment{}, nil)
		deps.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), aliceID, "f3").Return(int64(0), nil)

		_, err := svc.Release(context.Background(), req)
		assert.EqualError(t, err, "Floor assignment not found")
	})

	t.Run("repository error", func(t *testing.T) {
		svc, deps := newAssignment(t)

		deps.repo.EXPECT().AssigneeTx(gomock.Any(), gomock.Any(), aliceID).Return(model.Assignee{}, errors.New("database error"))

		_, err := svc.Release(context.Background(), req)
		assert.Error(t, err)
	})
}
