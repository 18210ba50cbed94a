package service

//go:generate go run go.uber.org/mock/mockgen -source=./assignment.go -destination=../mocks/assignment_service_mock.go -package=mocks -mock_names=Assignment=MockAssignmentService

import (
	"context"
	"fmt"
	"strings"

	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/facility/model"
	"cleanrate/internal/domains/facility/model/dto"
	"cleanrate/internal/domains/facility/repository"
	historyModel "cleanrate/internal/domains/history/model"
	historyDto "cleanrate/internal/domains/history/model/dto"
	historyService "cleanrate/internal/domains/history/service"
	"cleanrate/shared"
	"cleanrate/shared/cache"
	"cleanrate/shared/constant"
	"cleanrate/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Assignment owns employee_floors. A floor is held by at most one active employee.
type Assignment interface {
	// CheckConflicts resolves floor names inside building and fails when any of them
	// is held by an employee other than excludeEmployeeID.
	CheckConflicts(ctx context.Context, tx *sqlx.Tx, building string, floors []string, excludeEmployeeID string) ([]model.FloorAssignment, error)
	// AssignFloorsTx replaces the employee's floors with the named floors of building.
	AssignFloorsTx(ctx context.Context, tx *sqlx.Tx, employeeID, building string, floors []string) error
	ReleaseEmployeeTx(ctx context.Context, tx *sqlx.Tx, employeeID string) error
	AssignedFloors(ctx context.Context, employeeIDs ...string) (map[string][]string, error)
	EmployeesOnFloor(ctx context.Context, building, floor string) ([]string, error)

	Status(ctx context.Context, building, floor, excludeEmployeeID string) (dto.FloorAssignmentStatusResponse, error)
	List(ctx context.Context, excludeEmployeeID string) (dto.FloorAssignmentsResponse, error)
	Assign(ctx context.Context, req dto.AssignFloorRequest) (dto.EmployeeFloorsResponse, error)
	Replace(ctx context.Context, req dto.ReplaceFloorsRequest) (dto.EmployeeFloorsResponse, error)
	Release(ctx context.Context, req dto.ReleaseFloorRequest) (dto.EmployeeFloorsResponse, error)
}

type assignmentImpl struct {
	repo       repository.Assignment
	transactor postgres.Transactor
	history    historyService.History
	cache      cache.RedisCache
	otel       otel.Otel
}

func NewAssignment(
	repo repository.Assignment,
	transactor postgres.Transactor,
	history historyService.History,
	cache cache.RedisCache,
	otel otel.Otel,
) Assignment {
	return &assignmentImpl{
		repo:       repo,
		transactor: transactor,
		history:    history,
		cache:      cache,
		otel:       otel,
	}
}

func holderLabel(a model.FloorAssignment) string {
	holder := *a.EmployeeID
	if a.EmployeeName != nil && *a.EmployeeName != "" {
		holder = *a.EmployeeName
	}

	return fmt.Sprintf("%s (%s)", a.FloorName, holder)
}

// byFloor collapses scan rows to one row per floor. Rows arrive ordered by
// assigned_at, so the earliest holder wins when legacy data has several.
func byFloor(rows []model.FloorAssignment) (map[string]model.FloorAssignment, []string) {
	floors := make(map[string]model.FloorAssignment, len(rows))
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		current, seen := floors[row.FloorID]
		if !seen {
			floors[row.FloorID] = row
			order = append(order, row.FloorID)

			continue
		}

		if row.IsHeld() && current.IsHeld() && !current.HeldBy(*row.EmployeeID) {
			log.Warn().
				Str("floor_id", row.FloorID).
				Str("kept", *current.EmployeeID).
				Str("ignored", *row.EmployeeID).
				Msg("floor has more than one holder")
		}
	}

	return floors, order
}

func (s *assignmentImpl) CheckConflicts(
	ctx context.Context,
	tx *sqlx.Tx,
	building string,
	floors []string,
	excludeEmployeeID string,
) (res []model.FloorAssignment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckConflicts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	names := make([]string, 0, len(floors))
	seen := make(map[string]struct{}, len(floors))

	for _, name := range floors {
		name = strings.TrimSpace(name)
		if _, ok := seen[name]; ok || name == "" {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, nil
	}

	if building == "" {
		return nil, failure.BadRequestFromString("Assigned building is required when floors are assigned")
	}

	rows, err := s.repo.ScanTx(ctx, tx, model.AssignmentFilter{BuildingName: building, FloorNames: names})
	if err != nil {
		log.Error().Err(err).Msg("failed to scan floor assignments")

		return nil, fmt.Errorf("failed to scan floor assignments: %w", err)
	}

	resolved, order := byFloor(rows)

	byName := make(map[string]model.FloorAssignment, len(order))
	for _, id := range order {
		byName[resolved[id].FloorName] = resolved[id]
	}

	var (
		missing []string
		held    []string
	)

	res = make([]model.FloorAssignment, 0, len(names))

	for _, name := range names {
		floor, ok := byName[name]
		if !ok {
			missing = append(missing, name)

			continue
		}

		if floor.IsHeld() && !floor.HeldBy(excludeEmployeeID) {
			held = append(held, holderLabel(floor))
		}

		res = append(res, floor)
	}

	if len(missing) > 0 {
		return nil, failure.BadRequestFromString(fmt.Sprintf("Floor not found in building %s: %s", building, strings.Join(missing, ", ")))
	}

	if len(held) > 0 {
		return nil, failure.FloorConflict(held)
	}

	return res, nil
}

func (s *assignmentImpl) AssignFloorsTx(ctx context.Context, tx *sqlx.Tx, employeeID, building string, floors []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignFloorsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resolved, err := s.CheckConflicts(ctx, tx, building, floors, employeeID)
	if err != nil {
		return err
	}

	if _, err = s.repo.DeleteTx(ctx, tx, employeeID); err != nil {
		return fmt.Errorf("failed to release floors: %w", err)
	}

	ids := make([]string, len(resolved))
	names := make([]string, len(resolved))

	for i, floor := range resolved {
		ids[i] = floor.FloorID
		names[i] = floor.FloorName
	}

	if err = s.repo.InsertTx(ctx, tx, employeeID, ids...); err != nil {
		// another writer took one of the floors after the conflict check
		if postgres.IsUniqueViolation(err) {
			return failure.FloorConflict(names)
		}

		return fmt.Errorf("failed to assign floors: %w", err)
	}

	return nil
}

func (s *assignmentImpl) ReleaseEmployeeTx(ctx context.Context, tx *sqlx.Tx, employeeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseEmployeeTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.DeleteTx(ctx, tx, employeeID); err != nil {
		return fmt.Errorf("failed to release floors: %w", err)
	}

	return nil
}

// AssignedFloors maps each employee to floor names ordered by floor_number DESC then name.
func (s *assignmentImpl) AssignedFloors(ctx context.Context, employeeIDs ...string) (res map[string][]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignedFloors")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = make(map[string][]string, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return res, nil
	}

	rows, err := s.repo.Scan(ctx, model.AssignmentFilter{EmployeeIDs: employeeIDs, HeldOnly: true})
	if err != nil {
		log.Error().Err(err).Msg("failed to get assigned floors")

		return nil, fmt.Errorf("failed to get assigned floors: %w", err)
	}

	for _, row := range rows {
		res[*row.EmployeeID] = append(res[*row.EmployeeID], row.FloorName)
	}

	return res, nil
}

func (s *assignmentImpl) EmployeesOnFloor(ctx context.Context, building, floor string) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EmployeesOnFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.repo.Scan(ctx, model.AssignmentFilter{BuildingName: building, FloorNames: []string{floor}, HeldOnly: true})
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees on floor")

		return nil, fmt.Errorf("failed to get employees on floor: %w", err)
	}

	res = make([]string, 0, len(rows))
	for _, row := range rows {
		res = append(res, *row.EmployeeID)
	}

	return res, nil
}

func (s *assignmentImpl) Status(ctx context.Context, building, floor, excludeEmployeeID string) (res dto.FloorAssignmentStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if building == "" || floor == "" {
		return res, failure.BadRequestFromString("Building and floor are required")
	}

	rows, err := s.repo.Scan(ctx, model.AssignmentFilter{BuildingName: building, FloorNames: []string{floor}})
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor assignment status")

		return res, fmt.Errorf("failed to get floor assignment status: %w", err)
	}

	if len(rows) == 0 {
		return res, failure.NotFound("Floor not found")
	}

	for _, row := range rows {
		if row.IsHeld() && !row.HeldBy(excludeEmployeeID) {
			res.FromModel(&row)

			return res, nil
		}
	}

	res.FromModel(nil)

	return res, nil
}

func (s *assignmentImpl) List(ctx context.Context, excludeEmployeeID string) (res dto.FloorAssignmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.repo.Scan(ctx, model.AssignmentFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list floor assignments")

		return res, fmt.Errorf("failed to list floor assignments: %w", err)
	}

	floors, order := byFloor(rows)
	models := make([]model.FloorAssignment, len(order))

	for i, id := range order {
		floor := floors[id]
		if excludeEmployeeID != "" && floor.HeldBy(excludeEmployeeID) {
			floor.EmployeeID, floor.EmployeeName, floor.Email, floor.AssignedAt = nil, nil, nil, nil
		}

		models[i] = floor
	}

	res.FromModels(models)

	return res, nil
}

func (s *assignmentImpl) currentFloorsTx(ctx context.Context, tx *sqlx.Tx, employeeID string, building *string) (dto.EmployeeFloorsResponse, error) {
	res := dto.EmployeeFloorsResponse{EmployeeID: employeeID, Building: building, Floors: []string{}}

	rows, err := s.repo.ScanTx(ctx, tx, model.AssignmentFilter{EmployeeIDs: []string{employeeID}, HeldOnly: true})
	if err != nil {
		return res, fmt.Errorf("failed to get assigned floors: %w", err)
	}

	for _, row := range rows {
		res.Floors = append(res.Floors, row.FloorName)
	}

	return res, nil
}

func (s *assignmentImpl) activeAssigneeTx(ctx context.Context, tx *sqlx.Tx, employeeID string) (model.Assignee, error) {
	assignee, err := s.repo.AssigneeTx(ctx, tx, employeeID)
	if err != nil {
		return assignee, err //nolint:wrapcheck
	}

	if assignee.ID == "" {
		return assignee, failure.NotFound("Employee not found")
	}

	return assignee, nil
}

func (s *assignmentImpl) afterWrite(ctx context.Context, action, employeeID string, oldValues, newValues any) {
	s.history.Record(ctx, historyDto.Entry{
		Action:    action,
		TableName: model.TableEmployeeFloor,
		RecordID:  employeeID,
		OldValues: oldValues,
		NewValues: newValues,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixEmployee)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()
}

func (s *assignmentImpl) Assign(ctx context.Context, req dto.AssignFloorRequest) (res dto.EmployeeFloorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var old dto.EmployeeFloorsResponse

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		assignee, err := s.activeAssigneeTx(ctx, tx, req.EmployeeID)
		if err != nil {
			return err
		}

		rows, err := s.repo.ScanTx(ctx, tx, model.AssignmentFilter{FloorID: req.FloorID})
		if err != nil {
			return err //nolint:wrapcheck
		}

		if len(rows) == 0 {
			return failure.NotFound("Floor not found")
		}

		floors, _ := byFloor(rows)
		floor := floors[req.FloorID]

		old, err = s.currentFloorsTx(ctx, tx, assignee.ID, assignee.AssignedBuilding)
		if err != nil {
			return err
		}

		if floor.IsHeld() {
			if floor.HeldBy(assignee.ID) {
				res = old

				return nil
			}

			return failure.FloorConflict([]string{holderLabel(floor)})
		}

		if assignee.AssignedBuilding != nil && *assignee.AssignedBuilding != floor.BuildingName && len(old.Floors) > 0 {
			return failure.BadRequestFromString(fmt.Sprintf(
				"Employee is assigned to building %s; replace the assignment to move buildings", *assignee.AssignedBuilding,
			))
		}

		if err := s.repo.InsertTx(ctx, tx, assignee.ID, floor.FloorID); err != nil {
			if postgres.IsUniqueViolation(err) {
				return failure.FloorConflict([]string{floor.FloorName})
			}

			return err //nolint:wrapcheck
		}

		building := floor.BuildingName
		if err := s.repo.SetBuildingTx(ctx, tx, assignee.ID, &building, shared.UserFromContext(ctx)); err != nil {
			return err //nolint:wrapcheck
		}

		res, err = s.currentFloorsTx(ctx, tx, assignee.ID, &building)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to assign floor")

		return res, err //nolint:wrapcheck
	}

	s.afterWrite(ctx, historyModel.ActionAssignFloor, req.EmployeeID, old, res)

	return res, nil
}

func (s *assignmentImpl) Replace(ctx context.Context, req dto.ReplaceFloorsRequest) (res dto.EmployeeFloorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Replace")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var old dto.EmployeeFloorsResponse

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		assignee, err := s.activeAssigneeTx(ctx, tx, req.EmployeeID)
		if err != nil {
			return err
		}

		old, err = s.currentFloorsTx(ctx, tx, assignee.ID, assignee.AssignedBuilding)
		if err != nil {
			return err
		}

		if err := s.AssignFloorsTx(ctx, tx, assignee.ID, req.Building, req.Floors); err != nil {
			return err
		}

		building := req.Building
		if err := s.repo.SetBuildingTx(ctx, tx, assignee.ID, &building, shared.UserFromContext(ctx)); err != nil {
			return err //nolint:wrapcheck
		}

		res, err = s.currentFloorsTx(ctx, tx, assignee.ID, &building)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to replace floor assignments")

		return res, err //nolint:wrapcheck
	}

	s.afterWrite(ctx, historyModel.ActionAssignFloor, req.EmployeeID, old, res)

	return res, nil
}

func (s *assignmentImpl) Release(ctx context.Context, req dto.ReleaseFloorRequest) (res dto.EmployeeFloorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var old dto.EmployeeFloorsResponse

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		assignee, err := s.activeAssigneeTx(ctx, tx, req.EmployeeID)
		if err != nil {
			return err
		}

		old, err = s.currentFloorsTx(ctx, tx, assignee.ID, assignee.AssignedBuilding)
		if err != nil {
			return err
		}

		deleted, err := s.repo.DeleteTx(ctx, tx, assignee.ID, req.FloorID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if deleted == 0 {
			return failure.NotFound("Floor assignment not found")
		}

		res, err = s.currentFloorsTx(ctx, tx, assignee.ID, assignee.AssignedBuilding)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to release floor")

		return res, err //nolint:wrapcheck
	}

	s.afterWrite(ctx, historyModel.ActionReleaseFloor, req.EmployeeID, old, res)

	return res, nil
}
