package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Facility=MockFacilityService

import (
	"context"
	"fmt"

	"cleanrate/config"
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
	gDto "cleanrate/shared/dto"
	"cleanrate/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheFacilityList = constant.CachePrefixFacility + "list"
)

// Facility manages the building -> floor -> room directory.
type Facility interface {
	List(ctx context.Context) (dto.FacilitiesResponse, error)

	CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest) (dto.BuildingResponse, error)
	UpdateBuilding(ctx context.Context, req dto.UpdateBuildingRequest) (dto.BuildingResponse, error)
	DeleteBuilding(ctx context.Context, id string) error

	ListFloors(ctx context.Context, buildingID string) ([]dto.FloorResponse, error)
	CreateFloor(ctx context.Context, req dto.CreateFloorRequest) (dto.FloorResponse, error)
	UpdateFloor(ctx context.Context, req dto.UpdateFloorRequest) (dto.FloorResponse, error)
	DeleteFloor(ctx context.Context, id string) error

	ListRooms(ctx context.Context, floorID string) ([]dto.RoomResponse, error)
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	UpdateRoom(ctx context.Context, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	DeleteRoom(ctx context.Context, id string) error
}

type serviceImpl struct {
	buildingRepo   repository.Building
	floorRepo      repository.Floor
	roomRepo       repository.Room
	assignmentRepo repository.Assignment
	transactor     postgres.Transactor
	history        historyService.History
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	buildingRepo repository.Building,
	floorRepo repository.Floor,
	roomRepo repository.Room,
	assignmentRepo repository.Assignment,
	transactor postgres.Transactor,
	history historyService.History,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Facility {
	return &serviceImpl{
		buildingRepo:   buildingRepo,
		floorRepo:      floorRepo,
		roomRepo:       roomRepo,
		assignmentRepo: assignmentRepo,
		transactor:     transactor,
		history:        history,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func activeFilter(table string) gDto.Filter {
	return gDto.Filter{
		ArgName:  table + "_" + model.FieldIsActive,
		Field:    model.FieldIsActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    table,
	}
}

// invalidate drops every cache that renders facility names.
func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixFacility)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixEmployee)
	}()
}

func (s *serviceImpl) record(ctx context.Context, action, table, id string, oldValues, newValues any) {
	s.history.Record(ctx, historyDto.Entry{
		Action:    action,
		TableName: table,
		RecordID:  id,
		OldValues: oldValues,
		NewValues: newValues,
	})
}

func (s *serviceImpl) List(ctx context.Context) (res dto.FacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheFacilityList, &res); err == nil {
		log.Info().Str("cacheKey", cacheFacilityList).Msg("cache hit for facilities")

		return res, nil
	}

	buildings, err := s.buildingRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.TableBuilding + "." + model.FieldName, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{Filters: []any{activeFilter(model.TableBuilding)}},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get buildings")

		return res, fmt.Errorf("failed to get buildings: %w", err)
	}

	floors, err := s.floorRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.TableFloor + "." + model.FieldFloorNumber, SortDir: gDto.SortDirDesc},
		gDto.FilterGroup{Filters: []any{activeFilter(model.TableFloor), activeFilter(model.TableBuilding)}},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floors")

		return res, fmt.Errorf("failed to get floors: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.TableRoom + "." + model.FieldRoomName, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{Filters: []any{activeFilter(model.TableRoom), activeFilter(model.TableFloor), activeFilter(model.TableBuilding)}},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(buildings, floors, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheFacilityList, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) activeBuildingByName(ctx context.Context, name string) (model.Building, error) {
	building, err := s.buildingRepo.Get(ctx, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorEq, Value: name, Table: model.TableBuilding},
		activeFilter(model.TableBuilding),
	}})
	if err != nil {
		return building, fmt.Errorf("failed to get building by name: %w", err)
	}

	return building, nil
}

func (s *serviceImpl) CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest) (res dto.BuildingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBuilding")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Name == "" || req.Address == "" || req.TotalFloors == 0 {
		return res, failure.BadRequestFromString("Building name, address, and total floors are required")
	}

	existing, err := s.activeBuildingByName(ctx, req.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to check building name")

		return res, err
	}

	if existing.ID != "" {
		return res, failure.Conflict("Building with this name already exists")
	}

	building := req.ToModel(shared.UserFromContext(ctx))

	if err = s.buildingRepo.Insert(ctx, building); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict("Building with this name already exists")
		}

		log.Error().Err(err).Msg("failed to create building")

		return res, fmt.Errorf("failed to create building: %w", err)
	}

	res.FromModel(building)

	s.record(ctx, historyModel.ActionCreateBuilding, model.TableBuilding, building.ID, nil, res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) UpdateBuilding(ctx context.Context, req dto.UpdateBuildingRequest) (res dto.BuildingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBuilding")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("No fields to update")
	}

	filter := shared.FilterByID(req.BuildingID, model.FieldID, model.TableBuilding)
	filter.Filters = append(filter.Filters, activeFilter(model.TableBuilding))

	current, err := s.buildingRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get building")

		return res, fmt.Errorf("failed to get building: %w", err)
	}

	if current.ID == "" {
		return res, failure.NotFound("Building not found or not active")
	}

	renamed := req.Name != "" && req.Name != current.Name
	if renamed {
		existing, err := s.activeBuildingByName(ctx, req.Name)
		if err != nil {
			log.Error().Err(err).Msg("failed to check building name")

			return res, err
		}

		if existing.ID != "" {
			return res, failure.Conflict("Building with this name already exists")
		}
	}

	user := shared.UserFromContext(ctx)
	updatedFields := shared.TransformFields(req, user)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.buildingRepo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err //nolint:wrapcheck
		}

		if renamed {
			return s.assignmentRepo.MoveBuildingTx(ctx, tx, current.Name, &req.Name, user) //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict("Building with this name already exists")
		}

		log.Error().Err(err).Msg("failed to update building")

		return res, fmt.Errorf("failed to update building: %w", err)
	}

	var old dto.BuildingResponse
	old.FromModel(current)

	updated := current
	if req.Name != "" {
		updated.Name = req.Name
	}

	if req.Address != "" {
		updated.Address = req.Address
	}

	if req.TotalFloors != 0 {
		updated.TotalFloors = req.TotalFloors
	}

	res.FromModel(updated)

	s.record(ctx, historyModel.ActionUpdateBuilding, model.TableBuilding, current.ID, old, res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) DeleteBuilding(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBuilding")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableBuilding)

	current, err := s.buildingRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get building")

		return fmt.Errorf("failed to get building: %w", err)
	}

	if current.ID == "" {
		return failure.NotFound("Building not found")
	}

	// floors, rooms, ratings and floor assignments go with it through ON DELETE CASCADE
	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.buildingRepo.DeleteTx(ctx, tx, filter); err != nil {
			return err //nolint:wrapcheck
		}

		return s.assignmentRepo.MoveBuildingTx(ctx, tx, current.Name, nil, shared.UserFromContext(ctx)) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete building")

		return fmt.Errorf("failed to delete building: %w", err)
	}

	var old dto.BuildingResponse
	old.FromModel(current)

	s.record(ctx, historyModel.ActionDeleteBuilding, model.TableBuilding, current.ID, old, nil)
	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) ListFloors(ctx context.Context, buildingID string) (res []dto.FloorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListFloors")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if buildingID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldBuildingID,
			Operator: gDto.FilterOperatorEq,
			Value:    buildingID,
			Table:    model.TableFloor,
		})
	}

	floors, err := s.floorRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.TableFloor + "." + model.FieldFloorNumber, SortDir: gDto.SortDirDesc},
		filter,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floors")

		return nil, fmt.Errorf("failed to get floors: %w", err)
	}

	res = make([]dto.FloorResponse, len(floors))
	for i, floor := range floors {
		res[i].FromModel(floor)
	}

	return res, nil
}

func (s *serviceImpl) floorNameTaken(ctx context.Context, buildingID, floorName, exceptID string) (bool, error) {
	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldBuildingID, Operator: gDto.FilterOperatorEq, Value: buildingID, Table: model.TableFloor},
		gDto.Filter{Field: model.FieldFloorName, Operator: gDto.FilterOperatorEq, Value: floorName, Table: model.TableFloor},
	}}

	if exceptID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "except_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableFloor,
		})
	}

	exist, err := s.floorRepo.Exist(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check floor name: %w", err)
	}

	return exist, nil
}

func (s *serviceImpl) CreateFloor(ctx context.Context, req dto.CreateFloorRequest) (res dto.FloorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.BuildingID == "" || req.FloorName == "" || req.FloorNumber == nil {
		return res, failure.BadRequestFromString("Missing required fields")
	}

	buildingFilter := shared.FilterByID(req.BuildingID, model.FieldID, model.TableBuilding)
	buildingFilter.Filters = append(buildingFilter.Filters, activeFilter(model.TableBuilding))

	building, err := s.buildingRepo.Get(ctx, buildingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get building")

		return res, fmt.Errorf("failed to get building: %w", err)
	}

	if building.ID == "" {
		return res, failure.NotFound("Building not found or not active")
	}

	taken, err := s.floorNameTaken(ctx, req.BuildingID, req.FloorName, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to check floor name")

		return res, err
	}

	if taken {
		return res, failure.Conflict("Floor with this name already exists in the building")
	}

	floor := req.ToModel(shared.UserFromContext(ctx))
	floor.BuildingName = building.Name

	if err = s.floorRepo.Insert(ctx, floor); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict("Floor with this name already exists in the building")
		}

		log.Error().Err(err).Msg("failed to create floor")

		return res, fmt.Errorf("failed to create floor: %w", err)
	}

	res.FromModel(floor)

	s.record(ctx, historyModel.ActionCreateFloor, model.TableFloor, floor.ID, nil, res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) UpdateFloor(ctx context.Context, req dto.UpdateFloorRequest) (res dto.FloorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("No fields to update")
	}

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableFloor)

	current, err := s.floorRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor")

		return res, fmt.Errorf("failed to get floor: %w", err)
	}

	if current.ID == "" {
		return res, failure.NotFound("Floor not found")
	}

	if req.FloorName != "" && req.FloorName != current.FloorName {
		taken, err := s.floorNameTaken(ctx, current.BuildingID, req.FloorName, current.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check floor name")

			return res, err
		}

		if taken {
			return res, failure.Conflict("Floor with this name already exists in the building")
		}
	}

	if err = s.floorRepo.Update(ctx, shared.TransformFields(req, shared.UserFromContext(ctx)), filter); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict("Floor with this name already exists in the building")
		}

		log.Error().Err(err).Msg("failed to update floor")

		return res, fmt.Errorf("failed to update floor: %w", err)
	}

	var old dto.FloorResponse
	old.FromModel(current)

	updated := current
	if req.FloorName != "" {
		updated.FloorName = req.FloorName
	}

	if req.FloorNumber != nil {
		updated.FloorNumber = *req.FloorNumber
	}

	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	res.FromModel(updated)

	s.record(ctx, historyModel.ActionUpdateFloor, model.TableFloor, current.ID, old, res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) DeleteFloor(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableFloor)

	current, err := s.floorRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor")

		return fmt.Errorf("failed to get floor: %w", err)
	}

	if current.ID == "" {
		return failure.NotFound("Floor not found")
	}

	if err = s.floorRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete floor")

		return fmt.Errorf("failed to delete floor: %w", err)
	}

	var old dto.FloorResponse
	old.FromModel(current)

	s.record(ctx, historyModel.ActionDeleteFloor, model.TableFloor, current.ID, old, nil)
	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) ListRooms(ctx context.Context, floorID string) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if floorID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldFloorID,
			Operator: gDto.FilterOperatorEq,
			Value:    floorID,
			Table:    model.TableRoom,
		})
	}

	rooms, err := s.roomRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.TableRoom + "." + model.FieldRoomName, SortDir: gDto.SortDirAsc},
		filter,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	res = make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res, nil
}

func (s *serviceImpl) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.FloorID == "" || req.RoomName == "" {
		return res, failure.BadRequestFromString("Missing required fields")
	}

	floor, err := s.floorRepo.Get(ctx, shared.FilterByID(req.FloorID, model.FieldID, model.TableFloor))
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor")

		return res, fmt.Errorf("failed to get floor: %w", err)
	}

	if floor.ID == "" {
		return res, failure.NotFound("Floor not found")
	}

	room := req.ToModel(shared.UserFromContext(ctx))
	room.FloorName = floor.FloorName
	room.BuildingID = floor.BuildingID
	room.BuildingName = floor.BuildingName

	if err = s.roomRepo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)

	s.record(ctx, historyModel.ActionCreateRoom, model.TableRoom, room.ID, nil, res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) UpdateRoom(ctx context.Context, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("No fields to update")
	}

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableRoom)

	current, err := s.roomRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == "" {
		return res, failure.NotFound("Room not found")
	}

	if err = s.roomRepo.Update(ctx, shared.TransformFields(req, shared.UserFromContext(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	var old dto.RoomResponse
	old.FromModel(current)

	updated := current
	if req.RoomName != "" {
		updated.RoomName = req.RoomName
	}

	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	res.FromModel(updated)

	s.record(ctx, historyModel.ActionUpdateRoom, model.TableRoom, current.ID, old, res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) DeleteRoom(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableRoom)

	current, err := s.roomRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == "" {
		return failure.NotFound("Room not found")
	}

	if err = s.roomRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	var old dto.RoomResponse
	old.FromModel(current)

	s.record(ctx, historyModel.ActionDeleteRoom, model.TableRoom, current.ID, old, nil)
	s.invalidate(ctx)

	return nil
}
