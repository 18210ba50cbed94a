package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Employee=MockEmployeeService

import (
	"context"
	"fmt"

	"cleanrate/config"
	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/employee/model"
	"cleanrate/internal/domains/employee/model/dto"
	"cleanrate/internal/domains/employee/repository"
	facilityService "cleanrate/internal/domains/facility/service"
	historyModel "cleanrate/internal/domains/history/model"
	historyDto "cleanrate/internal/domains/history/model/dto"
	historyService "cleanrate/internal/domains/history/service"
	"cleanrate/shared"
	"cleanrate/shared/cache"
	"cleanrate/shared/constant"
	gDto "cleanrate/shared/dto"
	"cleanrate/shared/failure"
	"cleanrate/shared/password"
	"cleanrate/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetEmployee  = constant.CachePrefixEmployee + "get"
	cacheListEmployee = constant.CachePrefixEmployee + "list"

	msgAllFieldsRequired = "All fields are required"
	msgInvalidEmail      = "Invalid email format"
	msgInvalidGender     = "Invalid gender value"
	msgEmailTaken        = "Employee with this email already exists"
	msgNotFound          = "Employee not found"
)

type Employee interface {
	List(ctx context.Context, req dto.ListEmployeesRequest) (dto.ListEmployeesResponse, error)
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) (dto.EmployeeResponse, error)
	SetProfilePicture(ctx context.Context, id, url string) error
}

type serviceImpl struct {
	repo       repository.User
	assignment facilityService.Assignment
	transactor postgres.Transactor
	history    historyService.History
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.User,
	assignment facilityService.Assignment,
	transactor postgres.Transactor,
	history historyService.History,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Employee {
	return &serviceImpl{
		repo:       repo,
		assignment: assignment,
		transactor: transactor,
		history:    history,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func activeEmployees() []any {
	return []any{
		gDto.Filter{Field: model.FieldUserType, Operator: gDto.FilterOperatorEq, Value: constant.UserTypeEmployee, Table: model.TableName},
		gDto.Filter{Field: model.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
	}
}

func activeEmployeeByID(id string) gDto.FilterGroup {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, activeEmployees()...)

	return filter
}

func validateProfile(email, gender string) error {
	if err := validator.ValidateVar(email, "email"); err != nil {
		return failure.BadRequestFromString(msgInvalidEmail)
	}

	if err := validator.ValidateVar(gender, "oneof=male female other"); err != nil {
		return failure.BadRequestFromString(msgInvalidGender)
	}

	return nil
}

// emailTaken checks active users of any type, excluding exceptID when given.
func (s *serviceImpl) emailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: email, Table: model.TableName},
		gDto.Filter{Field: model.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
	}}

	if exceptID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "except_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableName,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}

	return exist, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixEmployee)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()
}

func (s *serviceImpl) record(ctx context.Context, action, id string, oldValues, newValues any) {
	s.history.Record(ctx, historyDto.Entry{
		Action:    action,
		TableName: model.TableName,
		RecordID:  id,
		OldValues: oldValues,
		NewValues: newValues,
	})
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListEmployeesRequest) (res dto.ListEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheListEmployee, req)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employees")

		return res, nil
	}

	filter := gDto.FilterGroup{Filters: activeEmployees()}

	if req.Building != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAssignedBuilding,
			Operator: gDto.FilterOperatorEq,
			Value:    req.Building,
			Table:    model.TableName,
		})
	}

	if req.Floor != "" {
		ids, err := s.assignment.EmployeesOnFloor(ctx, req.Building, req.Floor)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorIn,
			Value:    ids,
			Table:    model.TableName,
		})
	}

	if req.Search != "" {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_name", Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: req.Search, Table: model.TableName},
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: req.Search, Table: model.TableName},
			},
		})
	}

	users, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldName, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	ids := make([]string, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}

	floors, err := s.assignment.AssignedFloors(ctx, ids...)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModels(users, floors)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employees to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Missing() {
		return res, failure.BadRequestFromString(msgAllFieldsRequired)
	}

	req.Email = dto.NormalizeEmail(req.Email)

	if err = validateProfile(req.Email, req.Gender); err != nil {
		return res, err
	}

	taken, err := s.emailTaken(ctx, req.Email, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee email")

		return res, err
	}

	if taken {
		return res, failure.Conflict(msgEmailTaken)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(shared.UserFromContext(ctx), hashedPassword)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, user); err != nil {
			if postgres.IsUniqueViolation(err) {
				return failure.Conflict(msgEmailTaken)
			}

			return err //nolint:wrapcheck
		}

		return s.assignment.AssignFloorsTx(ctx, tx, user.ID, req.AssignedBuilding, req.AssignedFloors) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(user, req.AssignedFloors)

	s.record(ctx, historyModel.ActionCreateEmployee, user.ID, nil, res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (res dto.EmployeeResponse, user model.User, err error) {
	user, err = s.repo.Get(ctx, activeEmployeeByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, user, fmt.Errorf("failed to get employee: %w", err)
	}

	if user.ID == "" {
		return res, user, failure.NotFound(msgNotFound)
	}

	floors, err := s.assignment.AssignedFloors(ctx, user.ID)
	if err != nil {
		return res, user, err //nolint:wrapcheck
	}

	res.FromModel(user, floors[user.ID])

	return res, user, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetEmployee, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employee")

		return res, nil
	}

	res, _, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Missing() {
		return res, failure.BadRequestFromString(msgAllFieldsRequired)
	}

	req.Normalize()

	if err = validateProfile(req.Email, req.Gender); err != nil {
		return res, err
	}

	old, current, err := s.load(ctx, req.ID)
	if err != nil {
		return res, err
	}

	taken, err := s.emailTaken(ctx, req.Email, req.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee email")

		return res, err
	}

	if taken {
		return res, failure.Conflict(msgEmailTaken)
	}

	user := shared.UserFromContext(ctx)
	updatedFields := shared.TransformFields(req, user)

	if req.Password != "" {
		hashedPassword, err := password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return res, fmt.Errorf("failed to hash password: %w", err)
		}

		updatedFields[model.FieldPassword] = hashedPassword
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, activeEmployeeByID(req.ID)); err != nil {
			if postgres.IsUniqueViolation(err) {
				return failure.Conflict(msgEmailTaken)
			}

			return err //nolint:wrapcheck
		}

		return s.assignment.AssignFloorsTx(ctx, tx, req.ID, req.AssignedBuilding, req.AssignedFloors) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update employee")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(req.Apply(current), req.AssignedFloors)

	s.record(ctx, historyModel.ActionUpdateEmployee, req.ID, old, res)
	s.invalidate(ctx)

	return res, nil
}

// Delete deactivates the employee and releases their floors. Ratings are kept.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, _, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	inactive := false
	updatedFields := shared.TransformFields(dto.DeactivateRequest{IsActive: &inactive}, shared.UserFromContext(ctx))

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		return s.assignment.ReleaseEmployeeTx(ctx, tx, id) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return res, err //nolint:wrapcheck
	}

	s.record(ctx, historyModel.ActionDeleteEmployee, id, res, nil)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) SetProfilePicture(ctx context.Context, id, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetProfilePicture")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := activeEmployeeByID(id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee")

		return fmt.Errorf("failed to check employee: %w", err)
	}

	if !exist {
		return failure.NotFound(msgNotFound)
	}

	updatedFields := shared.TransformFields(dto.ProfilePictureRequest{ProfilePicture: url}, shared.UserFromContext(ctx))

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile picture")

		return fmt.Errorf("failed to update profile picture: %w", err)
	}

	s.invalidate(ctx)

	return nil
}
