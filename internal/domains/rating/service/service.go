package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Rating=MockRatingService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cleanrate/config"
	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	employeeDto "cleanrate/internal/domains/employee/model/dto"
	employeeService "cleanrate/internal/domains/employee/service"
	historyModel "cleanrate/internal/domains/history/model"
	historyDto "cleanrate/internal/domains/history/model/dto"
	historyService "cleanrate/internal/domains/history/service"
	"cleanrate/internal/domains/rating/model"
	"cleanrate/internal/domains/rating/model/dto"
	"cleanrate/internal/domains/rating/repository"
	"cleanrate/shared"
	"cleanrate/shared/cache"
	"cleanrate/shared/constant"
	gDto "cleanrate/shared/dto"
	"cleanrate/shared/export"
	"cleanrate/shared/failure"
	"cleanrate/shared/timezone"
	"cleanrate/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgAllFieldsRequired   = "All fields are required"
	msgUpdateFieldsMissing = "Rating ID and rating value are required"
	msgClearFieldsMissing  = "Employee, room and date are required"
	msgInvalidRange        = "Rating must be between 1 and 10"
	msgInvalidDate         = "Invalid date format, expected YYYY-MM-DD"
	msgTargetNotFound      = "Employee or room not found"
	msgRatingNotFound      = "Rating not found"
)

type Rating interface {
	// Submit writes the single rating of (employee, room, today), updating it when it exists.
	Submit(ctx context.Context, req dto.SubmitRatingRequest) (dto.SubmitRatingResponse, error)
	UpdateByID(ctx context.Context, req dto.SubmitRatingRequest) (dto.SubmitRatingResponse, error)
	// Clear deletes the rating of (employee, room, date). A missing rating is not an error.
	Clear(ctx context.Context, req dto.ClearRatingRequest) (string, error)
	List(ctx context.Context, req dto.ListRatingsRequest) (dto.ListRatingsResponse, error)
	Export(ctx context.Context, req dto.ListRatingsRequest) ([]byte, error)
}

type serviceImpl struct {
	repo       repository.Rating
	employees  employeeService.Employee
	transactor postgres.Transactor
	history    historyService.History
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Rating,
	employees employeeService.Employee,
	transactor postgres.Transactor,
	history historyService.History,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Rating {
	return &serviceImpl{
		repo:       repo,
		employees:  employees,
		transactor: transactor,
		history:    history,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func lockKey(employeeID, roomID, day string) string {
	return strings.Join([]string{model.TableName, employeeID, roomID, day}, ":")
}

func dayFilter(employeeID, roomID, day string) gDto.FilterGroup {
	return gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldEmployeeID, Operator: gDto.FilterOperatorEq, Value: employeeID, Table: model.TableName},
		gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterOperatorEq, Value: roomID, Table: model.TableName},
		gDto.Filter{Field: model.FieldRatedOn, Operator: gDto.FilterOperatorEq, Value: day, Table: model.TableName},
	}}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func validateRating(rating int) error {
	if err := validator.ValidateVar(rating, "rating"); err != nil {
		return failure.BadRequestFromString(msgInvalidRange)
	}

	return nil
}

func updateFields(req dto.SubmitRatingRequest, user string) map[string]any {
	fields := shared.TransformFields(dto.UpdateRatingRequest{Rating: req.Rating, Notes: req.Notes}, user)
	fields[model.FieldNotes] = req.Notes

	return fields
}

func snapshot(m model.Rating) dto.RatingResponse {
	var res dto.RatingResponse
	res.FromModel(m)

	return res
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

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CachePrefixDashboard)
	}()
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRatingRequest) (res dto.SubmitRatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.RatingID != "" {
		return s.UpdateByID(ctx, req)
	}

	if req.EmployeeID == "" || req.RoomID == "" || req.Rating == 0 {
		return res, failure.BadRequestFromString(msgAllFieldsRequired)
	}

	if err = validateRating(req.Rating); err != nil {
		return res, err
	}

	user := shared.UserFromContext(ctx)
	now := timezone.Now()
	today := now.UTC().Format(constant.DayFormat)

	var existing, current model.Rating

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockTx(ctx, tx, lockKey(req.EmployeeID, req.RoomID, today)); err != nil {
			return err //nolint:wrapcheck
		}

		target, err := s.repo.TargetTx(ctx, tx, req.EmployeeID, req.RoomID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if target.EmployeeName == "" {
			return failure.NotFound(msgTargetNotFound)
		}

		existing, err = s.repo.GetTx(ctx, tx, dayFilter(req.EmployeeID, req.RoomID, today))
		if err != nil {
			return err //nolint:wrapcheck
		}

		id := existing.ID

		if id == "" {
			rating := req.ToModel(user, now)
			if err := s.repo.InsertTx(ctx, tx, rating); err != nil {
				return err //nolint:wrapcheck
			}

			id = rating.ID
		} else if err := s.repo.UpdateTx(ctx, tx, updateFields(req, user), byID(id)); err != nil {
			return err //nolint:wrapcheck
		}

		current, err = s.repo.GetTx(ctx, tx, byID(id))

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("employee_id", req.EmployeeID).Str("room_id", req.RoomID).Msg("failed to submit rating")

		return res, err //nolint:wrapcheck
	}

	res.Rating = snapshot(current)

	if existing.ID == "" {
		res.Created = true
		res.Message = dto.MsgRatingAdded
		s.record(ctx, historyModel.ActionAddRating, current.ID, nil, res.Rating)
	} else {
		res.Message = dto.MsgRatingUpdated
		s.record(ctx, historyModel.ActionUpdateRating, current.ID, snapshot(existing), res.Rating)
	}

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) UpdateByID(ctx context.Context, req dto.SubmitRatingRequest) (res dto.SubmitRatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.RatingID == "" || req.Rating == 0 {
		return res, failure.BadRequestFromString(msgUpdateFieldsMissing)
	}

	if err = validateRating(req.Rating); err != nil {
		return res, err
	}

	var existing, current model.Rating

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		existing, err = s.repo.GetTx(ctx, tx, byID(req.RatingID))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if existing.ID == "" {
			return failure.NotFound(msgRatingNotFound)
		}

		if err := s.repo.UpdateTx(ctx, tx, updateFields(req, shared.UserFromContext(ctx)), byID(req.RatingID)); err != nil {
			return err //nolint:wrapcheck
		}

		current, err = s.repo.GetTx(ctx, tx, byID(req.RatingID))

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("rating_id", req.RatingID).Msg("failed to update rating")

		return res, err //nolint:wrapcheck
	}

	res.Message = dto.MsgRatingUpdated
	res.Rating = snapshot(current)

	s.record(ctx, historyModel.ActionUpdateRating, current.ID, snapshot(existing), res.Rating)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Clear(ctx context.Context, req dto.ClearRatingRequest) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.EmployeeID == "" || req.RoomID == "" || req.Date == "" {
		return msg, failure.BadRequestFromString(msgClearFieldsMissing)
	}

	day, err := dto.ParseDay(req.Date)
	if err != nil {
		return msg, failure.BadRequestFromString(msgInvalidDate)
	}

	var existing model.Rating

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		existing, err = s.repo.GetTx(ctx, tx, dayFilter(req.EmployeeID, req.RoomID, day.Format(constant.DayFormat)))
		if err != nil || existing.ID == "" {
			return err //nolint:wrapcheck
		}

		return s.repo.DeleteTx(ctx, tx, byID(existing.ID)) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to clear rating")

		return msg, err //nolint:wrapcheck
	}

	if existing.ID == "" {
		return dto.MsgNoRating, nil
	}

	s.record(ctx, historyModel.ActionDeleteRating, existing.ID, snapshot(existing), nil)
	s.invalidate(ctx)

	return dto.MsgRatingCleared, nil
}

func parseRange(req dto.ListRatingsRequest) (from, to *time.Time, err error) {
	if req.From != "" {
		day, err := dto.ParseDay(req.From)
		if err != nil {
			return nil, nil, failure.BadRequestFromString(msgInvalidDate)
		}

		from = &day
	}

	if req.To != "" {
		day, err := dto.ParseDay(req.To)
		if err != nil {
			return nil, nil, failure.BadRequestFromString(msgInvalidDate)
		}

		to = &day
	}

	return from, to, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListRatingsRequest) (res dto.ListRatingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to, err := parseRange(req)
	if err != nil {
		return res, err
	}

	employees, err := s.employees.List(ctx, employeeDto.ListEmployeesRequest{Building: req.Building, Floor: req.Floor})
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees for ratings")

		return res, err //nolint:wrapcheck
	}

	selected := make([]employeeDto.EmployeeResponse, 0, len(employees.Employees))
	for _, emp := range employees.Employees {
		if req.EmployeeID == "" || emp.ID == req.EmployeeID {
			selected = append(selected, emp)
		}
	}

	res.Employees = make([]dto.EmployeeRatings, len(selected))
	res.TotalEmployees = len(selected)

	if len(selected) == 0 {
		return res, nil
	}

	ids := make([]string, len(selected))
	for i, emp := range selected {
		ids[i] = emp.ID
	}

	ratings, err := s.repo.List(ctx, model.ListFilter{EmployeeIDs: ids, From: from, To: to})
	if err != nil {
		log.Error().Err(err).Msg("failed to list ratings")

		return res, err //nolint:wrapcheck
	}

	grouped := make(map[string][]model.Rating, len(selected))
	for _, r := range ratings {
		grouped[r.EmployeeID] = append(grouped[r.EmployeeID], r)
	}

	for i, emp := range selected {
		res.Employees[i].FromEmployee(emp)
		res.Employees[i].SetRatings(grouped[emp.ID])
	}

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, req dto.ListRatingsRequest) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	list, err := s.List(ctx, req)
	if err != nil {
		return nil, err
	}

	var rows, summary [][]any

	for _, emp := range list.Employees {
		summary = append(summary, []any{emp.Name, emp.Email, emp.TotalRooms, emp.AverageRating})

		for _, r := range emp.Ratings {
			ratedBy := constant.Empty
			if r.RatedByName != nil {
				ratedBy = *r.RatedByName
			}

			rows = append(rows, []any{
				emp.Name,
				emp.Email,
				r.BuildingName,
				r.FloorName,
				r.RoomName,
				r.Rating,
				r.Notes,
				ratedBy,
				timezone.Format(r.RatedAt, constant.ExportTimeFmt),
			})
		}
	}

	res, err = export.Workbook(
		export.Sheet{
			Name: "Ratings",
			Columns: []export.Column{
				{Header: "Employee", Width: 24},
				{Header: "Email", Width: 28},
				{Header: "Building", Width: 20},
				{Header: "Floor", Width: 12},
				{Header: "Room", Width: 16},
				{Header: "Rating", Width: 8},
				{Header: "Notes", Width: 40},
				{Header: "Rated By", Width: 24},
				{Header: "Rated At", Width: 20},
			},
			Rows: rows,
		},
		export.Sheet{
			Name: "Summary",
			Columns: []export.Column{
				{Header: "Employee", Width: 24},
				{Header: "Email", Width: 28},
				{Header: "Total Rooms", Width: 12},
				{Header: "Average Rating", Width: 14},
			},
			Rows: summary,
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to export ratings")

		return nil, fmt.Errorf("failed to export ratings: %w", err)
	}

	return res, nil
}
