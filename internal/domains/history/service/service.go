package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=History=MockHistoryService

import (
	"context"
	"fmt"

	"cleanrate/config"
	"cleanrate/infras/kafka"
	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/history/model"
	"cleanrate/internal/domains/history/model/dto"
	"cleanrate/internal/domains/history/repository"
	"cleanrate/shared"
	"cleanrate/shared/constant"
	gDto "cleanrate/shared/dto"
	"cleanrate/shared/export"
	"cleanrate/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type History interface {
	// Record appends an audit entry after the business write committed. It never fails the caller.
	Record(ctx context.Context, entry dto.Entry)
	// Store inserts an entry directly. Used by the audit worker.
	Store(ctx context.Context, entry dto.Entry) error
	Create(ctx context.Context, req dto.CreateHistoryRequest) (dto.HistoryResponse, error)
	GetAll(ctx context.Context, req dto.ListHistoryRequest) (dto.ListHistoryResponse, error)
	Export(ctx context.Context, req dto.ListHistoryRequest) ([]byte, error)
}

type serviceImpl struct {
	repo  repository.History
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.History, kafka kafka.Client, cfg *config.Config, otel otel.Otel) History {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

// withRequestContext fills the actor and client fields the caller left empty.
func withRequestContext(ctx context.Context, entry dto.Entry) dto.Entry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = timezone.Now()
	}

	if entry.UserID == "" {
		entry.UserID = shared.UserFromContext(ctx)
	}

	if entry.IPAddress == "" {
		entry.IPAddress, _ = ctx.Value(constant.ContextKeyClientIP).(string)
	}

	if entry.UserAgent == "" {
		entry.UserAgent, _ = ctx.Value(constant.ContextKeyUserAgent).(string)
	}

	return entry
}

func (s *serviceImpl) Record(ctx context.Context, entry dto.Entry) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()

	entry = withRequestContext(ctx, entry)
	scope.SetAttribute("action", entry.Action)

	if s.cfg.History.Sink == model.SinkKafka {
		err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.History, kafka.Message{Key: entry.RecordID, Value: entry})
		if err == nil {
			return
		}

		scope.TraceError(err)
		log.Warn().Err(err).Str("action", entry.Action).Msg("failed to publish history entry, writing directly")
	}

	if err := s.Store(ctx, entry); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).
			Str("action", entry.Action).
			Str("table_name", entry.TableName).
			Str("record_id", entry.RecordID).
			Msg("failed to record history entry")
	}
}

func (s *serviceImpl) Store(ctx context.Context, entry dto.Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	history, err := entry.ToModel()
	if err != nil {
		return fmt.Errorf("failed to build history entry: %w", err)
	}

	if err = s.repo.Insert(ctx, history); err != nil {
		// redelivered message whose first insert already landed
		if postgres.IsUniqueViolation(err) {
			log.Debug().Str("id", history.ID).Msg("history entry already stored")

			return nil
		}

		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHistoryRequest) (res dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entry := withRequestContext(ctx, req.ToEntry())

	history, err := entry.ToModel()
	if err != nil {
		return res, fmt.Errorf("failed to build history entry: %w", err)
	}

	if err = s.repo.Insert(ctx, history); err != nil {
		log.Error().Err(err).Msg("failed to create history entry")

		return res, fmt.Errorf("failed to create history entry: %w", err)
	}

	res.FromModel(history)

	return res, nil
}

func filterFromRequest(req dto.ListHistoryRequest) gDto.FilterGroup {
	filters := []any{}

	if req.From != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "created_from",
			Field:    model.FieldCreatedAt,
			Operator: gDto.FilterOperatorGreater,
			Value:    *req.From,
			Table:    model.TableName,
		})
	}

	if req.To != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "created_to",
			Field:    model.FieldCreatedAt,
			Operator: gDto.FilterOperatorLess,
			Value:    *req.To,
			Table:    model.TableName,
		})
	}

	if req.Action != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldAction,
			Operator: gDto.FilterOperatorEq,
			Value:    req.Action,
			Table:    model.TableName,
		})
	}

	if req.UserID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    req.UserID,
			Table:    model.TableName,
		})
	}

	if req.TableName != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldTableName,
			Operator: gDto.FilterOperatorEq,
			Value:    req.TableName,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func (s *serviceImpl) list(ctx context.Context, req dto.ListHistoryRequest) ([]model.History, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = dto.DefaultLimit
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filterFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return models, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListHistoryRequest) (res dto.ListHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.list(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to get history")

		return res, err
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, req dto.ListHistoryRequest) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.list(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to get history for export")

		return nil, err
	}

	rows := make([][]any, len(models))

	for i, m := range models {
		var item dto.HistoryResponse
		item.FromModel(m)

		actorName, actorEmail := constant.Empty, constant.Empty
		if item.User != nil {
			actorName, actorEmail = item.User.Name, item.User.Email
		}

		rows[i] = []any{
			timezone.Format(m.CreatedAt, constant.ExportTimeFmt),
			item.Action,
			item.TableName,
			item.RecordID,
			actorName,
			actorEmail,
			item.IPAddress,
			item.UserAgent,
			string(item.OldValues),
			string(item.NewValues),
		}
	}

	res, err = export.Workbook(export.Sheet{
		Name: "History",
		Columns: []export.Column{
			{Header: "Time", Width: 20},
			{Header: "Action", Width: 18},
			{Header: "Table", Width: 14},
			{Header: "Record", Width: 38},
			{Header: "User", Width: 20},
			{Header: "Email", Width: 28},
			{Header: "IP Address", Width: 16},
			{Header: "User Agent", Width: 30},
			{Header: "Old Values", Width: 50},
			{Header: "New Values", Width: 50},
		},
		Rows: rows,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export history: %w", err)
	}

	return res, nil
}
