package history

import (
	"fmt"
	"net/http"

	"cleanrate/infras/otel"
	"cleanrate/internal/domains/history/model/dto"
	"cleanrate/internal/domains/history/service"
	"cleanrate/shared/constant"
	"cleanrate/shared/timezone"
	"cleanrate/shared/validator"
	"cleanrate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.History
	otel    otel.Otel
}

func New(service service.History, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/", handler.GetHistory)
		r.Post("/", handler.CreateHistory)
		r.Get("/export", handler.ExportHistory)
	})
}

// GetHistory lists audit entries, newest first
// @Summary List history
// @Tags History
// @Produce json
// @Param from query string false "Exclusive lower bound, RFC3339"
// @Param to query string false "Exclusive upper bound, RFC3339"
// @Param action query string false "Action"
// @Param user_id query string false "Actor ID"
// @Param table_name query string false "Table name"
// @Param limit query integer false "Max entries (default 100)"
// @Success 200 {object} response.Data[dto.ListHistoryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	req := dto.ListHistoryRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse history query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateHistory appends a manual audit entry
// @Summary Create history entry
// @Tags History
// @Accept json
// @Produce json
// @Param request body dto.CreateHistoryRequest true "Entry"
// @Success 201 {object} response.Data[dto.HistoryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history [post]
// @Security BearerAuth
func (handler *Handler) CreateHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHistory")
	defer scope.End()

	req := dto.CreateHistoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create history entry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("History entry created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// ExportHistory downloads the filtered entries as a spreadsheet
// @Summary Export history
// @Tags History
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Exclusive lower bound, RFC3339"
// @Param to query string false "Exclusive upper bound, RFC3339"
// @Param action query string false "Action"
// @Param user_id query string false "Actor ID"
// @Param table_name query string false "Table name"
// @Param limit query integer false "Max entries (default 100)"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Router /v1/history/export [get]
// @Security BearerAuth
func (handler *Handler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportHistory")
	defer scope.End()

	req := dto.ListHistoryRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse history query")

		response.WithError(w, err)

		return
	}

	data, err := handler.service.Export(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export history")

		response.WithError(w, err)

		return
	}

	fileName := fmt.Sprintf("history-%s.xlsx", timezone.Today())

	response.WithFile(w, constant.ContentTypeXLSX, fileName, data)
}
