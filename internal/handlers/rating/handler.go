package rating

import (
	"fmt"
	"net/http"

	"cleanrate/infras/otel"
	"cleanrate/internal/domains/rating/model/dto"
	"cleanrate/internal/domains/rating/service"
	"cleanrate/shared/constant"
	"cleanrate/shared/timezone"
	"cleanrate/shared/validator"
	"cleanrate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rating
	otel    otel.Otel
}

func New(service service.Rating, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/ratings", func(r chi.Router) {
		r.Get("/", handler.GetRatings)
		r.Post("/", handler.SubmitRating)
		r.Put("/", handler.UpdateRating)
		r.Delete("/", handler.ClearRating)
		r.Get("/export", handler.ExportRatings)
	})
}

// GetRatings lists employees with their room ratings
// @Summary List ratings
// @Tags Rating
// @Produce json
// @Param employee_id query string false "Employee ID"
// @Param building query string false "Building name"
// @Param floor query string false "Floor name"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.ListRatingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ratings [get]
// @Security BearerAuth
func (handler *Handler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRatings")
	defer scope.End()

	req := dto.ListRatingsRequest{}
	req.FromRequest(r)

	res, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list ratings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitRating rates a room cleaned by an employee for today
// @Summary Submit rating
// @Description Creates today's rating for the employee and room, or updates it when one exists.
// @Tags Rating
// @Accept json
// @Produce json
// @Param request body dto.SubmitRatingRequest true "Rating"
// @Success 201 {object} response.Data[dto.SubmitRatingResponse] "Rating added"
// @Success 200 {object} response.Data[dto.SubmitRatingResponse] "Rating updated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ratings [post]
// @Security BearerAuth
func (handler *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitRating")
	defer scope.End()

	req := dto.SubmitRatingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit rating")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(res.Message)

	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}

	response.WithJSON(w, code, res)
}

// UpdateRating changes a rating by id
// @Summary Update rating
// @Tags Rating
// @Accept json
// @Produce json
// @Param request body dto.SubmitRatingRequest true "Rating with rating_id"
// @Success 200 {object} response.Data[dto.SubmitRatingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/ratings [put]
// @Security BearerAuth
func (handler *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRating")
	defer scope.End()

	req := dto.SubmitRatingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateByID(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rating")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(res.Message)

	response.WithJSON(w, http.StatusOK, res)
}

// ClearRating removes a day's rating
// @Summary Clear rating
// @Tags Rating
// @Accept json
// @Produce json
// @Param request body dto.ClearRatingRequest true "Employee, room and day"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/ratings [delete]
// @Security BearerAuth
func (handler *Handler) ClearRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearRating")
	defer scope.End()

	req := dto.ClearRatingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	msg, err := handler.service.Clear(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear rating")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msg)
}

// ExportRatings downloads the filtered ratings as a spreadsheet
// @Summary Export ratings
// @Tags Rating
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param employee_id query string false "Employee ID"
// @Param building query string false "Building name"
// @Param floor query string false "Floor name"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Router /v1/ratings/export [get]
// @Security BearerAuth
func (handler *Handler) ExportRatings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportRatings")
	defer scope.End()

	req := dto.ListRatingsRequest{}
	req.FromRequest(r)

	data, err := handler.service.Export(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export ratings")

		response.WithError(w, err)

		return
	}

	fileName := fmt.Sprintf("ratings-%s.xlsx", timezone.Today())

	response.WithFile(w, constant.ContentTypeXLSX, fileName, data)
}
