package dashboard

import (
	"net/http"

	"cleanrate/infras/otel"
	"cleanrate/internal/domains/dashboard/model/dto"
	"cleanrate/internal/domains/dashboard/service"
	"cleanrate/shared/constant"
	"cleanrate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/dashboard", handler.GetDashboard)
}

// GetDashboard returns the cleaning overview
// @Summary Dashboard overview
// @Description Top performers, today's pending and completed room tasks and summary counters.
// @Tags Dashboard
// @Produce json
// @Param period query string false "week or month" Enums(week, month)
// @Param limit query integer false "Number of top performers (default 10)"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	req := dto.DashboardRequest{}
	req.FromRequest(r)

	res, err := handler.service.Get(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
