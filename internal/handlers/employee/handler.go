package employee

import (
	"net/http"

	"cleanrate/infras/otel"
	"cleanrate/internal/domains/employee/model/dto"
	"cleanrate/internal/domains/employee/service"
	"cleanrate/shared/constant"
	"cleanrate/shared/validator"
	"cleanrate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", handler.GetEmployees)
		r.Post("/", handler.CreateEmployee)
		r.Get("/{id}", handler.GetEmployee)
		r.Put("/{id}", handler.UpdateEmployee)
		r.Delete("/{id}", handler.DeleteEmployee)
	})
}

// GetEmployees lists active employees
// @Summary List employees
// @Description Active employees ordered by name with their assigned floors.
// @Tags Employee
// @Produce json
// @Param building query string false "Assigned building name"
// @Param floor query string false "Assigned floor name"
// @Param search query string false "Name or email contains"
// @Success 200 {object} response.Data[dto.ListEmployeesResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	req := dto.ListEmployeesRequest{}
	req.FromRequest(r)

	res, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateEmployee registers a new employee
// @Summary Create employee
// @Description Create an employee account and assign its floors in one transaction.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetEmployee returns one employee
// @Summary Get employee
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.GetEmployeeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployee")
	defer scope.End()

	employee, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.GetEmployeeResponse{
		Employee:    employee,
		CurrentUser: dto.CurrentUserFromContext(ctx),
	})
}

// UpdateEmployee replaces an employee's profile
// @Summary Update employee
// @Description Replace profile fields and assigned floors. Password changes only when given.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Employee"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	req := dto.UpdateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.ID = chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee updated " + res.ID)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteEmployee deactivates an employee
// @Summary Delete employee
// @Description Soft delete: the employee is deactivated and its floors released. Ratings are kept.
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	res, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee deleted " + res.ID)

	response.WithJSON(w, http.StatusOK, res)
}
