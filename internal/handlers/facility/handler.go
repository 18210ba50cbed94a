package facility

import (
	"net/http"

	"cleanrate/infras/otel"
	"cleanrate/internal/domains/facility/model/dto"
	"cleanrate/internal/domains/facility/service"
	"cleanrate/shared/constant"
	"cleanrate/shared/validator"
	"cleanrate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgBuildingDeleted = "Building deleted successfully"
	msgFloorDeleted    = "Floor deleted successfully"
	msgRoomDeleted     = "Room deleted successfully"
)

type Handler struct {
	service    service.Facility
	assignment service.Assignment
	otel       otel.Otel
}

func New(service service.Facility, assignment service.Assignment, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		assignment: assignment,
		otel:       otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/facilities", func(r chi.Router) {
		r.Get("/", handler.GetFacilities)
		r.Post("/", handler.CreateBuilding)
		r.Put("/", handler.UpdateBuilding)
		r.Delete("/", handler.DeleteBuilding)

		r.Route("/floors", func(r chi.Router) {
			r.Get("/", handler.GetFloors)
			r.Post("/", handler.CreateFloor)
			r.Put("/", handler.UpdateFloor)
			r.Delete("/", handler.DeleteFloor)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", handler.GetRooms)
			r.Post("/", handler.CreateRoom)
			r.Put("/", handler.UpdateRoom)
			r.Delete("/", handler.DeleteRoom)
		})

		r.Route("/floor-assignments", func(r chi.Router) {
			r.Get("/", handler.GetFloorAssignments)
			r.Post("/", handler.AssignFloor)
			r.Put("/", handler.ReplaceFloors)
			r.Delete("/", handler.ReleaseFloor)
		})
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetFacilities returns the building tree
// @Summary List facilities
// @Description Active buildings with their floors and rooms, plus totals.
// @Tags Facility
// @Produce json
// @Success 200 {object} response.Data[dto.FacilitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/facilities [get]
// @Security BearerAuth
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to list facilities")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBuilding adds a building
// @Summary Create building
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateBuildingRequest true "Building"
// @Success 201 {object} response.Data[dto.BuildingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/facilities [post]
// @Security BearerAuth
func (handler *Handler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBuilding")
	defer scope.End()

	req := dto.CreateBuildingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.CreateBuilding(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create building")

		return
	}

	scope.AddEvent("Building created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateBuilding changes the provided building fields
// @Summary Update building
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.UpdateBuildingRequest true "Building"
// @Success 200 {object} response.Data[dto.BuildingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities [put]
// @Security BearerAuth
func (handler *Handler) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBuilding")
	defer scope.End()

	req := dto.UpdateBuildingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateBuilding(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update building")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBuilding removes a building and everything below it
// @Summary Delete building
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.DeleteBuildingRequest true "Building"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBuilding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBuilding")
	defer scope.End()

	req := dto.DeleteBuildingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.DeleteBuilding(ctx, req.BuildingID); err != nil {
		handler.fail(w, scope, err, "failed to delete building")

		return
	}

	scope.AddEvent("Building deleted " + req.BuildingID)

	response.WithMessage(w, http.StatusOK, msgBuildingDeleted)
}

// GetFloors lists a building's floors
// @Summary List floors
// @Tags Facility
// @Produce json
// @Param building_id query string true "Building ID"
// @Success 200 {object} response.Data[[]dto.FloorResponse]
// @Failure 400 {object} response.Error
// @Router /v1/facilities/floors [get]
// @Security BearerAuth
func (handler *Handler) GetFloors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloors")
	defer scope.End()

	res, err := handler.service.ListFloors(ctx, r.URL.Query().Get("building_id"))
	if err != nil {
		handler.fail(w, scope, err, "failed to list floors")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateFloor adds a floor to a building
// @Summary Create floor
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateFloorRequest true "Floor"
// @Success 201 {object} response.Data[dto.FloorResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/facilities/floors [post]
// @Security BearerAuth
func (handler *Handler) CreateFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFloor")
	defer scope.End()

	req := dto.CreateFloorRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.CreateFloor(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create floor")

		return
	}

	scope.AddEvent("Floor created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateFloor changes the provided floor fields
// @Summary Update floor
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.UpdateFloorRequest true "Floor"
// @Success 200 {object} response.Data[dto.FloorResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities/floors [put]
// @Security BearerAuth
func (handler *Handler) UpdateFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFloor")
	defer scope.End()

	req := dto.UpdateFloorRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateFloor(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update floor")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteFloor removes a floor with its rooms and assignments
// @Summary Delete floor
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Floor"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities/floors [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFloor")
	defer scope.End()

	req := dto.DeleteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.DeleteFloor(ctx, req.ID); err != nil {
		handler.fail(w, scope, err, "failed to delete floor")

		return
	}

	scope.AddEvent("Floor deleted " + req.ID)

	response.WithMessage(w, http.StatusOK, msgFloorDeleted)
}

// GetRooms lists a floor's rooms
// @Summary List rooms
// @Tags Facility
// @Produce json
// @Param floor_id query string true "Floor ID"
// @Success 200 {object} response.Data[[]dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Router /v1/facilities/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.ListRooms(ctx, r.URL.Query().Get("floor_id"))
	if err != nil {
		handler.fail(w, scope, err, "failed to list rooms")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRoom adds a room to a floor
// @Summary Create room
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.CreateRoom(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create room")

		return
	}

	scope.AddEvent("Room created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateRoom changes the provided room fields
// @Summary Update room
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoomRequest true "Room"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities/rooms [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateRoom(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update room")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteRoom removes a room and its ratings
// @Summary Delete room
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Room"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/facilities/rooms [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	req := dto.DeleteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.DeleteRoom(ctx, req.ID); err != nil {
		handler.fail(w, scope, err, "failed to delete room")

		return
	}

	scope.AddEvent("Room deleted " + req.ID)

	response.WithMessage(w, http.StatusOK, msgRoomDeleted)
}

// GetFloorAssignments reports floor ownership
// @Summary Floor assignments
// @Description With building and floor, reports whether that floor is held by someone else.
// @Description Without them, lists every active floor with its holder.
// @Tags Facility
// @Produce json
// @Param building query string false "Building name"
// @Param floor query string false "Floor name"
// @Param exclude_employee_id query string false "Ignore this employee's assignments"
// @Success 200 {object} response.Data[dto.FloorAssignmentsResponse]
// @Success 200 {object} response.Data[dto.FloorAssignmentStatusResponse]
// @Failure 500 {object} response.Error
// @Router /v1/facilities/floor-assignments [get]
// @Security BearerAuth
func (handler *Handler) GetFloorAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloorAssignments")
	defer scope.End()

	query := r.URL.Query()
	building := query.Get("building")
	floor := query.Get("floor")
	exclude := query.Get("exclude_employee_id")

	if building != "" && floor != "" {
		res, err := handler.assignment.Status(ctx, building, floor, exclude)
		if err != nil {
			handler.fail(w, scope, err, "failed to get floor assignment status")

			return
		}

		response.WithJSON(w, http.StatusOK, res)

		return
	}

	res, err := handler.assignment.List(ctx, exclude)
	if err != nil {
		handler.fail(w, scope, err, "failed to list floor assignments")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AssignFloor gives a floor to an employee
// @Summary Assign floor
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.AssignFloorRequest true "Assignment"
// @Success 201 {object} response.Data[dto.EmployeeFloorsResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/facilities/floor-assignments [post]
// @Security BearerAuth
func (handler *Handler) AssignFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignFloor")
	defer scope.End()

	req := dto.AssignFloorRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.assignment.Assign(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to assign floor")

		return
	}

	scope.AddEvent("Floor " + req.FloorID + " assigned to " + req.EmployeeID)

	response.WithJSON(w, http.StatusCreated, res)
}

// ReplaceFloors sets an employee's full assignment
// @Summary Replace assigned floors
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.ReplaceFloorsRequest true "Assignment"
// @Success 200 {object} response.Data[dto.EmployeeFloorsResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/facilities/floor-assignments [put]
// @Security BearerAuth
func (handler *Handler) ReplaceFloors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceFloors")
	defer scope.End()

	req := dto.ReplaceFloorsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.assignment.Replace(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to replace floors")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReleaseFloor takes a floor away from an employee
// @Summary Release floor
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.ReleaseFloorRequest true "Assignment"
// @Success 200 {object} response.Data[dto.EmployeeFloorsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/facilities/floor-assignments [delete]
// @Security BearerAuth
func (handler *Handler) ReleaseFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseFloor")
	defer scope.End()

	req := dto.ReleaseFloorRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.assignment.Release(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to release floor")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
