package upload

import (
	"errors"
	"net/http"

	"cleanrate/infras/otel"
	"cleanrate/internal/domains/upload/model/dto"
	"cleanrate/internal/domains/upload/service"
	"cleanrate/shared/constant"
	"cleanrate/shared/failure"
	"cleanrate/shared/validator"
	"cleanrate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Upload
	otel    otel.Otel
}

func New(service service.Upload, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/upload", func(r chi.Router) {
		r.Post("/", handler.UploadFile)
		r.Delete("/", handler.DeleteFile)
	})
}

// UploadFile stores a profile picture
// @Summary Upload image
// @Description Stores a jpeg, png or webp image. With employee_id the employee's profile picture is replaced.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param employee_id formData string false "Employee ID"
// @Success 200 {object} response.Data[dto.UploadResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFile")
	defer scope.End()

	r.Body = http.MaxBytesReader(w, r.Body, constant.RequestMaxBody)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UploadRequest{
		EmployeeID: r.FormValue("employee_id"),
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read form file")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	if file != nil {
		file.Close()

		req.File = header
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("File uploaded " + res.FileName)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteFile removes an uploaded file
// @Summary Delete upload
// @Tags Upload
// @Produce json
// @Param file_name query string true "Stored file name"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/upload [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFile")
	defer scope.End()

	req := dto.DeleteUploadRequest{
		FileName: r.URL.Query().Get("file_name"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete file")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, dto.MsgFileDeleted)
}
