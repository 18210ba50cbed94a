package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Upload=MockUploadService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"cleanrate/config"
	"cleanrate/infras/otel"
	employeeService "cleanrate/internal/domains/employee/service"
	"cleanrate/internal/domains/upload/model/dto"
	"cleanrate/shared/constant"
	"cleanrate/shared/failure"
	"cleanrate/shared/storage"
	"cleanrate/shared/timezone"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

const (
	msgNoFile        = "No file uploaded"
	msgInvalidType   = "Invalid file type. Only JPEG, PNG, and WebP images are allowed"
	msgTooLarge      = "File size too large. Maximum size is %dMB"
	msgInvalidName   = "Invalid file name"
	defaultMaxSizeMB = 5
)

var allowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

type Upload interface {
	// Upload stores an image. With an employee id the employee's profile picture is replaced.
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, req dto.DeleteUploadRequest) error
}

type serviceImpl struct {
	storage   storage.Storage
	employees employeeService.Employee
	cfg       *config.Config
	otel      otel.Otel
}

func New(storage storage.Storage, employees employeeService.Employee, cfg *config.Config, otel otel.Otel) Upload {
	return &serviceImpl{
		storage:   storage,
		employees: employees,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) maxSizeMB() int {
	if s.cfg.Storage.MaxSizeMB <= 0 {
		return defaultMaxSizeMB
	}

	return s.cfg.Storage.MaxSizeMB
}

func (s *serviceImpl) read(req dto.UploadRequest) ([]byte, error) {
	limit := int64(s.maxSizeMB()) * constant.BytesInMegabyte

	if req.File.Size > limit {
		return nil, failure.BadRequestFromString(fmt.Sprintf(msgTooLarge, s.maxSizeMB()))
	}

	file, err := req.File.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, failure.BadRequestFromString(fmt.Sprintf(msgTooLarge, s.maxSizeMB()))
	}

	return data, nil
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.File == nil {
		return res, failure.BadRequestFromString(msgNoFile)
	}

	data, err := s.read(req)
	if err != nil {
		return res, err
	}

	// the declared Content-Type is ignored, only the sniffed bytes count
	mtype := mimetype.Detect(data)
	if !slices.Contains(allowedTypes, mtype.String()) {
		return res, failure.BadRequestFromString(msgInvalidType)
	}

	fileName := req.FileName(timezone.Now(), mtype.Extension())

	url, err := s.storage.Save(ctx, fileName, mtype.String(), data)
	if err != nil {
		log.Error().Err(err).Str("file_name", fileName).Msg("failed to save upload")

		return res, fmt.Errorf("failed to save upload: %w", err)
	}

	if req.EmployeeID != "" {
		if err = s.employees.SetProfilePicture(ctx, req.EmployeeID, url); err != nil {
			log.Error().Err(err).Str("employee_id", req.EmployeeID).Msg("failed to set profile picture")

			go func() {
				if err := s.storage.Delete(context.WithoutCancel(ctx), fileName); err != nil {
					log.Error().Err(err).Str("file_name", fileName).Msg("failed to remove orphan upload")
				}
			}()

			return res, err //nolint:wrapcheck
		}
	}

	res = dto.UploadResponse{
		Message:  dto.MsgFileUploaded,
		FileURL:  url,
		FileName: fileName,
		FileSize: int64(len(data)),
		FileType: mtype.String(),
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteUploadRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.storage.Delete(ctx, req.FileName); err != nil {
		if errors.Is(err, storage.ErrInvalidFileName) {
			return failure.BadRequestFromString(msgInvalidName)
		}

		log.Error().Err(err).Str("file_name", req.FileName).Msg("failed to delete upload")

		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return nil
}
