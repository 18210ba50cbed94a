package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"

	"cleanrate/config"
	"cleanrate/infras/jwt"
	"cleanrate/infras/otel"
	"cleanrate/internal/domains/auth/model/dto"
	employeeModel "cleanrate/internal/domains/employee/model"
	employeeDto "cleanrate/internal/domains/employee/model/dto"
	employeeRepo "cleanrate/internal/domains/employee/repository"
	facilityService "cleanrate/internal/domains/facility/service"
	historyModel "cleanrate/internal/domains/history/model"
	historyDto "cleanrate/internal/domains/history/model/dto"
	historyService "cleanrate/internal/domains/history/service"
	"cleanrate/shared"
	"cleanrate/shared/constant"
	gDto "cleanrate/shared/dto"
	"cleanrate/shared/failure"
	"cleanrate/shared/password"
	"cleanrate/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgUserNotFound        = "User not found"
	msgSeedIncomplete      = "SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Me(ctx context.Context, userID string) (dto.MeResponse, error)
	// SeedAdmin creates the configured admin account unless its email is taken.
	SeedAdmin(ctx context.Context) (created bool, err error)
}

type serviceImpl struct {
	userRepo   employeeRepo.User
	assignment facilityService.Assignment
	history    historyService.History
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(
	userRepo employeeRepo.User,
	assignment facilityService.Assignment,
	history historyService.History,
	cfg *config.Config,
	otel otel.Otel,
	jwt jwt.JWT,
) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		assignment: assignment,
		history:    history,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func activeUser(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    employeeModel.TableName,
			},
			gDto.Filter{
				Field:    employeeModel.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    employeeModel.TableName,
			},
		},
	}
}

func identityOf(user employeeModel.User) jwt.Identity {
	return jwt.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		UserType: user.UserType,
	}
}

func (s *serviceImpl) profile(ctx context.Context, user employeeModel.User) (res dto.UserProfile, err error) {
	var floors []string

	if user.UserType == constant.UserTypeEmployee {
		held, err := s.assignment.AssignedFloors(ctx, user.ID)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		floors = held[user.ID]
	}

	res.FromModel(user, floors)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := employeeDto.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return res, failure.BadRequestFromString(msgCredentialsRequired)
	}

	filter := activeUser(employeeModel.FieldEmail, email)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", email).Msg("login attempt with unknown or inactive email")

		return res, failure.InvalidCredentials
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", email).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(identityOf(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, shared.FilterByID(user.ID, employeeModel.FieldID, employeeModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.User, err = s.profile(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromTokenPair(tokenPair)

	s.history.Record(ctx, historyDto.Entry{
		UserID:    user.ID,
		Action:    historyModel.ActionLogin,
		TableName: employeeModel.TableName,
		RecordID:  user.ID,
		NewValues: map[string]any{"email": user.Email, "user_type": user.UserType},
	})

	return res, nil
}

// RefreshToken reissues a pair for a still active user, picking up role changes.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.InvalidToken
	}

	user, err := s.userRepo.Get(ctx, activeUser(employeeModel.FieldID, claims.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.InvalidToken
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(identityOf(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context, userID string) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, activeUser(employeeModel.FieldID, userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound(msgUserNotFound)
	}

	res.User, err = s.profile(ctx, user)

	return res, err
}

func (s *serviceImpl) SeedAdmin(ctx context.Context) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SeedAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seed := s.cfg.Seed.Admin

	email := employeeDto.NormalizeEmail(seed.Email)
	if email == "" || seed.Password == "" {
		return false, failure.BadRequestFromString(msgSeedIncomplete)
	}

	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(email, employeeModel.FieldEmail, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin account")

		return false, fmt.Errorf("failed to check admin account: %w", err)
	}

	if exist {
		log.Info().Str("email", email).Msg("admin account already exists")

		return false, nil
	}

	hashed, err := password.Hash(seed.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")

		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := timezone.Now()

	admin := employeeModel.User{
		ID:             uuid.NewString(),
		Email:          email,
		Password:       hashed,
		Name:           seed.Name,
		IsAdmin:        true,
		UserType:       constant.UserTypeAdmin,
		ProfilePicture: constant.DefaultProfilePicture,
		IsActive:       true,
	}
	admin.CreatedAt = now
	admin.ModifiedAt = now
	admin.CreatedBy = constant.ContextSystem
	admin.ModifiedBy = constant.ContextSystem

	if err = s.userRepo.Insert(ctx, admin); err != nil {
		log.Error().Err(err).Msg("failed to insert admin account")

		return false, fmt.Errorf("failed to insert admin account: %w", err)
	}

	s.history.Record(ctx, historyDto.Entry{
		Action:    historyModel.ActionCreateEmployee,
		TableName: employeeModel.TableName,
		RecordID:  admin.ID,
		NewValues: map[string]any{"email": admin.Email, "user_type": admin.UserType},
	})

	return true, nil
}
