package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"
	"fmt"
	"time"

	"cleanrate/config"
	"cleanrate/infras/otel"
	"cleanrate/internal/domains/dashboard/model/dto"
	"cleanrate/internal/domains/dashboard/repository"
	employeeDto "cleanrate/internal/domains/employee/model/dto"
	"cleanrate/shared"
	"cleanrate/shared/cache"
	"cleanrate/shared/constant"
	"cleanrate/shared/timezone"

	"github.com/rs/zerolog/log"
)

// averageDays is the window of summary.average_rating.
const averageDays = 30

type Dashboard interface {
	Get(ctx context.Context, req dto.DashboardRequest) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dashboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the rollups for the UTC day of now. Everything but current_user is cached.
func (s *serviceImpl) Get(ctx context.Context, req dto.DashboardRequest) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	now := timezone.Now().UTC()
	today := now.Format(constant.DayFormat)
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CachePrefixDashboard+"get", req.Period, req.Limit, today)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		res.CurrentUser = employeeDto.CurrentUserFromContext(ctx)

		return res, nil
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthAgo := day.AddDate(0, 0, -averageDays).Format(constant.DayFormat)

	stats, err := s.repo.Stats(ctx, monthAgo)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard stats")

		return res, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	performers, err := s.repo.TopPerformers(ctx, req.Since(day).Format(constant.DayFormat), req.Limit)
	if err != nil {
		log.Error().Err(err).Str("period", req.Period).Msg("failed to get top performers")

		return res, fmt.Errorf("failed to get top performers: %w", err)
	}

	completed, err := s.repo.CompletedTasks(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get completed tasks")

		return res, fmt.Errorf("failed to get completed tasks: %w", err)
	}

	pending, err := s.repo.PendingTasks(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending tasks")

		return res, fmt.Errorf("failed to get pending tasks: %w", err)
	}

	res.FromModels(stats, performers, pending, completed, dto.PeriodLabel(req.Period, now))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	res.CurrentUser = employeeDto.CurrentUserFromContext(ctx)

	return res, nil
}
