package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cleanrate/config"
	"cleanrate/infras/otel/mocks"
	dashboardMocks "cleanrate/internal/domains/dashboard/mocks"
	"cleanrate/internal/domains/dashboard/model"
	"cleanrate/internal/domains/dashboard/model/dto"
	"cleanrate/internal/domains/dashboard/service"
	cacheMocks "cleanrate/shared/cache/mocks"
	"cleanrate/shared/constant"
)

const adminID = "550e8400-e29b-41d4-a716-446655440000"

func newService(t *testing.T) (service.Dashboard, *dashboardMocks.MockDashboardRepository, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := dashboardMocks.NewMockDashboardRepository(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, cache, mocks.NewOtel()), repo, cache
}

func adminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, adminID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "admin@example.com")

	return context.WithValue(ctx, constant.ContextKeyUserType, constant.UserTypeAdmin)
}

func day(offset int) string {
	now := time.Now().UTC()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset).Format(constant.DayFormat)
}

func TestDashboard_Get(t *testing.T) {
	svc, repo, cache := newService(t)

	score := 8
	picture := "/uploads/employee-1.png"

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
	repo.EXPECT().Stats(gomock.Any(), day(-30)).Return(model.Stats{
		TotalEmployees: 4,
		TotalBuildings: 2,
		AverageRating:  decimal.NewNullDecimal(decimal.RequireFromString("7.6667")),
	}, nil)
	repo.EXPECT().TopPerformers(gomock.Any(), day(-30), 5).Return([]model.Performer{
		{ID: "e1", Name: "Alice", Email: "alice@example.com", ProfilePicture: &picture, AverageRating: decimal.RequireFromString("9.25"), TotalRatings: 4},
		{ID: "e2", Name: "Bob", Email: "bob@example.com", AverageRating: decimal.RequireFromString("6.5"), TotalRatings: 2},
	}, nil)
	repo.EXPECT().CompletedTasks(gomock.Any(), day(0)).Return([]model.Task{
		{RoomID: "r1", BuildingName: "HQ", FloorName: "3F", RoomName: "301", EmployeeID: "e1", EmployeeName: "Alice", LastRating: &score},
	}, nil)
	repo.EXPECT().PendingTasks(gomock.Any(), day(0)).Return([]model.Task{
		{RoomID: "r2", BuildingName: "HQ", FloorName: "3F", RoomName: "302", EmployeeID: "e1", EmployeeName: "Alice"},
		{RoomID: "r3", BuildingName: "HQ", FloorName: "4F", RoomName: "401", EmployeeID: "e2", EmployeeName: "Bob"},
	}, nil)

	res, err := svc.Get(adminContext(), dto.DashboardRequest{Period: model.PeriodMonth, Limit: 5})
	require.NoError(t, err)

	now := time.Now().UTC()
	label := fmt.Sprintf("M%d-%d", int(now.Month()), now.Year())

	require.Len(t, res.TopPerformers, 2)
	assert.Equal(t, 9.3, res.TopPerformers[0].AverageRating)
	assert.Equal(t, picture, res.TopPerformers[0].ProfilePicture)
	assert.Equal(t, constant.DefaultProfilePicture, res.TopPerformers[1].ProfilePicture)
	assert.Equal(t, label, res.TopPerformers[1].Period)

	assert.Len(t, res.TodaysTasks, 2)
	assert.Equal(t, model.StatusPending, res.TodaysTasks[0].Status)
	assert.Nil(t, res.TodaysTasks[0].LastRating)
	assert.Equal(t, model.StatusCompleted, res.CompletedTasks[0].Status)
	assert.Equal(t, &score, res.CompletedTasks[0].LastRating)

	assert.Equal(t, dto.Summary{
		TotalTasksToday:   3,
		CompletedTasks:    1,
		PendingTasksToday: 2,
		AverageRating:     7.7,
		TotalEmployees:    4,
		TotalBuildings:    2,
	}, res.Summary)

	assert.Equal(t, adminID, res.CurrentUser.ID)
	assert.Equal(t, constant.UserTypeAdmin, res.CurrentUser.UserType)
}

func TestDashboard_Get_Defaults(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
	repo.EXPECT().Stats(gomock.Any(), day(-30)).Return(model.Stats{}, nil)
	repo.EXPECT().TopPerformers(gomock.Any(), day(-7), constant.DefaultValueLimit).Return([]model.Performer{}, nil)
	repo.EXPECT().CompletedTasks(gomock.Any(), day(0)).Return([]model.Task{}, nil)
	repo.EXPECT().PendingTasks(gomock.Any(), day(0)).Return([]model.Task{}, nil)

	res, err := svc.Get(adminContext(), dto.DashboardRequest{Period: "year"})
	require.NoError(t, err)

	assert.Empty(t, res.TopPerformers)
	assert.NotNil(t, res.TodaysTasks)
	assert.Zero(t, res.Summary.AverageRating)
}

func TestDashboard_Get_CacheHit(t *testing.T) {
	svc, _, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, value any) error {
			assert.Contains(t, key, constant.CachePrefixDashboard)

			res, ok := value.(*dto.DashboardResponse)
			require.True(t, ok)
			res.Summary.TotalEmployees = 9

			return nil
		})

	res, err := svc.Get(adminContext(), dto.DashboardRequest{})
	require.NoError(t, err)
	assert.Equal(t, 9, res.Summary.TotalEmployees)
	assert.Equal(t, "admin@example.com", res.CurrentUser.Email)
}

func TestDashboard_Get_RepositoryError(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *dashboardMocks.MockDashboardRepository)
	}{
		{
			name: "stats",
			setupMock: func(repo *dashboardMocks.MockDashboardRepository) {
				repo.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(model.Stats{}, errors.New("db down"))
			},
		},
		{
			name: "pending tasks",
			setupMock: func(repo *dashboardMocks.MockDashboardRepository) {
				repo.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(model.Stats{}, nil)
				repo.EXPECT().TopPerformers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().CompletedTasks(gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().PendingTasks(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)

			cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
			tt.setupMock(repo)

			_, err := svc.Get(adminContext(), dto.DashboardRequest{})
			assert.Error(t, err)
		})
	}
}
