package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cleanrate/internal/domains/dashboard/model"
	"cleanrate/internal/domains/dashboard/model/dto"
)

func TestDashboardRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   dto.DashboardRequest
		want dto.DashboardRequest
	}{
		{"defaults", dto.DashboardRequest{}, dto.DashboardRequest{Period: model.PeriodWeek, Limit: 10}},
		{"month", dto.DashboardRequest{Period: "month", Limit: 3}, dto.DashboardRequest{Period: model.PeriodMonth, Limit: 3}},
		{"unknown period", dto.DashboardRequest{Period: "year", Limit: -1}, dto.DashboardRequest{Period: model.PeriodWeek, Limit: 10}},
		{"limit cap", dto.DashboardRequest{Period: "week", Limit: 5000}, dto.DashboardRequest{Period: model.PeriodWeek, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestDashboardRequest_Since(t *testing.T) {
	today := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	week := dto.DashboardRequest{Period: model.PeriodWeek}
	month := dto.DashboardRequest{Period: model.PeriodMonth}

	assert.Equal(t, time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC), week.Since(today))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), month.Since(today))
}

func TestPeriodLabel(t *testing.T) {
	// 2024-12-30 belongs to ISO week 1 of 2025 but the label keeps the calendar year.
	monday := time.Date(2024, 12, 30, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "W1-2024", dto.PeriodLabel(model.PeriodWeek, monday))
	assert.Equal(t, "M12-2024", dto.PeriodLabel(model.PeriodMonth, monday))
	assert.Equal(t, "W10-2025", dto.PeriodLabel(model.PeriodWeek, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestTaskResponse_FromModel(t *testing.T) {
	rated := time.Date(2025, 1, 6, 23, 30, 0, 0, time.FixedZone("WIB", 7*3600))

	var task dto.TaskResponse
	task.FromModel(model.Task{RoomID: "r1", LastRatingDate: &rated}, model.StatusPending)

	assert.Equal(t, "2025-01-06", *task.LastRatingDate)
	assert.Equal(t, model.StatusPending, task.Status)
}
