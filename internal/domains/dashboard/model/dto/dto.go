package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cleanrate/internal/domains/dashboard/model"
	employeeDto "cleanrate/internal/domains/employee/model/dto"
	"cleanrate/shared/constant"

	"github.com/shopspring/decimal"
)

const (
	weekDays  = 7
	monthDays = 30
	maxLimit  = 100
)

type DashboardRequest struct {
	Period string `json:"period"`
	Limit  int    `json:"limit"`
}

// FromRequest reads ?period&limit. Unparseable values fall back to the defaults.
func (r *DashboardRequest) FromRequest(request *http.Request) {
	query := request.URL.Query()

	r.Period = query.Get("period")

	if limit, err := strconv.Atoi(query.Get(constant.RequestParamLimit)); err == nil {
		r.Limit = limit
	}

	r.Normalize()
}

// Normalize applies the defaults: any period other than month is a week, limit falls back to 10.
func (r *DashboardRequest) Normalize() {
	if r.Period != model.PeriodMonth {
		r.Period = model.PeriodWeek
	}

	if r.Limit <= 0 {
		r.Limit = constant.DefaultValueLimit
	}

	if r.Limit > maxLimit {
		r.Limit = maxLimit
	}
}

// Since is the first rated_on day of the period ending today.
func (r *DashboardRequest) Since(today time.Time) time.Time {
	if r.Period == model.PeriodMonth {
		return today.AddDate(0, 0, -monthDays)
	}

	return today.AddDate(0, 0, -weekDays)
}

// PeriodLabel renders W<iso week>-<year> or M<month>-<year>.
func PeriodLabel(period string, now time.Time) string {
	if period == model.PeriodMonth {
		return fmt.Sprintf("M%d-%d", int(now.Month()), now.Year())
	}

	_, week := now.ISOWeek()

	return fmt.Sprintf("W%d-%d", week, now.Year())
}

type PerformerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ProfilePicture string  `json:"profile_picture"`
	AverageRating  float64 `json:"average_rating"`
	TotalRatings   int     `json:"total_ratings"`
	Period         string  `json:"period"`
}

func (r *PerformerResponse) FromModel(m model.Performer, period string) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.ProfilePicture = constant.DefaultProfilePicture
	r.AverageRating = m.AverageRating.Round(1).InexactFloat64()
	r.TotalRatings = m.TotalRatings
	r.Period = period

	if m.ProfilePicture != nil && *m.ProfilePicture != "" {
		r.ProfilePicture = *m.ProfilePicture
	}
}

type TaskResponse struct {
	RoomID         string  `json:"room_id"`
	BuildingName   string  `json:"building_name"`
	FloorName      string  `json:"floor_name"`
	RoomName       string  `json:"room_name"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	LastRating     *int    `json:"last_rating"`
	LastRatingDate *string `json:"last_rating_date"`
	Status         string  `json:"status"`
}

func (r *TaskResponse) FromModel(m model.Task, status string) {
	r.RoomID = m.RoomID
	r.BuildingName = m.BuildingName
	r.FloorName = m.FloorName
	r.RoomName = m.RoomName
	r.EmployeeID = m.EmployeeID
	r.EmployeeName = m.EmployeeName
	r.LastRating = m.LastRating
	r.Status = status

	if m.LastRatingDate != nil {
		day := m.LastRatingDate.UTC().Format(constant.DayFormat)
		r.LastRatingDate = &day
	}
}

func tasksFromModels(models []model.Task, status string) []TaskResponse {
	res := make([]TaskResponse, 0, len(models))

	for _, m := range models {
		var task TaskResponse
		task.FromModel(m, status)
		res = append(res, task)
	}

	return res
}

type Summary struct {
	TotalTasksToday   int     `json:"total_tasks_today"`
	CompletedTasks    int     `json:"completed_tasks"`
	PendingTasksToday int     `json:"pending_tasks_today"`
	AverageRating     float64 `json:"average_rating"`
	TotalEmployees    int     `json:"total_employees"`
	TotalBuildings    int     `json:"total_buildings"`
}

type DashboardResponse struct {
	TopPerformers  []PerformerResponse     `json:"top_performers"`
	TodaysTasks    []TaskResponse          `json:"todays_tasks"`
	CompletedTasks []TaskResponse          `json:"completed_tasks"`
	Summary        Summary                 `json:"summary"`
	CurrentUser    employeeDto.CurrentUser `json:"current_user"`
}

// FromModels assembles the rollups. label is the period label stamped on every performer.
func (r *DashboardResponse) FromModels(stats model.Stats, performers []model.Performer, pending, completed []model.Task, label string) {
	r.TopPerformers = make([]PerformerResponse, 0, len(performers))

	for _, p := range performers {
		var performer PerformerResponse
		performer.FromModel(p, label)
		r.TopPerformers = append(r.TopPerformers, performer)
	}

	r.TodaysTasks = tasksFromModels(pending, model.StatusPending)
	r.CompletedTasks = tasksFromModels(completed, model.StatusCompleted)

	average := decimal.Zero
	if stats.AverageRating.Valid {
		average = stats.AverageRating.Decimal
	}

	r.Summary = Summary{
		TotalTasksToday:   len(pending) + len(completed),
		CompletedTasks:    len(completed),
		PendingTasksToday: len(pending),
		AverageRating:     average.Round(1).InexactFloat64(),
		TotalEmployees:    stats.TotalEmployees,
		TotalBuildings:    stats.TotalBuildings,
	}
}
