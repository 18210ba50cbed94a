package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"

	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// Performer is one row of the top performers rollup.
type Performer struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	ProfilePicture *string         `db:"profile_picture"`
	AverageRating  decimal.Decimal `db:"average_rating"`
	TotalRatings   int             `db:"total_ratings"`
}

// Task is a room an employee is expected to have rated today.
type Task struct {
	RoomID         string     `db:"room_id"`
	BuildingName   string     `db:"building_name"`
	FloorName      string     `db:"floor_name"`
	RoomName       string     `db:"room_name"`
	EmployeeID     string     `db:"employee_id"`
	EmployeeName   string     `db:"employee_name"`
	LastRating     *int       `db:"last_rating"`
	LastRatingDate *time.Time `db:"last_rating_date"`
}

type Stats struct {
	TotalEmployees int                 `db:"total_employees"`
	TotalBuildings int                 `db:"total_buildings"`
	AverageRating  decimal.NullDecimal `db:"average_rating"`
}
