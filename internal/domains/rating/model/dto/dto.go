package dto

import (
	"net/http"
	"time"

	employeeDto "cleanrate/internal/domains/employee/model/dto"
	"cleanrate/internal/domains/rating/model"
	"cleanrate/shared/constant"
	gModel "cleanrate/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MsgRatingAdded   = "Rating added successfully"
	MsgRatingUpdated = "Rating updated successfully"
	MsgRatingCleared = "Rating cleared successfully"
	MsgNoRating      = "No rating found to delete"
)

// SubmitRatingRequest is the body of POST and PUT /ratings. A rating_id switches
// the request to an update of that row.
type SubmitRatingRequest struct {
	RatingID   string `json:"rating_id"   validate:"omitempty,uuid"`
	EmployeeID string `json:"employee_id" validate:"omitempty,uuid"`
	RoomID     string `json:"room_id"     validate:"omitempty,uuid"`
	Rating     int    `json:"rating"`
	Notes      string `json:"notes"       validate:"omitempty,max=2000"`
}

func (r *SubmitRatingRequest) ToModel(user string, now time.Time) model.Rating {
	utc := now.UTC()
	ratedOn := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	return model.Rating{
		ID:         uuid.NewString(),
		EmployeeID: r.EmployeeID,
		RoomID:     r.RoomID,
		Rating:     r.Rating,
		Notes:      r.Notes,
		RatedBy:    rater(user),
		RatedAt:    now,
		RatedOn:    ratedOn,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// rater keeps only real user ids; API key callers run as system and are stored as NULL.
func rater(user string) *string {
	if _, err := uuid.Parse(user); err != nil {
		return nil
	}

	return &user
}

// UpdateRatingRequest holds the columns a resubmission or update by id may change.
type UpdateRatingRequest struct {
	Rating int    `db:"rating"`
	Notes  string `db:"notes"`
}

type ClearRatingRequest struct {
	EmployeeID string `json:"employee_id" validate:"omitempty,uuid"`
	RoomID     string `json:"room_id"     validate:"omitempty,uuid"`
	Date       string `json:"date"`
}

type ListRatingsRequest struct {
	EmployeeID string `json:"employee_id"`
	Building   string `json:"building"`
	Floor      string `json:"floor"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (r *ListRatingsRequest) FromRequest(request *http.Request) {
	query := request.URL.Query()

	r.EmployeeID = query.Get("employee_id")
	r.Building = query.Get("building")
	r.Floor = query.Get("floor")
	r.From = query.Get("from")
	r.To = query.Get("to")
}

// RatingResponse doubles as the audit snapshot of a rating.
type RatingResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	RoomID       string    `json:"room_id"`
	Rating       int       `json:"rating"`
	Notes        string    `json:"notes"`
	RatedBy      *string   `json:"rated_by"`
	RatedAt      time.Time `json:"rated_at"`
	RatedOn      string    `json:"rated_on"`
	ModifiedAt   time.Time `json:"updated_at"`
	EmployeeName string    `json:"employee_name"`
	RoomName     string    `json:"room_name"`
	FloorName    string    `json:"floor_name"`
	BuildingName string    `json:"building_name"`
}

func (r *RatingResponse) FromModel(m model.Rating) {
	r.ID = m.ID
	r.EmployeeID = m.EmployeeID
	r.RoomID = m.RoomID
	r.Rating = m.Rating
	r.Notes = m.Notes
	r.RatedBy = m.RatedBy
	r.RatedAt = m.RatedAt
	r.RatedOn = m.RatedOn.Format(constant.DayFormat)
	r.ModifiedAt = m.ModifiedAt
	r.EmployeeName = m.EmployeeName
	r.RoomName = m.RoomName
	r.FloorName = m.FloorName
	r.BuildingName = m.BuildingName
}

type SubmitRatingResponse struct {
	Message string         `json:"message"`
	Rating  RatingResponse `json:"rating"`
	Created bool           `json:"-"`
}

type EmployeeRating struct {
	ID           string    `json:"id"`
	BuildingName string    `json:"building_name"`
	FloorName    string    `json:"floor_name"`
	RoomName     string    `json:"room_name"`
	Rating       int       `json:"rating"`
	RatedBy      *string   `json:"rated_by"`
	RatedByName  *string   `json:"rated_by_name"`
	RatedAt      time.Time `json:"rated_at"`
	Notes        string    `json:"notes"`
}

func (r *EmployeeRating) FromModel(m model.Rating) {
	r.ID = m.ID
	r.BuildingName = m.BuildingName
	r.FloorName = m.FloorName
	r.RoomName = m.RoomName
	r.Rating = m.Rating
	r.RatedBy = m.RatedBy
	r.RatedByName = m.RatedByName
	r.RatedAt = m.RatedAt
	r.Notes = m.Notes
}

type EmployeeRatings struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	ProfilePicture   string           `json:"profile_picture"`
	AssignedBuilding *string          `json:"assigned_building"`
	AssignedFloors   []string         `json:"assigned_floors"`
	Ratings          []EmployeeRating `json:"ratings"`
	AverageRating    float64          `json:"average_rating"`
	TotalRooms       int              `json:"total_rooms"`
}

func (e *EmployeeRatings) FromEmployee(emp employeeDto.EmployeeResponse) {
	e.ID = emp.ID
	e.Name = emp.Name
	e.Email = emp.Email
	e.ProfilePicture = emp.ProfilePicture
	e.AssignedBuilding = emp.AssignedBuilding
	e.AssignedFloors = emp.AssignedFloors
}

// SetRatings fills the ratings with their one decimal average.
func (e *EmployeeRatings) SetRatings(ratings []model.Rating) {
	e.Ratings = make([]EmployeeRating, len(ratings))
	e.TotalRooms = len(ratings)

	scores := make([]int, len(ratings))

	for i, r := range ratings {
		e.Ratings[i].FromModel(r)
		scores[i] = r.Rating
	}

	e.AverageRating = Average(scores)
}

type ListRatingsResponse struct {
	Employees      []EmployeeRatings `json:"employees"`
	TotalEmployees int               `json:"total_employees"`
}

// Average returns the mean rounded half away from zero to one decimal, 0 for no scores.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}

	sum := decimal.Zero
	for _, s := range scores {
		sum = sum.Add(decimal.NewFromInt(int64(s)))
	}

	return sum.Div(decimal.NewFromInt(int64(len(scores)))).Round(1).InexactFloat64()
}

// ParseDay reads a YYYY-MM-DD value as a UTC calendar day.
func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DayFormat, value, time.UTC) //nolint:wrapcheck
}
