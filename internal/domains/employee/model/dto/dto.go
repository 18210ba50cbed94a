package dto

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cleanrate/internal/domains/employee/model"
	"cleanrate/shared/constant"
	gDto "cleanrate/shared/dto"
	gModel "cleanrate/shared/model"
	"cleanrate/shared/timezone"

	"github.com/google/uuid"
)

type ListEmployeesRequest struct {
	Building string `json:"building"`
	Floor    string `json:"floor"`
	Search   string `json:"search"`
}

func (r *ListEmployeesRequest) FromRequest(request *http.Request) {
	query := request.URL.Query()

	r.Building = query.Get("building")
	r.Floor = query.Get("floor")
	r.Search = strings.TrimSpace(query.Get("search"))
}

type CreateEmployeeRequest struct {
	Name             string   `json:"name"              validate:"omitempty,max=255"`
	Email            string   `json:"email"             validate:"omitempty,max=255"`
	DateOfBirth      string   `json:"date_of_birth"     validate:"omitempty,datetime=2006-01-02"`
	Gender           string   `json:"gender"`
	AssignedBuilding string   `json:"assigned_building" validate:"omitempty,max=255"`
	AssignedFloors   []string `json:"assigned_floors"`
	Password         string   `json:"password"          validate:"omitempty,min=6"`
	ProfilePicture   string   `json:"profile_picture"   validate:"omitempty,max=512"`
}

// Missing reports whether a required field is absent. An empty floor list is allowed.
func (r *CreateEmployeeRequest) Missing() bool {
	return r.Name == "" || r.Email == "" || r.DateOfBirth == "" || r.Gender == "" ||
		r.AssignedBuilding == "" || r.AssignedFloors == nil || r.Password == ""
}

func (r *CreateEmployeeRequest) ToModel(user, hashedPassword string) model.User {
	now := timezone.Now()

	gender := r.Gender
	building := r.AssignedBuilding

	picture := r.ProfilePicture
	if picture == "" {
		picture = constant.DefaultProfilePicture
	}

	return model.User{
		ID:               uuid.NewString(),
		Email:            NormalizeEmail(r.Email),
		Password:         hashedPassword,
		Name:             strings.TrimSpace(r.Name),
		UserType:         constant.UserTypeEmployee,
		DateOfBirth:      parseDate(r.DateOfBirth),
		Gender:           &gender,
		AssignedBuilding: &building,
		ProfilePicture:   picture,
		IsActive:         true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateEmployeeRequest replaces the profile. Password is only changed when given.
type UpdateEmployeeRequest struct {
	ID               string   `db:"-"                 json:"-"`
	Name             string   `db:"name"              json:"name"              validate:"omitempty,max=255"`
	Email            string   `db:"email"             json:"email"             validate:"omitempty,max=255"`
	DateOfBirth      string   `db:"date_of_birth"     json:"date_of_birth"     validate:"omitempty,datetime=2006-01-02"`
	Gender           string   `db:"gender"            json:"gender"`
	AssignedBuilding string   `db:"assigned_building" json:"assigned_building" validate:"omitempty,max=255"`
	AssignedFloors   []string `db:"-"                 json:"assigned_floors"`
	ProfilePicture   string   `db:"profile_picture"   json:"profile_picture"   validate:"omitempty,max=512"`
	Password         string   `db:"-"                 json:"password"          validate:"omitempty,min=6"`
}

func (r *UpdateEmployeeRequest) Missing() bool {
	return r.Name == "" || r.Email == "" || r.DateOfBirth == "" || r.Gender == "" ||
		r.AssignedBuilding == "" || r.AssignedFloors == nil
}

func (r *UpdateEmployeeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
}

// Apply returns current with the request's fields written over it.
func (r *UpdateEmployeeRequest) Apply(current model.User) model.User {
	updated := current

	gender := r.Gender
	building := r.AssignedBuilding

	updated.Name = r.Name
	updated.Email = r.Email
	updated.DateOfBirth = parseDate(r.DateOfBirth)
	updated.Gender = &gender
	updated.AssignedBuilding = &building

	if r.ProfilePicture != "" {
		updated.ProfilePicture = r.ProfilePicture
	}

	return updated
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

type DeactivateRequest struct {
	IsActive *bool `db:"is_active"`
}

type ProfilePictureRequest struct {
	ProfilePicture string `db:"profile_picture"`
}

type EmployeeResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	ProfilePicture   string   `json:"profile_picture"`
	DateOfBirth      *string  `json:"date_of_birth"`
	Gender           *string  `json:"gender"`
	AssignedBuilding *string  `json:"assigned_building"`
	AssignedFloors   []string `json:"assigned_floors"`
	IsActive         bool     `json:"is_active"`
	LastLogin        *string  `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(m model.User, floors []string) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.ProfilePicture = m.ProfilePicture
	r.Gender = m.Gender
	r.AssignedBuilding = m.AssignedBuilding
	r.IsActive = m.IsActive
	r.DateOfBirth = nil
	r.LastLogin = nil

	if r.ProfilePicture == "" {
		r.ProfilePicture = constant.DefaultProfilePicture
	}

	if m.DateOfBirth != nil {
		dob := m.DateOfBirth.Format(constant.DayFormat)
		r.DateOfBirth = &dob
	}

	if m.LastLogin != nil {
		last := timezone.Format(*m.LastLogin, constant.DateFormat)
		r.LastLogin = &last
	}

	r.AssignedFloors = floors
	if r.AssignedFloors == nil {
		r.AssignedFloors = []string{}
	}

	r.Metadata.FromModel(m.Metadata)
}

type ListEmployeesResponse struct {
	Employees      []EmployeeResponse `json:"employees"`
	TotalEmployees int                `json:"total_employees"`
}

func (r *ListEmployeesResponse) FromModels(models []model.User, floors map[string][]string) {
	r.Employees = make([]EmployeeResponse, len(models))
	for i, m := range models {
		r.Employees[i].FromModel(m, floors[m.ID])
	}

	r.TotalEmployees = len(models)
}

type CurrentUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// CurrentUserFromContext reads the caller identity the auth middleware stored on ctx.
func CurrentUserFromContext(ctx context.Context) CurrentUser {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	userType, _ := ctx.Value(constant.ContextKeyUserType).(string)

	return CurrentUser{ID: id, Email: email, UserType: userType}
}

type GetEmployeeResponse struct {
	Employee    EmployeeResponse `json:"employee"`
	CurrentUser CurrentUser      `json:"current_user"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseDate(value string) *time.Time {
	t, err := time.Parse(constant.DayFormat, value)
	if err != nil {
		return nil
	}

	return &t
}
