package dto

import (
	"time"

	"cleanrate/infras/jwt"
	"cleanrate/internal/domains/employee/model"
	"cleanrate/shared/constant"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"omitempty,max=255"`
	Password string `json:"password" validate:"omitempty,max=72"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login"`
}

// UserProfile is the password free view of the caller. Employee fields are
// only filled for employees.
type UserProfile struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	ProfilePicture   string   `json:"profile_picture"`
	IsAdmin          bool     `json:"is_admin"`
	UserType         string   `json:"user_type"`
	DateOfBirth      *string  `json:"date_of_birth,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	AssignedBuilding *string  `json:"assigned_building,omitempty"`
	AssignedFloors   []string `json:"assigned_floors,omitempty"`
}

func (p *UserProfile) FromModel(m model.User, floors []string) {
	p.ID = m.ID
	p.Name = m.Name
	p.Email = m.Email
	p.ProfilePicture = m.ProfilePicture
	p.IsAdmin = m.IsAdmin
	p.UserType = m.UserType

	if p.ProfilePicture == "" {
		p.ProfilePicture = constant.DefaultProfilePicture
	}

	if m.UserType != constant.UserTypeEmployee {
		return
	}

	if m.DateOfBirth != nil {
		dob := m.DateOfBirth.Format(constant.DayFormat)
		p.DateOfBirth = &dob
	}

	p.Gender = m.Gender
	p.AssignedBuilding = m.AssignedBuilding

	p.AssignedFloors = floors
	if p.AssignedFloors == nil {
		p.AssignedFloors = []string{}
	}
}

type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         UserProfile `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.Token = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type MeResponse struct {
	User UserProfile `json:"user"`
}
