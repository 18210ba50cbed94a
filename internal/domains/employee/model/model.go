package model

import (
	"time"

	"cleanrate/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID               = "id"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldName             = "name"
	FieldIsAdmin          = "is_admin"
	FieldUserType         = "user_type"
	FieldDateOfBirth      = "date_of_birth"
	FieldGender           = "gender"
	FieldAssignedBuilding = "assigned_building"
	FieldProfilePicture   = "profile_picture"
	FieldIsActive         = "is_active"
	FieldLastLogin        = "last_login"
)

// User is a row of users. Admins and employees share the table and differ by user_type.
type User struct {
	ID               string     `db:"id"`
	Email            string     `db:"email"`
	Password         string     `db:"password"`
	Name             string     `db:"name"`
	IsAdmin          bool       `db:"is_admin"`
	UserType         string     `db:"user_type"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Gender           *string    `db:"gender"`
	AssignedBuilding *string    `db:"assigned_building"`
	ProfilePicture   string     `db:"profile_picture"`
	IsActive         bool       `db:"is_active"`
	LastLogin        *time.Time `db:"last_login"`
	model.Metadata
}
