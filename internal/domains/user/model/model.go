package model

import (
	"dronline/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldFullName       = "full_name"
	FieldRole           = "role"
	FieldPhoneNumber    = "phone_number"
	FieldBio            = "bio"
	FieldSpecialization = "specialization"
	FieldProfileImage   = "profile_image"
	FieldLastLogin      = "last_login"
	FieldActive         = "active"
)

type User struct {
	ID             string     `db:"id"`
	Email          string     `db:"email"`
	Password       string     `db:"password"`
	FullName       string     `db:"full_name"`
	Role           string     `db:"role"`
	PhoneNumber    *string    `db:"phone_number"`
	Bio            *string    `db:"bio"`
	Specialization *string    `db:"specialization"`
	ProfileImage   *string    `db:"profile_image"`
	LastLogin      *time.Time `db:"last_login"`
	Active         bool       `db:"active"`
	model.Metadata
}
