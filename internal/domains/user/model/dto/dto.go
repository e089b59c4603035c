package dto

import (
	"mime/multipart"

	"dronline/internal/domains/user/model"
	"dronline/shared"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	gModel "dronline/shared/model"
	"dronline/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=2,max=100"`
	Email       string  `json:"email"     validate:"required,email"`
	Password    string  `json:"password"  validate:"required,min=6"`
	Role        string  `json:"role"      validate:"omitempty,oneof=patient doctor admin"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RolePatient
	}

	return model.User{
		ID:          uuid.NewString(),
		Email:       r.Email,
		Password:    hashedPassword,
		FullName:    r.FullName,
		Role:        role,
		PhoneNumber: r.PhoneNumber,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateUserRequest struct {
	FullName       string                `db:"full_name"      json:"full_name"      validate:"omitempty,min=2,max=100"`
	PhoneNumber    *string               `db:"phone_number"   json:"phone_number"   validate:"omitempty,max=30"`
	Bio            *string               `db:"bio"            json:"bio"            validate:"omitempty,max=1000"`
	Specialization *string               `db:"specialization" json:"specialization" validate:"omitempty,max=100"`
	Active         *bool                 `db:"active"         json:"active"         validate:"omitempty"`
	Avatar         *multipart.FileHeader `json:"avatar"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	AvatarFile     multipart.File        `json:"-"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	ProfileImage   *string `json:"profile_image,omitempty"`
	LastLogin      *string `json:"last_login,omitempty"`
	Active         bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.FullName = mod.FullName
	r.Email = mod.Email
	r.Role = mod.Role
	r.PhoneNumber = mod.PhoneNumber
	r.Bio = mod.Bio
	r.Specialization = mod.Specialization
	r.ProfileImage = mod.ProfileImage
	r.Active = mod.Active

	if mod.LastLogin != nil {
		lastLogin := timezone.Format(*mod.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
