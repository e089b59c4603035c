package dto

import (
	"dronline/infras/jwt"
	userModel "dronline/internal/domains/user/model"
	userDto "dronline/internal/domains/user/model/dto"
	"dronline/shared/constant"
	gModel "dronline/shared/model"
	"dronline/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=2,max=100"`
	Email       string  `json:"email"     validate:"required,email"`
	Password    string  `json:"password"  validate:"required,min=6"`
	Role        string  `json:"role"      validate:"omitempty,oneof=patient doctor admin"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	role := r.Role
	if role == "" {
		role = constant.RolePatient
	}

	return userModel.User{
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

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	ExpiresIn    int64                `json:"expires_in"`
	User         userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
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

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=6"`
}
