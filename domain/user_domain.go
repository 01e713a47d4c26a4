package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister               = "user registered successfully"
	MessageSuccessLogin                  = "login successful"
	MessageSuccessGetProfile             = "profile retrieved successfully"
	MessageSuccessUpdateUser             = "profile updated successfully"
	MessageSuccessUploadProfileImage     = "profile image uploaded successfully"
	MessageSuccessGetDietaryRequirements = "dietary requirements retrieved successfully"

	MessageFailedRegister               = "failed to register user"
	MessageFailedLogin                  = "failed to login"
	MessageFailedGetProfile             = "failed to retrieve profile"
	MessageFailedUpdateUser             = "failed to update profile"
	MessageFailedUploadProfileImage     = "failed to upload profile image"
	MessageFailedGetDietaryRequirements = "failed to retrieve dietary requirements"

	ErrEmailAlreadyExists        = errors.New("user with this email already exists")
	ErrUserNotFound              = errors.New("user not found")
	ErrCredentialsInvalid        = errors.New("invalid email or password")
	ErrDietaryRequirementInvalid = errors.New("unknown dietary requirement")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=100"`
		Name     string `json:"name" validate:"omitempty,max=100"`
	}

	RegisterResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	UpdateUserRequest struct {
		Name                   string   `json:"name" validate:"omitempty,max=100"`
		Email                  string   `json:"email" validate:"omitempty,email"`
		DefaultLocationLat     *float64 `json:"default_location_lat" validate:"omitempty,min=-90,max=90"`
		DefaultLocationLng     *float64 `json:"default_location_lng" validate:"omitempty,min=-180,max=180"`
		DefaultLocationAddress string   `json:"default_location_address" validate:"omitempty"`
		DietaryRequirementIDs  []string `json:"dietary_requirement_ids" validate:"omitempty,dive,required"`
	}

	UploadProfileImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UserResponse struct {
		ID                     string                      `json:"id"`
		Email                  string                      `json:"email"`
		Name                   string                      `json:"name"`
		ImageURL               string                      `json:"image_url,omitempty"`
		DefaultLocationLat     *float64                    `json:"default_location_lat,omitempty"`
		DefaultLocationLng     *float64                    `json:"default_location_lng,omitempty"`
		DefaultLocationAddress string                      `json:"default_location_address,omitempty"`
		DietaryRequirements    []DietaryRequirementResponse `json:"dietary_requirements"`
		CreatedAt              time.Time                   `json:"created_at"`
		UpdatedAt              time.Time                   `json:"updated_at"`
	}

	DietaryRequirementResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}
)
