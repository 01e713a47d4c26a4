package user

import (
	"context"
	"errors"
	"fmt"

	"lunch-chooser/domain"
	"lunch-chooser/entities"
	"lunch-chooser/internal/utils/storage"
	"lunch-chooser/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		UploadProfileImage(ctx context.Context, req domain.UploadProfileImageRequest, userID string) (string, error)
		GetDietaryRequirements(ctx context.Context) ([]domain.DietaryRequirementResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	existing, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if existing != nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if user == nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String())
	return domain.LoginResponse{Token: token}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.DefaultLocationLat != nil {
		user.DefaultLocationLat = req.DefaultLocationLat
	}
	if req.DefaultLocationLng != nil {
		user.DefaultLocationLng = req.DefaultLocationLng
	}
	if req.DefaultLocationAddress != "" {
		user.DefaultLocationAddress = req.DefaultLocationAddress
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.UserResponse{}, err
	}

	if req.DietaryRequirementIDs != nil {
		requirements, err := s.userRepository.GetDietaryRequirementsByIDs(ctx, req.DietaryRequirementIDs)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if len(requirements) != len(req.DietaryRequirementIDs) {
			return domain.UserResponse{}, domain.ErrDietaryRequirementInvalid
		}
		if err := s.userRepository.ReplaceDietaryRequirements(ctx, user, requirements); err != nil {
			return domain.UserResponse{}, err
		}
		user.DietaryRequirements = requirements
	}

	return toUserResponse(user), nil
}

func (s *userService) UploadProfileImage(ctx context.Context, req domain.UploadProfileImageRequest, userID string) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("profile-%s", user.ID.String())
	var objectKey string
	var uploadErr error

	if user.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(user.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "profiles", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "profiles", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	user.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return user.ImageURL, nil
}

func (s *userService) GetDietaryRequirements(ctx context.Context) ([]domain.DietaryRequirementResponse, error) {
	requirements, err := s.userRepository.GetAllDietaryRequirements(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DietaryRequirementResponse, 0, len(requirements))
	for _, requirement := range requirements {
		response = append(response, domain.DietaryRequirementResponse{
			ID:          requirement.ID,
			Name:        requirement.Name,
			Description: requirement.Description,
		})
	}
	return response, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	requirements := make([]domain.DietaryRequirementResponse, 0, len(user.DietaryRequirements))
	for _, requirement := range user.DietaryRequirements {
		requirements = append(requirements, domain.DietaryRequirementResponse{
			ID:          requirement.ID,
			Name:        requirement.Name,
			Description: requirement.Description,
		})
	}

	return domain.UserResponse{
		ID:                     user.ID.String(),
		Email:                  user.Email,
		Name:                   user.Name,
		ImageURL:               user.ImageURL,
		DefaultLocationLat:     user.DefaultLocationLat,
		DefaultLocationLng:     user.DefaultLocationLng,
		DefaultLocationAddress: user.DefaultLocationAddress,
		DietaryRequirements:    requirements,
		CreatedAt:              user.CreatedAt,
		UpdatedAt:              user.UpdatedAt,
	}
}
