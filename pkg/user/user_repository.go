package user

import (
	"context"
	"errors"

	"lunch-chooser/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		ReplaceDietaryRequirements(ctx context.Context, user *entities.User, requirements []entities.DietaryRequirement) error
		GetDietaryRequirementsByIDs(ctx context.Context, ids []string) ([]entities.DietaryRequirement, error)
		GetAllDietaryRequirements(ctx context.Context) ([]entities.DietaryRequirement, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("DietaryRequirements").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil if not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) ReplaceDietaryRequirements(ctx context.Context, user *entities.User, requirements []entities.DietaryRequirement) error {
	return r.db.WithContext(ctx).
		Model(user).
		Association("DietaryRequirements").
		Replace(requirements)
}

func (r *userRepository) GetDietaryRequirementsByIDs(ctx context.Context, ids []string) ([]entities.DietaryRequirement, error) {
	var requirements []entities.DietaryRequirement
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&requirements).Error; err != nil {
		return nil, err
	}
	return requirements, nil
}

func (r *userRepository) GetAllDietaryRequirements(ctx context.Context) ([]entities.DietaryRequirement, error) {
	var requirements []entities.DietaryRequirement
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&requirements).Error; err != nil {
		return nil, err
	}
	return requirements, nil
}
