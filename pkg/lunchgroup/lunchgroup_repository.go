package lunchgroup

import (
	"context"
	"time"

	"lunch-chooser/entities"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type (
	LunchGroupRepository interface {
		CreateLunchGroup(ctx context.Context, group *entities.LunchGroup, creator *entities.LunchGroupParticipant) error
		GetLunchGroupByID(ctx context.Context, id string) (*entities.LunchGroup, error)
		GetLunchGroups(ctx context.Context, date time.Time, status string, userID string, limit int) ([]*entities.LunchGroup, error)
		UpdateLunchGroup(ctx context.Context, group *entities.LunchGroup) error
		UpdateLunchGroupStatus(ctx context.Context, id string, status string) error
		UpdateAggregatedDietaryRequirements(ctx context.Context, id string, requirements pq.StringArray) error

		AddParticipant(ctx context.Context, participant *entities.LunchGroupParticipant) error
		RemoveParticipant(ctx context.Context, groupID, userID string) error
		GetParticipants(ctx context.Context, groupID string) ([]*entities.LunchGroupParticipant, error)

		CreateVote(ctx context.Context, vote *entities.Vote) error
		GetVoteByID(ctx context.Context, voteID string) (*entities.Vote, error)
		GetVotesByGroup(ctx context.Context, groupID string) ([]*entities.Vote, error)
		CountVotesByUser(ctx context.Context, groupID, userID string) (int64, error)
		DeleteVote(ctx context.Context, voteID string) error
	}

	lunchGroupRepository struct {
		db *gorm.DB
	}
)

func NewLunchGroupRepository(db *gorm.DB) LunchGroupRepository {
	return &lunchGroupRepository{db: db}
}

func (r *lunchGroupRepository) CreateLunchGroup(ctx context.Context, group *entities.LunchGroup, creator *entities.LunchGroupParticipant) error {
	// The creator joins in the same transaction so a group can never exist
	// without at least one participant.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return tx.Create(creator).Error
	})
}

func (r *lunchGroupRepository) GetLunchGroupByID(ctx context.Context, id string) (*entities.LunchGroup, error) {
	var group entities.LunchGroup
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Preload("Votes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Votes.User").
		Preload("Votes.Restaurant").
		Preload("SelectedRestaurant").
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *lunchGroupRepository) GetLunchGroups(ctx context.Context, date time.Time, status string, userID string, limit int) ([]*entities.LunchGroup, error) {
	var groups []*entities.LunchGroup

	query := r.db.WithContext(ctx).
		Model(&entities.LunchGroup{}).
		Where("date = ?", date)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	if userID != "" {
		query = query.
			Joins("JOIN lunch_group_participants ON lunch_group_participants.lunch_group_id = lunch_groups.id").
			Where("lunch_group_participants.user_id = ?", userID)
	}

	if err := query.
		Preload("Participants").
		Preload("Votes").
		Order("created_at DESC").
		Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *lunchGroupRepository) UpdateLunchGroup(ctx context.Context, group *entities.LunchGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *lunchGroupRepository) UpdateLunchGroupStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.LunchGroup{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *lunchGroupRepository) UpdateAggregatedDietaryRequirements(ctx context.Context, id string, requirements pq.StringArray) error {
	return r.db.WithContext(ctx).
		Model(&entities.LunchGroup{}).
		Where("id = ?", id).
		Update("aggregated_dietary_requirements", requirements).Error
}

func (r *lunchGroupRepository) AddParticipant(ctx context.Context, participant *entities.LunchGroupParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *lunchGroupRepository) RemoveParticipant(ctx context.Context, groupID, userID string) error {
	return r.db.WithContext(ctx).
		Where("lunch_group_id = ? AND user_id = ?", groupID, userID).
		Delete(&entities.LunchGroupParticipant{}).Error
}

func (r *lunchGroupRepository) GetParticipants(ctx context.Context, groupID string) ([]*entities.LunchGroupParticipant, error) {
	var participants []*entities.LunchGroupParticipant
	if err := r.db.WithContext(ctx).
		Preload("User.DietaryRequirements").
		Where("lunch_group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *lunchGroupRepository) CreateVote(ctx context.Context, vote *entities.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *lunchGroupRepository) GetVoteByID(ctx context.Context, voteID string) (*entities.Vote, error) {
	var vote entities.Vote
	if err := r.db.WithContext(ctx).
		Where("id = ?", voteID).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *lunchGroupRepository) GetVotesByGroup(ctx context.Context, groupID string) ([]*entities.Vote, error) {
	var votes []*entities.Vote
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Restaurant").
		Where("lunch_group_id = ?", groupID).
		Order("created_at ASC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

func (r *lunchGroupRepository) CountVotesByUser(ctx context.Context, groupID, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Vote{}).
		Where("lunch_group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *lunchGroupRepository) DeleteVote(ctx context.Context, voteID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", voteID).
		Delete(&entities.Vote{}).Error
}
