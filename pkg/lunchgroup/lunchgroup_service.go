package lunchgroup

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"lunch-chooser/domain"
	"lunch-chooser/entities"
	"lunch-chooser/internal/utils/mailing"
	"lunch-chooser/pkg/restaurant"
	"lunch-chooser/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listGroupsLimit = 50

type (
	LunchGroupService interface {
		GetLunchGroups(ctx context.Context, req domain.ListLunchGroupsRequest, requesterID string) ([]domain.LunchGroupSummary, error)
		CreateLunchGroup(ctx context.Context, req domain.CreateLunchGroupRequest, requesterID string) (domain.LunchGroupResponse, error)
		GetLunchGroupByID(ctx context.Context, groupID string, requesterID string) (domain.LunchGroupResponse, error)
		UpdateLunchGroup(ctx context.Context, groupID string, req domain.UpdateLunchGroupRequest, requesterID string) (domain.LunchGroupResponse, error)

		AddParticipant(ctx context.Context, groupID string, req domain.AddParticipantRequest, requesterID string) (domain.LunchGroupResponse, error)
		RemoveParticipant(ctx context.Context, groupID string, targetUserID string, requesterID string) (domain.LunchGroupResponse, error)

		CastVote(ctx context.Context, groupID string, req domain.CastVoteRequest, requesterID string) (domain.VoteResponse, error)
		GetVotes(ctx context.Context, groupID string, requesterID string) (domain.ListVotesResponse, error)
		RemoveVote(ctx context.Context, groupID string, voteID string, requesterID string) error
	}

	lunchGroupService struct {
		lunchGroupRepository LunchGroupRepository
		userRepository       user.UserRepository
		restaurantRepository restaurant.RestaurantRepository
		maxVotesPerUser      int
	}
)

// NewLunchGroupService wires the lunch group engine. maxVotesPerUser caps
// how many distinct restaurants one user may vote for within a group; 0
// disables the cap.
func NewLunchGroupService(
	lunchGroupRepository LunchGroupRepository,
	userRepository user.UserRepository,
	restaurantRepository restaurant.RestaurantRepository,
	maxVotesPerUser int,
) LunchGroupService {
	return &lunchGroupService{
		lunchGroupRepository: lunchGroupRepository,
		userRepository:       userRepository,
		restaurantRepository: restaurantRepository,
		maxVotesPerUser:      maxVotesPerUser,
	}
}

func (s *lunchGroupService) GetLunchGroups(ctx context.Context, req domain.ListLunchGroupsRequest, requesterID string) ([]domain.LunchGroupSummary, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		date = parsed
	}

	userID := req.UserID
	if userID == "" {
		userID = requesterID
	}

	groups, err := s.lunchGroupRepository.GetLunchGroups(ctx, date, req.Status, userID, listGroupsLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.LunchGroupSummary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, domain.LunchGroupSummary{
			ID:               group.ID.String(),
			Date:             group.Date,
			Status:           group.Status,
			LocationLat:      group.LocationLat,
			LocationLng:      group.LocationLng,
			LocationAddress:  group.LocationAddress,
			ParticipantCount: len(group.Participants),
			VoteCount:        len(group.Votes),
			CreatedAt:        group.CreatedAt,
		})
	}

	return summaries, nil
}

func (s *lunchGroupService) CreateLunchGroup(ctx context.Context, req domain.CreateLunchGroupRequest, requesterID string) (domain.LunchGroupResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.LunchGroupResponse{}, domain.ErrInvalidDate
	}

	creatorUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return domain.LunchGroupResponse{}, domain.ErrParseUUID
	}

	group := &entities.LunchGroup{
		ID:                            uuid.New(),
		Date:                          date,
		Status:                        StatusPlanning,
		LocationLat:                   req.LocationLat,
		LocationLng:                   req.LocationLng,
		LocationAddress:               req.LocationAddress,
		AggregatedDietaryRequirements: []string{},
		CreatedByID:                   creatorUUID,
	}

	creator := &entities.LunchGroupParticipant{
		ID:           uuid.New(),
		LunchGroupID: group.ID,
		UserID:       creatorUUID,
		JoinedAt:     time.Now(),
	}

	if err := s.lunchGroupRepository.CreateLunchGroup(ctx, group, creator); err != nil {
		return domain.LunchGroupResponse{}, err
	}

	// The creator is the first membership change, so the aggregate picks
	// up their dietary requirements right away.
	if err := s.recomputeAggregatedDietaryRequirements(ctx, group.ID.String()); err != nil {
		return domain.LunchGroupResponse{}, err
	}

	return s.GetLunchGroupByID(ctx, group.ID.String(), requesterID)
}

func (s *lunchGroupService) GetLunchGroupByID(ctx context.Context, groupID string, requesterID string) (domain.LunchGroupResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.LunchGroupResponse{}, err
	}

	if !isParticipant(group, requesterID) {
		return domain.LunchGroupResponse{}, domain.ErrNotParticipant
	}

	return toLunchGroupResponse(group), nil
}

func (s *lunchGroupService) UpdateLunchGroup(ctx context.Context, groupID string, req domain.UpdateLunchGroupRequest, requesterID string) (domain.LunchGroupResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.LunchGroupResponse{}, err
	}

	if !isParticipant(group, requesterID) {
		return domain.LunchGroupResponse{}, domain.ErrNotParticipant
	}

	if req.Status != "" {
		if !CanTransition(group.Status, req.Status) {
			return domain.LunchGroupResponse{}, fmt.Errorf(
				"%w: cannot transition from %s to %s",
				domain.ErrInvalidStatusTransition, group.Status, req.Status,
			)
		}
		group.Status = req.Status
	}

	if req.SelectedRestaurantID != "" {
		selected, err := s.restaurantRepository.GetRestaurantByID(ctx, req.SelectedRestaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.LunchGroupResponse{}, domain.ErrRestaurantNotFound
			}
			return domain.LunchGroupResponse{}, err
		}

		group.SelectedRestaurantID = &selected.ID
		group.SelectedRestaurant = selected
		if next, changed := NextStatusOnSelection(group.Status); changed {
			group.Status = next
		}
	}

	if err := s.lunchGroupRepository.UpdateLunchGroup(ctx, group); err != nil {
		return domain.LunchGroupResponse{}, err
	}

	return toLunchGroupResponse(group), nil
}

func (s *lunchGroupService) AddParticipant(ctx context.Context, groupID string, req domain.AddParticipantRequest, requesterID string) (domain.LunchGroupResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.LunchGroupResponse{}, err
	}

	if !isParticipant(group, requesterID) {
		return domain.LunchGroupResponse{}, domain.ErrNotParticipant
	}

	target, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LunchGroupResponse{}, domain.ErrUserNotFound
		}
		return domain.LunchGroupResponse{}, err
	}

	if isParticipant(group, req.UserID) {
		return domain.LunchGroupResponse{}, domain.ErrAlreadyParticipant
	}

	targetUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.LunchGroupResponse{}, domain.ErrParseUUID
	}

	participant := &entities.LunchGroupParticipant{
		ID:           uuid.New(),
		LunchGroupID: group.ID,
		UserID:       targetUUID,
		JoinedAt:     time.Now(),
	}

	if err := s.lunchGroupRepository.AddParticipant(ctx, participant); err != nil {
		// A concurrent add loses to the unique (group, user) index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.LunchGroupResponse{}, domain.ErrAlreadyParticipant
		}
		return domain.LunchGroupResponse{}, err
	}

	if err := s.recomputeAggregatedDietaryRequirements(ctx, groupID); err != nil {
		return domain.LunchGroupResponse{}, err
	}

	s.sendInviteMail(target, group)

	return s.GetLunchGroupByID(ctx, groupID, requesterID)
}

func (s *lunchGroupService) RemoveParticipant(ctx context.Context, groupID string, targetUserID string, requesterID string) (domain.LunchGroupResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.LunchGroupResponse{}, err
	}

	isRemovingSelf := targetUserID == requesterID
	isCreator := group.CreatedByID.String() == requesterID

	if !isRemovingSelf && !isCreator {
		return domain.LunchGroupResponse{}, domain.ErrRemoveParticipantForbidden
	}

	if !isParticipant(group, requesterID) {
		return domain.LunchGroupResponse{}, domain.ErrNotParticipant
	}

	if !isParticipant(group, targetUserID) {
		return domain.LunchGroupResponse{}, domain.ErrParticipantNotFound
	}

	// An ownerless, empty group must never exist.
	if group.CreatedByID.String() == targetUserID && len(group.Participants) == 1 {
		return domain.LunchGroupResponse{}, domain.ErrRemoveOnlyParticipant
	}

	if err := s.lunchGroupRepository.RemoveParticipant(ctx, groupID, targetUserID); err != nil {
		return domain.LunchGroupResponse{}, err
	}

	if err := s.recomputeAggregatedDietaryRequirements(ctx, groupID); err != nil {
		return domain.LunchGroupResponse{}, err
	}

	group, err = s.getGroup(ctx, groupID)
	if err != nil {
		return domain.LunchGroupResponse{}, err
	}
	return toLunchGroupResponse(group), nil
}

func (s *lunchGroupService) CastVote(ctx context.Context, groupID string, req domain.CastVoteRequest, requesterID string) (domain.VoteResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.VoteResponse{}, err
	}

	if !isParticipant(group, requesterID) {
		return domain.VoteResponse{}, domain.ErrNotParticipant
	}

	if !VoteMutationAllowed(group.Status) {
		return domain.VoteResponse{}, domain.ErrVotingClosed
	}

	target, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VoteResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.VoteResponse{}, err
	}

	if s.maxVotesPerUser > 0 {
		count, err := s.lunchGroupRepository.CountVotesByUser(ctx, groupID, requesterID)
		if err != nil {
			return domain.VoteResponse{}, err
		}
		if count >= int64(s.maxVotesPerUser) {
			return domain.VoteResponse{}, domain.ErrVoteLimitReached
		}
	}

	voterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return domain.VoteResponse{}, domain.ErrParseUUID
	}

	vote := &entities.Vote{
		ID:           uuid.New(),
		LunchGroupID: group.ID,
		UserID:       voterUUID,
		RestaurantID: target.ID,
		CreatedAt:    time.Now(),
	}

	if err := s.lunchGroupRepository.CreateVote(ctx, vote); err != nil {
		// Two racing identical votes both pass the check above; the unique
		// (group, user, restaurant) index rejects the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.VoteResponse{}, domain.ErrAlreadyVoted
		}
		return domain.VoteResponse{}, err
	}

	if next, changed := NextStatusOnVote(group.Status); changed {
		if err := s.lunchGroupRepository.UpdateLunchGroupStatus(ctx, groupID, next); err != nil {
			return domain.VoteResponse{}, err
		}
	}

	voterName := ""
	for _, p := range group.Participants {
		if p.UserID == voterUUID && p.User != nil {
			voterName = p.User.Name
		}
	}

	return domain.VoteResponse{
		ID:             vote.ID.String(),
		RestaurantID:   target.ID.String(),
		RestaurantName: target.Name,
		UserID:         requesterID,
		UserName:       voterName,
		CreatedAt:      vote.CreatedAt,
	}, nil
}

func (s *lunchGroupService) GetVotes(ctx context.Context, groupID string, requesterID string) (domain.ListVotesResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.ListVotesResponse{}, err
	}

	if !isParticipant(group, requesterID) {
		return domain.ListVotesResponse{}, domain.ErrNotParticipant
	}

	votes, err := s.lunchGroupRepository.GetVotesByGroup(ctx, groupID)
	if err != nil {
		return domain.ListVotesResponse{}, err
	}

	tally := TallyVotes(votes)

	return domain.ListVotesResponse{
		Votes:            tally,
		TotalVotes:       len(votes),
		TotalRestaurants: len(tally),
	}, nil
}

func (s *lunchGroupService) RemoveVote(ctx context.Context, groupID string, voteID string, requesterID string) error {
	vote, err := s.lunchGroupRepository.GetVoteByID(ctx, voteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrVoteNotFound
		}
		return err
	}

	if vote.LunchGroupID.String() != groupID {
		return domain.ErrVoteNotFound
	}

	if vote.UserID.String() != requesterID {
		return domain.ErrVoteNotOwned
	}

	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if !VoteMutationAllowed(group.Status) {
		return domain.ErrVotingClosed
	}

	return s.lunchGroupRepository.DeleteVote(ctx, voteID)
}

// recomputeAggregatedDietaryRequirements re-reads every current
// participant's requirement set and persists the union. Always a full
// recompute, never an incremental update, so the aggregate cannot drift.
func (s *lunchGroupService) recomputeAggregatedDietaryRequirements(ctx context.Context, groupID string) error {
	participants, err := s.lunchGroupRepository.GetParticipants(ctx, groupID)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for _, participant := range participants {
		if participant.User == nil {
			continue
		}
		for _, requirement := range participant.User.DietaryRequirements {
			seen[requirement.ID] = struct{}{}
		}
	}

	union := make([]string, 0, len(seen))
	for id := range seen {
		union = append(union, id)
	}
	sort.Strings(union)

	return s.lunchGroupRepository.UpdateAggregatedDietaryRequirements(ctx, groupID, union)
}

func (s *lunchGroupService) getGroup(ctx context.Context, groupID string) (*entities.LunchGroup, error) {
	group, err := s.lunchGroupRepository.GetLunchGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLunchGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *lunchGroupService) sendInviteMail(target *entities.User, group *entities.LunchGroup) {
	if target.Email == "" {
		return
	}
	subject := "You've been added to a lunch group"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You were added to a lunch group for %s. Open the app to vote on a restaurant.</p>",
		target.Name, group.Date.Format("2006-01-02"),
	)
	if err := mailing.SendMail(target.Email, subject, body); err != nil {
		log.Warnf("failed to send invite mail to %s: %v", target.Email, err)
	}
}

func isParticipant(group *entities.LunchGroup, userID string) bool {
	for _, participant := range group.Participants {
		if participant.UserID.String() == userID {
			return true
		}
	}
	return false
}

func toLunchGroupResponse(group *entities.LunchGroup) domain.LunchGroupResponse {
	participants := make([]domain.ParticipantResponse, 0, len(group.Participants))
	for _, participant := range group.Participants {
		p := domain.ParticipantResponse{
			ID:       participant.UserID.String(),
			JoinedAt: participant.JoinedAt,
		}
		if participant.User != nil {
			p.Name = participant.User.Name
			p.Email = participant.User.Email
		}
		participants = append(participants, p)
	}

	response := domain.LunchGroupResponse{
		ID:                            group.ID.String(),
		Date:                          group.Date,
		Status:                        group.Status,
		LocationLat:                   group.LocationLat,
		LocationLng:                   group.LocationLng,
		LocationAddress:               group.LocationAddress,
		AggregatedDietaryRequirements: group.AggregatedDietaryRequirements,
		Participants:                  participants,
		Votes:                         TallyVotes(toVotePointers(group.Votes)),
		CreatedAt:                     group.CreatedAt,
		UpdatedAt:                     group.UpdatedAt,
	}

	if group.SelectedRestaurant != nil {
		response.SelectedRestaurant = &domain.SelectedRestaurantResponse{
			ID:      group.SelectedRestaurant.ID.String(),
			Name:    group.SelectedRestaurant.Name,
			Address: group.SelectedRestaurant.Address,
		}
	}

	return response
}

func toVotePointers(votes []entities.Vote) []*entities.Vote {
	result := make([]*entities.Vote, 0, len(votes))
	for i := range votes {
		result = append(result, &votes[i])
	}
	return result
}
