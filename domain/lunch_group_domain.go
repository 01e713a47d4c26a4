package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateLunchGroup   = "lunch group created successfully"
	MessageSuccessGetLunchGroups     = "lunch groups retrieved successfully"
	MessageSuccessGetLunchGroup      = "lunch group retrieved successfully"
	MessageSuccessUpdateLunchGroup   = "lunch group updated successfully"
	MessageSuccessAddParticipant     = "participant added successfully"
	MessageSuccessRemoveParticipant  = "participant removed successfully"
	MessageSuccessCastVote           = "vote cast successfully"
	MessageSuccessGetVotes           = "votes retrieved successfully"
	MessageSuccessRemoveVote         = "vote removed successfully"

	MessageFailedCreateLunchGroup  = "failed to create lunch group"
	MessageFailedGetLunchGroups    = "failed to retrieve lunch groups"
	MessageFailedGetLunchGroup     = "failed to retrieve lunch group"
	MessageFailedUpdateLunchGroup  = "failed to update lunch group"
	MessageFailedAddParticipant    = "failed to add participant"
	MessageFailedRemoveParticipant = "failed to remove participant"
	MessageFailedCastVote          = "failed to cast vote"
	MessageFailedGetVotes          = "failed to retrieve votes"
	MessageFailedRemoveVote        = "failed to remove vote"

	ErrLunchGroupNotFound         = errors.New("lunch group not found")
	ErrParticipantNotFound        = errors.New("participant not found")
	ErrNotParticipant             = errors.New("you must be a participant of this group")
	ErrAlreadyParticipant         = errors.New("user is already a participant")
	ErrRemoveOnlyParticipant      = errors.New("cannot remove the only participant")
	ErrRemoveParticipantForbidden = errors.New("only the creator can remove other participants")
	ErrInvalidStatusTransition    = errors.New("invalid status transition")
	ErrInvalidDate                = errors.New("invalid date")
	ErrVotingClosed               = errors.New("voting is only allowed while the group is planning or voting")
	ErrAlreadyVoted               = errors.New("you have already voted for this restaurant")
	ErrVoteNotFound               = errors.New("vote not found")
	ErrVoteNotOwned               = errors.New("you can only remove your own votes")
	ErrVoteLimitReached           = errors.New("vote limit for this group reached")
)

type (
	CreateLunchGroupRequest struct {
		Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
		LocationLat     float64 `json:"location_lat" validate:"min=-90,max=90"`
		LocationLng     float64 `json:"location_lng" validate:"min=-180,max=180"`
		LocationAddress string  `json:"location_address" validate:"omitempty"`
	}

	UpdateLunchGroupRequest struct {
		Status               string `json:"status" validate:"omitempty,oneof=planning voting decided completed"`
		SelectedRestaurantID string `json:"selected_restaurant_id" validate:"omitempty,uuid"`
	}

	ListLunchGroupsRequest struct {
		Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		Status string `json:"status" validate:"omitempty,oneof=planning voting decided completed"`
		UserID string `json:"user_id" validate:"omitempty,uuid"`
	}

	AddParticipantRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}

	CastVoteRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	}

	ParticipantResponse struct {
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Email    string    `json:"email"`
		JoinedAt time.Time `json:"joined_at"`
	}

	LunchGroupSummary struct {
		ID               string    `json:"id"`
		Date             time.Time `json:"date"`
		Status           string    `json:"status"`
		LocationLat      float64   `json:"location_lat"`
		LocationLng      float64   `json:"location_lng"`
		LocationAddress  string    `json:"location_address,omitempty"`
		ParticipantCount int       `json:"participant_count"`
		VoteCount        int       `json:"vote_count"`
		CreatedAt        time.Time `json:"created_at"`
	}

	SelectedRestaurantResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address string `json:"address"`
	}

	LunchGroupResponse struct {
		ID                            string                      `json:"id"`
		Date                          time.Time                   `json:"date"`
		Status                        string                      `json:"status"`
		LocationLat                   float64                     `json:"location_lat"`
		LocationLng                   float64                     `json:"location_lng"`
		LocationAddress               string                      `json:"location_address,omitempty"`
		AggregatedDietaryRequirements []string                    `json:"aggregated_dietary_requirements"`
		Participants                  []ParticipantResponse       `json:"participants"`
		Votes                         []VoteTallyEntry            `json:"votes,omitempty"`
		SelectedRestaurant            *SelectedRestaurantResponse `json:"selected_restaurant,omitempty"`
		CreatedAt                     time.Time                   `json:"created_at"`
		UpdatedAt                     time.Time                   `json:"updated_at"`
	}

	VoterResponse struct {
		UserID   string    `json:"user_id"`
		UserName string    `json:"user_name"`
		VotedAt  time.Time `json:"voted_at"`
	}

	VoteTallyEntry struct {
		RestaurantID      string          `json:"restaurant_id"`
		RestaurantName    string          `json:"restaurant_name"`
		RestaurantAddress string          `json:"restaurant_address,omitempty"`
		VoteCount         int             `json:"vote_count"`
		Voters            []VoterResponse `json:"voters"`
	}

	VoteResponse struct {
		ID             string    `json:"id"`
		RestaurantID   string    `json:"restaurant_id"`
		RestaurantName string    `json:"restaurant_name"`
		UserID         string    `json:"user_id"`
		UserName       string    `json:"user_name"`
		CreatedAt      time.Time `json:"created_at"`
	}

	ListVotesResponse struct {
		Votes            []VoteTallyEntry `json:"votes"`
		TotalVotes       int              `json:"total_votes"`
		TotalRestaurants int              `json:"total_restaurants"`
	}
)
