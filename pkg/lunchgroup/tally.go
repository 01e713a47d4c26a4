package lunchgroup

import (
	"sort"

	"lunch-chooser/domain"
	"lunch-chooser/entities"
)

// TallyVotes aggregates a group's votes into one entry per restaurant with
// the vote count and the ordered voter list. Entries are sorted by
// descending vote count; ties keep the order restaurants were first voted
// for, so the result is deterministic for a given vote sequence.
func TallyVotes(votes []*entities.Vote) []domain.VoteTallyEntry {
	entryIndex := make(map[string]int)
	entries := make([]domain.VoteTallyEntry, 0)

	for _, vote := range votes {
		restaurantID := vote.RestaurantID.String()

		idx, ok := entryIndex[restaurantID]
		if !ok {
			entry := domain.VoteTallyEntry{
				RestaurantID: restaurantID,
				Voters:       []domain.VoterResponse{},
			}
			if vote.Restaurant != nil {
				entry.RestaurantName = vote.Restaurant.Name
				entry.RestaurantAddress = vote.Restaurant.Address
			}
			entries = append(entries, entry)
			idx = len(entries) - 1
			entryIndex[restaurantID] = idx
		}

		voter := domain.VoterResponse{
			UserID:  vote.UserID.String(),
			VotedAt: vote.CreatedAt,
		}
		if vote.User != nil {
			voter.UserName = vote.User.Name
		}

		entries[idx].Voters = append(entries[idx].Voters, voter)
		entries[idx].VoteCount++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].VoteCount > entries[j].VoteCount
	})

	return entries
}
