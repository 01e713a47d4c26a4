package lunchgroup

// Lunch group lifecycle. Transitions run planning → voting → decided →
// completed, with backward edges voting → planning and decided → voting.
// completed is terminal.
const (
	StatusPlanning  = "planning"
	StatusVoting    = "voting"
	StatusDecided   = "decided"
	StatusCompleted = "completed"
)

var statusTransitions = map[string][]string{
	StatusPlanning:  {StatusVoting},
	StatusVoting:    {StatusDecided, StatusPlanning},
	StatusDecided:   {StatusCompleted, StatusVoting},
	StatusCompleted: {},
}

// CanTransition reports whether an explicit status update from one status to
// another is permitted.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NextStatusOnVote returns the status a group takes when a vote is cast.
// Casting the first vote while still planning advances the group to voting.
func NextStatusOnVote(current string) (string, bool) {
	if current == StatusPlanning {
		return StatusVoting, true
	}
	return current, false
}

// NextStatusOnSelection returns the status a group takes when a restaurant
// is selected. Selection decides the group unless it already is decided or
// completed.
func NextStatusOnSelection(current string) (string, bool) {
	if current == StatusDecided || current == StatusCompleted {
		return current, false
	}
	return StatusDecided, true
}

// VoteMutationAllowed reports whether votes may be cast or removed while the
// group holds the given status.
func VoteMutationAllowed(status string) bool {
	return status == StatusPlanning || status == StatusVoting
}
