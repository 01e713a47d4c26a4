package domain

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrTokenNotFound   = errors.New("failed to token not found")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrUnauthenticated = errors.New("authentication required")
)

// ErrorStatusCode maps a service error to the HTTP status it should be
// rendered with. Anything unmapped is an internal error.
func ErrorStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrTokenNotFound),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrLunchGroupNotFound),
		errors.Is(err, ErrParticipantNotFound),
		errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrVoteNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNotParticipant),
		errors.Is(err, ErrRemoveParticipantForbidden),
		errors.Is(err, ErrVoteNotOwned),
		errors.Is(err, ErrVotingClosed):
		return fiber.StatusForbidden
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrAlreadyParticipant),
		errors.Is(err, ErrAlreadyVoted):
		return fiber.StatusConflict
	case errors.Is(err, ErrParseUUID),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrDietaryRequirementInvalid),
		errors.Is(err, ErrInvalidStatusTransition),
		errors.Is(err, ErrRemoveOnlyParticipant),
		errors.Is(err, ErrVoteLimitReached):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
