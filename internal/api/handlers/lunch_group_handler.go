package handlers

import (
	"lunch-chooser/domain"
	"lunch-chooser/internal/api/presenters"
	"lunch-chooser/pkg/lunchgroup"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LunchGroupHandler interface {
		GetLunchGroups(c *fiber.Ctx) error
		CreateLunchGroup(c *fiber.Ctx) error
		GetLunchGroupDetails(c *fiber.Ctx) error
		UpdateLunchGroup(c *fiber.Ctx) error
		AddParticipant(c *fiber.Ctx) error
		RemoveParticipant(c *fiber.Ctx) error
		CastVote(c *fiber.Ctx) error
		GetVotes(c *fiber.Ctx) error
		RemoveVote(c *fiber.Ctx) error
	}

	lunchGroupHandler struct {
		lunchGroupService lunchgroup.LunchGroupService
		validator         *validator.Validate
	}
)

func NewLunchGroupHandler(lunchGroupService lunchgroup.LunchGroupService, validator *validator.Validate) LunchGroupHandler {
	return &lunchGroupHandler{
		lunchGroupService: lunchGroupService,
		validator:         validator,
	}
}

func (h *lunchGroupHandler) GetLunchGroups(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := domain.ListLunchGroupsRequest{
		Date:   c.Query("date"),
		Status: c.Query("status"),
		UserID: c.Query("user_id"),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLunchGroups, err)
	}

	groups, err := h.lunchGroupService.GetLunchGroups(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedGetLunchGroups, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"lunch_groups": groups,
		"count":        len(groups),
	}, fiber.StatusOK, domain.MessageSuccessGetLunchGroups)
}

func (h *lunchGroupHandler) CreateLunchGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateLunchGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLunchGroup, err)
	}

	res, err := h.lunchGroupService.CreateLunchGroup(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedCreateLunchGroup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateLunchGroup)
}

func (h *lunchGroupHandler) GetLunchGroupDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")

	res, err := h.lunchGroupService.GetLunchGroupByID(c.Context(), groupID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedGetLunchGroup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLunchGroup)
}

func (h *lunchGroupHandler) UpdateLunchGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	req := new(domain.UpdateLunchGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLunchGroup, err)
	}

	res, err := h.lunchGroupService.UpdateLunchGroup(c.Context(), groupID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedUpdateLunchGroup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateLunchGroup)
}

func (h *lunchGroupHandler) AddParticipant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	req := new(domain.AddParticipantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddParticipant, err)
	}

	res, err := h.lunchGroupService.AddParticipant(c.Context(), groupID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedAddParticipant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddParticipant)
}

func (h *lunchGroupHandler) RemoveParticipant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	targetUserID := c.Params("userId")

	res, err := h.lunchGroupService.RemoveParticipant(c.Context(), groupID, targetUserID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedRemoveParticipant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveParticipant)
}

func (h *lunchGroupHandler) CastVote(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	req := new(domain.CastVoteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCastVote, err)
	}

	res, err := h.lunchGroupService.CastVote(c.Context(), groupID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedCastVote, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCastVote)
}

func (h *lunchGroupHandler) GetVotes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")

	res, err := h.lunchGroupService.GetVotes(c.Context(), groupID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedGetVotes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVotes)
}

func (h *lunchGroupHandler) RemoveVote(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	voteID := c.Params("voteId")

	if err := h.lunchGroupService.RemoveVote(c.Context(), groupID, voteID, userID); err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedRemoveVote, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveVote)
}
