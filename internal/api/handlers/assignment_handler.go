package handlers

import (
	"errors"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/internal/api/presenters"
	"supplier-portal-backend/pkg/assignment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AssignmentHandler interface {
		AssignModel(c *fiber.Ctx) error
		UnassignModel(c *fiber.Ctx) error
		GetModelAssignments(c *fiber.Ctx) error
		SetSupplierAssignment(c *fiber.Ctx) error
		ReplaceSupplierAssignments(c *fiber.Ctx) error
		GetSupplierAssignments(c *fiber.Ctx) error
	}

	assignmentHandler struct {
		assignmentService assignment.AssignmentService
		validator         *validator.Validate
	}
)

func NewAssignmentHandler(assignmentService assignment.AssignmentService, validator *validator.Validate) AssignmentHandler {
	return &assignmentHandler{
		assignmentService: assignmentService,
		validator:         validator,
	}
}

func assignmentErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrSupplierNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

func (h *assignmentHandler) AssignModel(c *fiber.Ctx) error {
	req := new(domain.AssignModelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignModel, err)
	}

	if err := h.assignmentService.AssignModel(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, assignmentErrorStatus(err), domain.MessageFailedAssignModel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAssignModel)
}

func (h *assignmentHandler) UnassignModel(c *fiber.Ctx) error {
	ingredientID := c.Params("ingredientId")

	if err := h.assignmentService.UnassignModel(c.Context(), ingredientID); err != nil {
		return presenters.ErrorResponse(c, assignmentErrorStatus(err), domain.MessageFailedUnassignModel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnassignModel)
}

func (h *assignmentHandler) GetModelAssignments(c *fiber.Ctx) error {
	res, err := h.assignmentService.ListModelAssignments(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetModelAssignments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetModelAssignments)
}

func (h *assignmentHandler) SetSupplierAssignment(c *fiber.Ctx) error {
	req := new(domain.SetSupplierAssignmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetSupplier, err)
	}

	if err := h.assignmentService.SetSupplierEnabled(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, assignmentErrorStatus(err), domain.MessageFailedSetSupplier, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetSupplier)
}

func (h *assignmentHandler) ReplaceSupplierAssignments(c *fiber.Ctx) error {
	ingredientID := c.Params("ingredientId")
	req := new(domain.ReplaceSupplierAssignmentsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceSuppliers, err)
	}

	if err := h.assignmentService.ReplaceSupplierAssignments(c.Context(), ingredientID, req.SupplierIDs); err != nil {
		return presenters.ErrorResponse(c, assignmentErrorStatus(err), domain.MessageFailedReplaceSuppliers, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReplaceSuppliers)
}

func (h *assignmentHandler) GetSupplierAssignments(c *fiber.Ctx) error {
	ingredientID := c.Query("ingredient_id")

	res, err := h.assignmentService.ListSupplierAssignments(c.Context(), ingredientID)
	if err != nil {
		return presenters.ErrorResponse(c, assignmentErrorStatus(err), domain.MessageFailedGetSuppliers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuppliers)
}
