package handlers

import (
	"errors"
	"strconv"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/internal/api/presenters"
	"supplier-portal-backend/pkg/submission"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubmissionHandler interface {
		CreateSubmission(c *fiber.Ctx) error
		GetSubmissions(c *fiber.Ctx) error
		GetMySubmissions(c *fiber.Ctx) error
		GetSubmissionDetails(c *fiber.Ctx) error
		UploadReport(c *fiber.Ctx) error
	}

	submissionHandler struct {
		submissionService submission.SubmissionService
		validator         *validator.Validate
	}
)

func NewSubmissionHandler(submissionService submission.SubmissionService, validator *validator.Validate) SubmissionHandler {
	return &submissionHandler{
		submissionService: submissionService,
		validator:         validator,
	}
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}

func (h *submissionHandler) CreateSubmission(c *fiber.Ctx) error {
	supplierID := c.Locals("user_id").(string)
	req := new(domain.CreateSubmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSubmission, err)
	}

	res, err := h.submissionService.CreateSubmission(c.Context(), *req, supplierID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSupplierNotAuthorized):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedNotAuthorized, err)
		case errors.Is(err, domain.ErrIngredientNotFound),
			errors.Is(err, domain.ErrModelNotAssigned):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateSubmission, err)
		case errors.Is(err, domain.ErrRepository):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateSubmission, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSubmission, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSubmission)
}

func (h *submissionHandler) GetSubmissions(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	submissions, count, err := h.submissionService.GetSubmissions(
		c.Context(),
		c.Query("supplier_id"),
		c.Query("ingredient_id"),
		page, limit,
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubmissions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": submissions,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *submissionHandler) GetMySubmissions(c *fiber.Ctx) error {
	supplierID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	submissions, count, err := h.submissionService.GetSubmissions(
		c.Context(),
		supplierID,
		c.Query("ingredient_id"),
		page, limit,
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubmissions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": submissions,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *submissionHandler) GetSubmissionDetails(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	submissionID := c.Params("id")

	res, err := h.submissionService.GetSubmissionByID(c.Context(), submissionID, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSubmissionNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetSubmissions, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubmissions, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *submissionHandler) UploadReport(c *fiber.Ctx) error {
	supplierID := c.Locals("user_id").(string)
	submissionID := c.Params("id")

	file, err := c.FormFile("report")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.submissionService.UploadReport(c.Context(), submissionID, supplierID, file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSubmissionNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadReport, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUploadReport, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReport, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadReport)
}
