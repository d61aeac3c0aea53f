package handlers

import (
	"errors"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/internal/api/presenters"
	"supplier-portal-backend/pkg/qualitymodel"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ModelHandler interface {
		AddModel(c *fiber.Ctx) error
		UpdateModel(c *fiber.Ctx) error
		DeleteModel(c *fiber.Ctx) error
		GetModels(c *fiber.Ctx) error
		GetModelDetails(c *fiber.Ctx) error
		ActivateModel(c *fiber.Ctx) error
	}

	modelHandler struct {
		modelService qualitymodel.ModelService
		validator    *validator.Validate
	}
)

func NewModelHandler(modelService qualitymodel.ModelService, validator *validator.Validate) ModelHandler {
	return &modelHandler{
		modelService: modelService,
		validator:    validator,
	}
}

func (h *modelHandler) AddModel(c *fiber.Ctx) error {
	req := new(domain.AddModelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddModel, err)
	}

	res, err := h.modelService.AddModel(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddModel, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddModel)
}

func (h *modelHandler) UpdateModel(c *fiber.Ctx) error {
	modelID := c.Params("id")
	req := new(domain.UpdateModelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateModel, err)
	}

	if err := h.modelService.UpdateModel(c.Context(), modelID, *req); err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateModel, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateModel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateModel)
}

func (h *modelHandler) DeleteModel(c *fiber.Ctx) error {
	modelID := c.Params("id")

	if err := h.modelService.DeleteModel(c.Context(), modelID); err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteModel, err)
		}
		if errors.Is(err, domain.ErrModelReferenced) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteModel, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteModel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteModel)
}

func (h *modelHandler) GetModels(c *fiber.Ctx) error {
	res, err := h.modelService.GetModels(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetModels, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetModels)
}

func (h *modelHandler) GetModelDetails(c *fiber.Ctx) error {
	modelID := c.Params("id")

	res, err := h.modelService.GetModelByID(c.Context(), modelID)
	if err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetModels, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetModels, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetModels)
}

func (h *modelHandler) ActivateModel(c *fiber.Ctx) error {
	modelID := c.Params("id")

	if err := h.modelService.ActivateModel(c.Context(), modelID); err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedActivateModel, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedActivateModel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessActivateModel)
}
