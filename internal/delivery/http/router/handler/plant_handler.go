package handler

import (
	"net/http"

	"planta/internal/delivery/http/response"
	"planta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlantHandler holds dependencies for plant catalog handlers.
type PlantHandler struct {
	uc usecase.PlantUsecase
}

// NewPlantHandler is the constructor for PlantHandler, injected by Fx.
func NewPlantHandler(uc usecase.PlantUsecase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

// Create handles the plant creation request.
func (h *PlantHandler) Create(c echo.Context) error {
	var input usecase.PlantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	plant, err := h.uc.CreatePlant(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plant, "Plant created successfully")
}

// Get handles the single plant lookup request.
func (h *PlantHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Plant ID must be numeric")
	}

	plant, err := h.uc.GetPlant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "")
}

// List handles the full catalog listing request.
func (h *PlantHandler) List(c echo.Context) error {
	plants, err := h.uc.ListPlants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plants, "")
}

// Update handles the plant update request.
func (h *PlantHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Plant ID must be numeric")
	}

	var input usecase.PlantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	plant, err := h.uc.UpdatePlant(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "Plant updated successfully")
}

// Delete handles the guarded plant deletion request. A plant still
// referenced by orders, schedules or suggestions is reported as a conflict.
func (h *PlantHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Plant ID must be numeric")
	}

	if err := h.uc.DeletePlant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Plant deleted successfully")
}
