package handler

import (
	"net/http"

	"planta/internal/delivery/http/response"
	"planta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuggestionHandler holds dependencies for care-suggestion handlers.
type SuggestionHandler struct {
	uc usecase.SuggestionUsecase
}

// NewSuggestionHandler is the constructor for SuggestionHandler, injected by Fx.
func NewSuggestionHandler(uc usecase.SuggestionUsecase) *SuggestionHandler {
	return &SuggestionHandler{uc: uc}
}

// Create handles the suggestion creation request.
func (h *SuggestionHandler) Create(c echo.Context) error {
	var input usecase.SuggestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	suggestion, err := h.uc.CreateSuggestion(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, suggestion, "Suggestion created successfully")
}

// Get handles the single suggestion lookup request.
func (h *SuggestionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Suggestion ID must be numeric")
	}

	suggestion, err := h.uc.GetSuggestion(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestion, "")
}

// ListByPlant handles the per-plant suggestion listing request.
func (h *SuggestionHandler) ListByPlant(c echo.Context) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Plant ID must be numeric")
	}

	suggestions, err := h.uc.SuggestionsForPlant(c.Request().Context(), plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "")
}

// List handles the full suggestion listing request.
func (h *SuggestionHandler) List(c echo.Context) error {
	suggestions, err := h.uc.ListSuggestions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "")
}

// Update handles the suggestion update request.
func (h *SuggestionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Suggestion ID must be numeric")
	}

	var input usecase.SuggestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	suggestion, err := h.uc.UpdateSuggestion(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestion, "Suggestion updated successfully")
}

// Delete handles the suggestion deletion request.
func (h *SuggestionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Suggestion ID must be numeric")
	}

	if err := h.uc.DeleteSuggestion(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Suggestion deleted successfully")
}
