package handler

import (
	"net/http"
	"time"

	"planta/internal/delivery/http/response"
	"planta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScheduleHandler holds dependencies for maintenance schedule handlers.
type ScheduleHandler struct {
	uc usecase.ScheduleUsecase
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Create handles the maintenance booking request.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var input usecase.CreateScheduleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	schedule, err := h.uc.CreateSchedule(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, schedule, "Schedule created successfully")
}

// Get handles the single schedule lookup request.
func (h *ScheduleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Schedule ID must be numeric")
	}

	schedule, err := h.uc.GetSchedule(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, schedule, "")
}

// ListByUser handles the per-user schedule listing request.
func (h *ScheduleHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "User ID must be numeric")
	}

	schedules, err := h.uc.ListSchedulesByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, schedules, "")
}

// ListByPlant handles the per-plant schedule listing request.
func (h *ScheduleHandler) ListByPlant(c echo.Context) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Plant ID must be numeric")
	}

	schedules, err := h.uc.ListSchedulesByPlant(c.Request().Context(), plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, schedules, "")
}

// List handles the schedule listing request. When both the start and end
// query parameters are present (YYYY-MM-DD), only schedules within the
// range are returned.
func (h *ScheduleHandler) List(c echo.Context) error {
	startRaw := c.QueryParam("start")
	endRaw := c.QueryParam("end")

	if startRaw == "" && endRaw == "" {
		schedules, err := h.uc.ListSchedules(c.Request().Context())
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, schedules, "")
	}

	start, err := time.Parse(time.DateOnly, startRaw)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "start must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(time.DateOnly, endRaw)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "end must be a YYYY-MM-DD date")
	}

	schedules, err := h.uc.ListSchedulesByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, schedules, "")
}

// UpdateStatus handles the schedule state machine transition request.
func (h *ScheduleHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Schedule ID must be numeric")
	}

	var input statusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	schedule, err := h.uc.UpdateStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, schedule, "Schedule status updated successfully")
}

// Delete handles the schedule deletion request.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Schedule ID must be numeric")
	}

	if err := h.uc.DeleteSchedule(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Schedule deleted successfully")
}
