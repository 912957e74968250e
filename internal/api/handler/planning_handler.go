package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planisoins/planning-api/internal/api/metrics"
	"github.com/planisoins/planning-api/internal/core/domain"
	"github.com/planisoins/planning-api/internal/core/ports"
)

// PlanningHandler handles HTTP requests for the planning grid.
type PlanningHandler struct {
	service ports.PlanningService
}

func NewPlanningHandler(service ports.PlanningService) *PlanningHandler {
	return &PlanningHandler{service: service}
}

// GetMonth handles GET /v1/planning/:year/:month.
//
// @Summary      Get the planning grid for one month
// @Tags         planning
// @Produce      json
// @Security     BearerAuth
// @Param        year   path      int  true  "Year (e.g. 2024)"
// @Param        month  path      int  true  "Month (1-12)"
// @Success      200    {object}  monthResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/planning/{year}/{month} [get]
func (h *PlanningHandler) GetMonth(c echo.Context) error {
	year, month, err := monthParams(c)
	if err != nil {
		return err
	}

	snap, err := h.service.MonthSnapshot(c.Request().Context(), year, month)
	if err != nil {
		return err
	}

	if snap.Roster == nil {
		snap.Roster = []domain.User{}
	}
	if snap.Entries == nil {
		snap.Entries = []domain.PlanningEntry{}
	}

	return c.JSON(http.StatusOK, monthResponse{
		Year:    snap.Year,
		Month:   int(snap.Month),
		Days:    snap.Days(),
		Roster:  snap.Roster,
		Entries: snap.Entries,
		Legend:  legend(),
	})
}

// SetStatus handles PUT /v1/planning/:user_id/:date.
//
// @Summary      Assign a day status to one (user, date) cell
// @Tags         planning
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string            true  "Target user id"
// @Param        date     path      string            true  "Date (YYYY-MM-DD)"
// @Param        body     body      setStatusRequest  true  "Status and optional note"
// @Success      200      {object}  domain.PlanningEntry
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /v1/planning/{user_id}/{date} [put]
func (h *PlanningHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	entry, err := h.service.SetStatus(
		c.Request().Context(),
		actor,
		c.Param("user_id"),
		c.Param("date"),
		domain.DayStatus(req.Status),
		req.Note,
	)
	if err != nil {
		if err == domain.ErrForbidden {
			metrics.PermissionDeniedTotal.WithLabelValues("set_status").Inc()
		}
		return err
	}

	metrics.UpdatesTotal.WithLabelValues("status", string(entry.Status)).Inc()
	return c.JSON(http.StatusOK, entry)
}

// SetNote handles PUT /v1/planning/:user_id/:date/note.
//
// @Summary      Attach a note to one (user, date) cell
// @Tags         planning
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string          true  "Target user id"
// @Param        date     path      string          true  "Date (YYYY-MM-DD)"
// @Param        body     body      setNoteRequest  true  "Note text (blank clears)"
// @Success      200      {object}  domain.PlanningEntry
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /v1/planning/{user_id}/{date}/note [put]
func (h *PlanningHandler) SetNote(c echo.Context) error {
	var req setNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	entry, err := h.service.SetNote(
		c.Request().Context(),
		actor,
		c.Param("user_id"),
		c.Param("date"),
		req.Note,
	)
	if err != nil {
		if err == domain.ErrForbidden {
			metrics.PermissionDeniedTotal.WithLabelValues("set_note").Inc()
		}
		return err
	}

	metrics.UpdatesTotal.WithLabelValues("note", string(entry.Status)).Inc()
	return c.JSON(http.StatusOK, entry)
}

// monthParams parses and bounds-checks the :year/:month path segments.
func monthParams(c echo.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 9999 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid month")
	}
	return year, time.Month(month), nil
}
