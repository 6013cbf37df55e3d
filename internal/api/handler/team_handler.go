package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/premierleague/fixtures-api/internal/core/ports"
)

type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// Create handles POST /teams (admin only).
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teamRequest  true  "Team details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, envelope{Message: "team created", Data: team})
}

// List handles GET /teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Message: "teams retrieved", Data: teams})
}

// Get handles GET /teams/:id.
//
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Team id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorResponse
// @Router       /teams/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	team, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Message: "team retrieved", Data: team})
}

// Update handles PUT /teams/:id (admin only).
//
// @Summary      Update a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Team id"
// @Param        body  body      teamRequest  true  "Team details"
// @Success      200   {object}  envelope
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /teams/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Message: "team updated", Data: team})
}

// Delete handles DELETE /teams/:id (admin only).
//
// @Summary      Delete a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Team id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorResponse
// @Router       /teams/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Message: "team deleted"})
}
