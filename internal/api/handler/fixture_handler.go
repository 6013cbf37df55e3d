package handler

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/premierleague/fixtures-api/internal/api/metrics"
	"github.com/premierleague/fixtures-api/internal/core/domain"
	"github.com/premierleague/fixtures-api/internal/core/ports"
)

// scorePattern is the wire format for scores: "<int> : <int>".
var scorePattern = regexp.MustCompile(`^[0-9]+ : [0-9]+$`)

type FixtureHandler struct {
	service ports.FixtureService
}

func NewFixtureHandler(service ports.FixtureService) *FixtureHandler {
	return &FixtureHandler{service: service}
}

// Create handles POST /fixtures (admin only). The date must be in the future.
//
// @Summary      Create a fixture
// @Tags         fixtures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      fixtureRequest  true  "Fixture details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  errorResponse
// @Router       /fixtures [post]
func (h *FixtureHandler) Create(c echo.Context) error {
	var req fixtureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateFixtureInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       req.Date,
	})
	if err != nil {
		return err
	}

	metrics.FixturesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, envelope{Message: "fixture created", Data: toFixtureResponse(view)})
}

// Get handles GET /fixtures/one/:id. Teams are populated and the status is
// derived at read time.
//
// @Summary      Get a fixture
// @Tags         fixtures
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Fixture id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorResponse
// @Router       /fixtures/one/{id} [get]
func (h *FixtureHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Message: "fixture retrieved", Data: toFixtureResponse(view)})
}

// ListAll handles GET /fixtures/all — the cache-aside list. The envelope's
// source field reports whether the cache served the read.
//
// @Summary      List all fixtures
// @Tags         fixtures
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /fixtures/all [get]
func (h *FixtureHandler) ListAll(c echo.Context) error {
	result, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	source := "store"
	if result.FromCache {
		source = "cache"
	}
	metrics.CacheLookupsTotal.WithLabelValues(cacheResult(result.FromCache)).Inc()

	return c.JSON(http.StatusOK, envelope{
		Message: "fixtures retrieved",
		Data:    toFixtureListResponse(result.Items),
		Source:  source,
	})
}

// ListByStatus handles GET /fixtures/status?status=pending|ongoing|completed.
//
// @Summary      List fixtures by derived status
// @Tags         fixtures
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  true  "pending, ongoing or completed"
// @Success      200     {object}  envelope
// @Failure      400     {object}  errorResponse
// @Router       /fixtures/status [get]
func (h *FixtureHandler) ListByStatus(c echo.Context) error {
	views, err := h.service.ListByStatus(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Message: "fixtures retrieved", Data: toFixtureListResponse(views)})
}

// Search handles GET /fixtures/search?search= — a case-insensitive substring
// match on team names and links.
//
// @Summary      Search fixtures
// @Tags         fixtures
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring to match"
// @Success      200     {object}  envelope
// @Router       /fixtures/search [get]
func (h *FixtureHandler) Search(c echo.Context) error {
	views, err := h.service.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Message: "fixtures retrieved", Data: toFixtureListResponse(views)})
}

// Update handles PUT /fixtures/:id (admin only). Scores are excluded from
// this path; use UpdateScore.
//
// @Summary      Update a fixture
// @Tags         fixtures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Fixture id"
// @Param        body  body      fixtureRequest  true  "Fixture details"
// @Success      200   {object}  envelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /fixtures/{id} [put]
func (h *FixtureHandler) Update(c echo.Context) error {
	var req fixtureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CreateFixtureInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       req.Date,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Message: "fixture updated", Data: toFixtureResponse(view)})
}

// UpdateScore handles PUT /fixtures/score/:id (admin only). The write is
// rejected while the fixture has not kicked off.
//
// @Summary      Update a fixture score
// @Tags         fixtures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Fixture id"
// @Param        body  body      scoreRequest  true  "Score, e.g. 2 : 1"
// @Success      200   {object}  envelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /fixtures/score/{id} [put]
func (h *FixtureHandler) UpdateScore(c echo.Context) error {
	var req scoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !scorePattern.MatchString(req.Score) {
		return echo.NewHTTPError(http.StatusBadRequest, "score must have the form \"<home> : <away>\"")
	}

	view, err := h.service.UpdateScore(c.Request().Context(), c.Param("id"), req.Score)
	if err != nil {
		if errors.Is(err, domain.ErrFixtureNotStarted) {
			metrics.ScoreUpdatesTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.ScoreUpdatesTotal.WithLabelValues("applied").Inc()
	return c.JSON(http.StatusOK, envelope{Message: "fixture score updated", Data: toFixtureResponse(view)})
}

// Delete handles DELETE /fixtures/:id (admin only).
//
// @Summary      Delete a fixture
// @Tags         fixtures
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Fixture id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  errorResponse
// @Router       /fixtures/{id} [delete]
func (h *FixtureHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Message: "fixture deleted"})
}

func cacheResult(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
