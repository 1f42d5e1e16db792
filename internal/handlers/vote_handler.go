package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tasarim-galerisi/backend/internal/middleware"
	"github.com/tasarim-galerisi/backend/internal/models"
	"github.com/tasarim-galerisi/backend/internal/voting"
)

// VoteHandler handles HTTP requests related to votes
type VoteHandler struct {
	engine *voting.Engine
}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler(engine *voting.Engine) *VoteHandler {
	return &VoteHandler{engine: engine}
}

// RegisterVoteRoutes registers vote-related routes
func (h *VoteHandler) RegisterVoteRoutes(g *echo.Group) {
	g.POST("/designs/:design_id/votes", h.CastVote)
	g.GET("/votes", h.MyVotes)
}

// CastVote casts, flips or retracts the caller's vote on a design and returns
// the design's updated rating
func (h *VoteHandler) CastVote(c echo.Context) error {
	principal, _ := middleware.CurrentPrincipal(c)
	designID := c.Param("design_id")

	var req models.CastVoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	value, err := models.ParseVoteValue(req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.engine.CastOrToggleVote(c.Request().Context(), principal, designID, value)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"design_id": designID, "rating": rating})
}

// MyVotes returns the caller's current vote state keyed by design ID
func (h *VoteHandler) MyVotes(c echo.Context) error {
	principal, _ := middleware.CurrentPrincipal(c)

	votes, err := h.engine.UserVotes(c.Request().Context(), principal)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, votes)
}
