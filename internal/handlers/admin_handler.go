package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tasarim-galerisi/backend/internal/middleware"
	"github.com/tasarim-galerisi/backend/internal/models"
	"github.com/tasarim-galerisi/backend/internal/repositories"
)

// AdminHandler handles administrator-only design lifecycle operations
type AdminHandler struct {
	designRepository repositories.DesignRepository
	voteRepository   repositories.VoteRepository
	trashRepository  repositories.TrashRepository
	auditRepository  repositories.AuditRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(designRepo repositories.DesignRepository, voteRepo repositories.VoteRepository, trashRepo repositories.TrashRepository, auditRepo repositories.AuditRepository) *AdminHandler {
	return &AdminHandler{
		designRepository: designRepo,
		voteRepository:   voteRepo,
		trashRepository:  trashRepo,
		auditRepository:  auditRepo,
	}
}

// RegisterAdminRoutes registers administrator routes; the group must already
// be guarded by the admin allow-list middleware
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.DELETE("/designs/:design_id", h.SoftDeleteDesign)
	g.GET("/trash", h.ListTrash)
	g.POST("/trash/:design_id/restore", h.RestoreDesign)
	g.DELETE("/trash/:design_id", h.PurgeDesign)
	g.GET("/audit", h.RecentAuditEntries)
}

// SoftDeleteDesign moves a design and its votes into the trash holding area
func (h *AdminHandler) SoftDeleteDesign(c echo.Context) error {
	principal, _ := middleware.CurrentPrincipal(c)
	designID := c.Param("design_id")
	ctx := c.Request().Context()

	design, err := h.designRepository.GetDesignByID(ctx, designID)
	if err != nil {
		return httpError(err)
	}

	votes, err := h.voteRepository.GetVotesByDesignID(ctx, designID)
	if err != nil {
		return httpError(err)
	}

	trashed := &models.TrashedDesign{
		ID:        designID,
		Design:    *design,
		Votes:     votes,
		DeletedBy: principal.Email,
		DeletedAt: time.Now(),
	}
	if err := h.trashRepository.CreateTrashedDesign(ctx, trashed); err != nil {
		return httpError(err)
	}

	if err := h.designRepository.DeleteDesign(ctx, designID); err != nil {
		return httpError(err)
	}
	if err := h.voteRepository.DeleteVotes(ctx, votes); err != nil {
		return httpError(err)
	}

	h.audit(models.AuditActionDelete, designID, principal.Email, design.Title)

	return c.NoContent(http.StatusNoContent)
}

// ListTrash retrieves all designs currently in the holding area
func (h *AdminHandler) ListTrash(c echo.Context) error {
	trashed, err := h.trashRepository.GetAllTrashedDesigns(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, trashed)
}

// RestoreDesign reinstates a trashed design and its votes verbatim under
// their original IDs
func (h *AdminHandler) RestoreDesign(c echo.Context) error {
	principal, _ := middleware.CurrentPrincipal(c)
	designID := c.Param("design_id")
	ctx := c.Request().Context()

	trashed, err := h.trashRepository.GetTrashedDesign(ctx, designID)
	if err != nil {
		return httpError(err)
	}

	if err := h.designRepository.RestoreDesign(ctx, &trashed.Design); err != nil {
		return httpError(err)
	}
	if err := h.voteRepository.RestoreVotes(ctx, trashed.Votes); err != nil {
		return httpError(err)
	}
	if err := h.trashRepository.DeleteTrashedDesign(ctx, designID); err != nil {
		return httpError(err)
	}

	h.audit(models.AuditActionRestore, designID, principal.Email, trashed.Design.Title)

	return c.JSON(http.StatusOK, trashed.Design)
}

// PurgeDesign erases a trashed design permanently. The operation is
// irreversible and therefore requires an explicit confirm parameter.
func (h *AdminHandler) PurgeDesign(c echo.Context) error {
	principal, _ := middleware.CurrentPrincipal(c)
	designID := c.Param("design_id")
	ctx := c.Request().Context()

	if c.QueryParam("confirm") != "true" {
		return echo.NewHTTPError(http.StatusBadRequest, "Permanent erasure requires confirm=true")
	}

	trashed, err := h.trashRepository.GetTrashedDesign(ctx, designID)
	if err != nil {
		return httpError(err)
	}

	if err := h.trashRepository.DeleteTrashedDesign(ctx, designID); err != nil {
		return httpError(err)
	}

	h.audit(models.AuditActionPurge, designID, principal.Email, trashed.Design.Title)

	return c.NoContent(http.StatusNoContent)
}

// RecentAuditEntries retrieves the latest recorded administrator actions
func (h *AdminHandler) RecentAuditEntries(c echo.Context) error {
	entries, err := h.auditRepository.GetRecentEntries(100)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// audit records an administrator action best-effort: a failed write is logged
// and never blocks the operation itself
func (h *AdminHandler) audit(action, designID, actorEmail, detail string) {
	entry := &models.AuditEntry{
		Action:     action,
		DesignID:   designID,
		ActorEmail: actorEmail,
		Detail:     detail,
	}
	if err := h.auditRepository.CreateEntry(entry); err != nil {
		log.Printf("Audit write failed for %s of design %s: %v", action, designID, err)
	}
}
