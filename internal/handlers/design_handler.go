package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tasarim-galerisi/backend/internal/imghost"
	"github.com/tasarim-galerisi/backend/internal/middleware"
	"github.com/tasarim-galerisi/backend/internal/models"
	"github.com/tasarim-galerisi/backend/internal/ranking"
	"github.com/tasarim-galerisi/backend/internal/repositories"
	"github.com/tasarim-galerisi/backend/internal/stream"
)

const (
	defaultTopN = 3
	maxTopN     = 25
)

// DesignHandler handles HTTP requests related to design submissions and reads
type DesignHandler struct {
	designRepository repositories.DesignRepository
	imageHost        imghost.Client
	hub              *stream.Hub
}

// NewDesignHandler creates a new DesignHandler
func NewDesignHandler(designRepo repositories.DesignRepository, imageHost imghost.Client, hub *stream.Hub) *DesignHandler {
	return &DesignHandler{
		designRepository: designRepo,
		imageHost:        imageHost,
		hub:              hub,
	}
}

// RegisterReadRoutes registers the unauthenticated gallery read routes
func (h *DesignHandler) RegisterReadRoutes(g *echo.Group) {
	g.GET("/designs", h.ListDesigns)
	g.GET("/designs/top", h.TopDesigns)
	g.GET("/designs/stream", h.StreamDesigns)
}

// RegisterWriteRoutes registers the authenticated submission route
func (h *DesignHandler) RegisterWriteRoutes(g *echo.Group) {
	g.POST("/designs", h.CreateDesign)
}

// CreateDesign handles a multipart design submission: the image is uploaded
// to the external image host first, then the design record is created with a
// zero rating. No implicit vote is cast for the submitter.
func (h *DesignHandler) CreateDesign(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return httpError(models.ErrUnauthenticated)
	}

	var req models.CreateDesignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "An image file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read the uploaded image")
	}
	defer src.Close()

	imageURL, err := h.imageHost.Upload(c.Request().Context(), src)
	if err != nil {
		return httpError(err)
	}

	ownerName := principal.Name
	if ownerName == "" {
		ownerName = "Anonim"
	}

	design := &models.Design{
		Title:       req.Title,
		ImageURL:    imageURL,
		Rating:      0,
		OwnerID:     principal.UID,
		OwnerName:   ownerName,
		OwnerAvatar: principal.AvatarURL,
	}

	if _, err := h.designRepository.CreateDesign(c.Request().Context(), design); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, design)
}

// ListDesigns retrieves the full design collection, newest first
func (h *DesignHandler) ListDesigns(c echo.Context) error {
	designs, err := h.designRepository.GetAllDesigns(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, designs)
}

// TopDesigns retrieves the highest-rated designs
func (h *DesignHandler) TopDesigns(c echo.Context) error {
	n := defaultTopN
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Parameter n must be an integer")
		}
		n = parsed
	}
	if n < 1 {
		n = 1
	}
	if n > maxTopN {
		n = maxTopN
	}

	designs, err := h.designRepository.GetAllDesigns(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ranking.TopN(designs, n))
}

// StreamDesigns serves the design collection as server-sent events. Every
// event carries the full current collection, pushed whenever the backing
// store reports a change. The subscription is released when the request
// context ends.
func (h *DesignHandler) StreamDesigns(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	id, ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case designs, ok := <-ch:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(designs)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", payload); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}
