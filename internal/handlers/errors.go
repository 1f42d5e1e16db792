package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tasarim-galerisi/backend/internal/models"
)

// httpError maps domain errors onto HTTP status codes
func httpError(err error) error {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, models.ErrUnauthenticated.Error())
	case errors.Is(err, models.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, models.ErrForbidden.Error())
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, models.ErrNotFound.Error())
	case errors.Is(err, models.ErrUploadFailed):
		return echo.NewHTTPError(http.StatusBadGateway, "Image upload failed, please retry")
	case errors.Is(err, models.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, models.ErrStoreUnavailable.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
