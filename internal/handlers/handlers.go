package handlers

import (
	"errors"
	"net/http"

	apperrors "futsalbook/internal/errors"
	"futsalbook/internal/service"
	"futsalbook/internal/venues"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services *service.Services
	catalog  *venues.Catalog
}

func NewHandlers(services *service.Services, catalog *venues.Catalog) *Handlers {
	return &Handlers{
		services: services,
		catalog:  catalog,
	}
}

// respondError maps the shared sentinel errors onto HTTP responses.
// Anything unrecognized is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Email sudah terdaftar"})
	case errors.Is(err, apperrors.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Illegal status transition"})
	case errors.Is(err, apperrors.ErrNoDraftBooking):
		c.JSON(http.StatusConflict, gin.H{"error": "No draft booking, restart the booking flow"})
	case errors.Is(err, apperrors.ErrVenueNotSelected),
		errors.Is(err, apperrors.ErrPaymentMethod),
		errors.Is(err, apperrors.ErrProofTooLarge),
		errors.Is(err, apperrors.ErrProofNotImage),
		errors.Is(err, apperrors.ErrInvalidDate),
		errors.Is(err, apperrors.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
