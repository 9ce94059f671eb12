package handlers

import (
	"net/http"

	"futsalbook/internal/middleware"
	"futsalbook/internal/models"

	"github.com/gin-gonic/gin"
)

// ListVenues - GET /api/venues
func (h *Handlers) ListVenues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"venues": h.catalog.List()})
}

// GetVenue - GET /api/venues/:id
func (h *Handlers) GetVenue(c *gin.Context) {
	venue := h.catalog.GetByID(c.Param("id"))
	if venue == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"venue": venue})
}

// SelectVenue - PUT /api/session/venue
// Sets the session's selected venue, the precondition for booking.
func (h *Handlers) SelectVenue(c *gin.Context) {
	var req models.SelectVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := middleware.SessionFromContext(c)
	venue, err := h.services.Bookings.SelectVenue(c.Request.Context(), sess, req.VenueID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"venue": venue})
}

// ListSlots - GET /api/slots?date=yyyy-mm-dd
// Returns the 15 bookable hourly slots for the date. Availability is
// freshly drawn per request and deliberately not stable across calls.
func (h *Handlers) ListSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	slots, err := h.services.Slots.Generate(date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
