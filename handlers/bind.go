package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mechriz/zen-fit/models"
)

// bindAppointments decodes a full appointment list and rejects unknown enum
// values. It writes the 400 itself and reports whether the caller may go on.
func bindAppointments(c *gin.Context) ([]models.Appointment, bool) {
	var appts []models.Appointment
	if err := c.ShouldBindJSON(&appts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointments", "details": err.Error()})
		return nil, false
	}
	for _, a := range appts {
		if err := a.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointments", "details": err.Error()})
			return nil, false
		}
	}
	return appts, true
}
