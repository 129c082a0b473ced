package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mechriz/zen-fit/models"
	"github.com/mechriz/zen-fit/services/insights"
	"github.com/mechriz/zen-fit/services/therapist"
	"github.com/mechriz/zen-fit/utils"
)

// TherapistHandler serves the therapist portal.
type TherapistHandler struct {
	Store  *therapist.TherapistStore
	Tokens utils.TokenCache
	Now    func() time.Time
}

func (h *TherapistHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *TherapistHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	if !h.Store.Login(c.Request.Context(), input.Email, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, h.Store.Auth())
}

func (h *TherapistHandler) Logout(c *gin.Context) {
	if hash := c.GetString("tokenHash"); hash != "" {
		if err := h.Tokens.Drop(c.Request.Context(), hash); err != nil {
			getLogger(c).Warn("Failed to evict portal token", zap.Error(err))
		}
	}
	h.Store.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *TherapistHandler) GetAuth(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Auth())
}

// GetClients lists the roster filtered by ?q= and ?filter=.
func (h *TherapistHandler) GetClients(c *gin.Context) {
	filter := insights.ClientFilter(c.DefaultQuery("filter", string(insights.FilterAll)))
	if !filter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown client filter", "details": string(filter)})
		return
	}
	clients := insights.FilterClients(h.Store.Clients(), c.Query("q"), filter, h.now())
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *TherapistHandler) PutClients(c *gin.Context) {
	var clients []models.Client
	if err := c.ShouldBindJSON(&clients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clients", "details": err.Error()})
		return
	}
	h.Store.SetClients(clients)
	c.JSON(http.StatusOK, gin.H{"clients": h.Store.Clients()})
}

func (h *TherapistHandler) GetClient(c *gin.Context) {
	history, err := insights.BuildClientHistory(h.Store.Clients(), h.Store.Appointments(), h.Store.SessionNotes(), c.Param("id"), h.now())
	if err != nil {
		if errors.Is(err, insights.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to build client history", err.Error())
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetAppointments lists appointments, optionally for a single ?date=.
func (h *TherapistHandler) GetAppointments(c *gin.Context) {
	appts := h.Store.Appointments()
	if date := c.Query("date"); date != "" {
		appts = insights.ForDate(appts, date)
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *TherapistHandler) PutAppointments(c *gin.Context) {
	appts, ok := bindAppointments(c)
	if !ok {
		return
	}
	h.Store.SetAppointments(appts)
	c.JSON(http.StatusOK, gin.H{"appointments": h.Store.Appointments()})
}

func (h *TherapistHandler) UpdateAppointmentStatus(c *gin.Context) {
	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	appt, err := h.Store.UpdateAppointmentStatus(c.Param("id"), input.Status)
	switch {
	case err == nil:
		getLogger(c).Info("Appointment status updated", zap.String("appointmentId", appt.ID), zap.String("status", string(appt.Status)))
		c.JSON(http.StatusOK, gin.H{"appointment": appt})
	case errors.Is(err, therapist.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, therapist.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// GetNotes lists session notes, optionally for one ?clientId=.
func (h *TherapistHandler) GetNotes(c *gin.Context) {
	notes := h.Store.SessionNotes()
	if clientID := c.Query("clientId"); clientID != "" {
		notes = insights.NotesForClient(notes, clientID)
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (h *TherapistHandler) PutNotes(c *gin.Context) {
	var notes []models.SessionNote
	if err := c.ShouldBindJSON(&notes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notes", "details": err.Error()})
		return
	}
	h.Store.SetSessionNotes(notes)
	c.JSON(http.StatusOK, gin.H{"notes": h.Store.SessionNotes()})
}

func (h *TherapistHandler) AddNote(c *gin.Context) {
	var note models.SessionNote
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note", "details": err.Error()})
		return
	}
	if note.ClientID == "" || note.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientId and content are required"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"note": h.Store.AddSessionNote(note)})
}

// GetDashboard renders the portal home for ?date= (default today).
func (h *TherapistHandler) GetDashboard(c *gin.Context) {
	now := h.now()
	date := c.DefaultQuery("date", now.Format(insights.DateLayout))
	auth := h.Store.Auth()
	c.JSON(http.StatusOK, insights.BuildTherapistDashboard(auth.Therapist, h.Store.Clients(), h.Store.Appointments(), date, now))
}

// GetIntegrity reports dangling references between clients, appointments and notes.
func (h *TherapistHandler) GetIntegrity(c *gin.Context) {
	issues := insights.CheckReferences(h.Store.Clients(), h.Store.Appointments(), h.Store.SessionNotes())
	c.JSON(http.StatusOK, gin.H{"issues": issues, "consistent": len(issues) == 0})
}
