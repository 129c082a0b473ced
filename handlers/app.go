package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "github.com/mechriz/zen-fit/database/repository/appointment"
	"github.com/mechriz/zen-fit/models"
	"github.com/mechriz/zen-fit/services/app"
	"github.com/mechriz/zen-fit/services/catalog"
	"github.com/mechriz/zen-fit/services/insights"
	"github.com/mechriz/zen-fit/services/onboarding"
	"github.com/mechriz/zen-fit/services/payment"
	"github.com/mechriz/zen-fit/utils"
)

// AppHandler serves the consumer app. History is optional.
type AppHandler struct {
	Store   *app.AppStore
	Booking app.BookingService
	History appointmentRepo.AppointmentRepository
	Now     func() time.Time
}

func (h *AppHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *AppHandler) GetUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": h.Store.User()})
}

// PutUser replaces the user. A JSON null clears it.
func (h *AppHandler) PutUser(c *gin.Context) {
	var u *models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user", "details": err.Error()})
		return
	}
	h.Store.SetUser(u)
	c.JSON(http.StatusOK, gin.H{"user": h.Store.User()})
}

func (h *AppHandler) GetAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"appointments": h.Store.Appointments()})
}

func (h *AppHandler) PutAppointments(c *gin.Context) {
	appts, ok := bindAppointments(c)
	if !ok {
		return
	}
	h.Store.SetAppointments(appts)
	c.JSON(http.StatusOK, gin.H{"appointments": h.Store.Appointments()})
}

func (h *AppHandler) GetProgress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"progress": h.Store.Progress()})
}

func (h *AppHandler) PutProgress(c *gin.Context) {
	var p models.Progress
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress", "details": err.Error()})
		return
	}
	h.Store.SetProgress(p)
	c.JSON(http.StatusOK, gin.H{"progress": h.Store.Progress()})
}

func (h *AppHandler) GetOnboarded(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isOnboarded": h.Store.IsOnboarded()})
}

func (h *AppHandler) PutOnboarded(c *gin.Context) {
	var input struct {
		IsOnboarded *bool `json:"isOnboarded" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isOnboarded is required", "details": err.Error()})
		return
	}
	h.Store.SetIsOnboarded(*input.IsOnboarded)
	c.JSON(http.StatusOK, gin.H{"isOnboarded": h.Store.IsOnboarded()})
}

func (h *AppHandler) GetOnboardingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"steps":                   onboarding.StepTitles(),
		"fitnessGoalOptions":      onboarding.FitnessGoalOptions,
		"mentalHealthGoalOptions": onboarding.MentalHealthGoalOptions,
	})
}

// CompleteOnboarding turns a submitted onboarding form into the app user.
func (h *AppHandler) CompleteOnboarding(c *gin.Context) {
	logger := getLogger(c)

	var form onboarding.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid onboarding form", "details": err.Error()})
		return
	}
	wizard, err := onboarding.FromForm(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := wizard.Complete(h.now())
	if err != nil {
		var verr *onboarding.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid onboarding form", "fields": verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Store.CompleteOnboarding(*user)
	logger.Info("Onboarding completed", zap.String("userId", user.ID))
	c.JSON(http.StatusCreated, gin.H{"user": user, "isOnboarded": true})
}

func (h *AppHandler) GetSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sessionTypes": catalog.SessionOfferings(),
		"timeSlots":    h.Booking.TimeSlots(),
		"price":        app.SessionPrice,
	})
}

func (h *AppHandler) Book(c *gin.Context) {
	var req app.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking request", "details": err.Error()})
		return
	}
	appt, err := h.Booking.Book(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Warn("Booking rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

func (h *AppHandler) Pay(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req app.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment request", "details": err.Error()})
		return
	}

	err := h.Booking.Pay(c.Request.Context(), id, req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"appointmentId": id, "paymentStatus": models.PaymentPaid})
	case errors.Is(err, app.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app.ErrAlreadyPaid), errors.Is(err, app.ErrPaymentInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, payment.ErrUnsupportedMethod), errors.Is(err, payment.ErrInvalidCharge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Payment failed", zap.String("appointmentId", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment failed", err.Error())
	}
}

func (h *AppHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, insights.BuildHomeDashboard(h.Store.User(), h.Store.Progress(), h.Store.Appointments()))
}

func (h *AppHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, insights.BuildProfile(h.Store.User(), h.Store.Progress(), h.Store.Appointments()))
}

// GetHistory lists the user's archived appointments.
func (h *AppHandler) GetHistory(c *gin.Context) {
	if h.History == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "appointment archive is not configured", "")
		return
	}
	u := h.Store.User()
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no user signed up"})
		return
	}
	appts, err := h.History.ListByClient(c.Request.Context(), u.ID)
	if err != nil {
		getLogger(c).Error("Failed to read appointment archive", zap.String("userId", u.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to read appointment history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetHistoryItem returns one archived appointment of the signed-up user.
func (h *AppHandler) GetHistoryItem(c *gin.Context) {
	if h.History == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "appointment archive is not configured", "")
		return
	}
	u := h.Store.User()
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no user signed up"})
		return
	}
	appt, err := h.History.GetByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, appointmentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		getLogger(c).Error("Failed to read archived appointment", zap.String("appointmentId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to read appointment history", err.Error())
	case appt.ClientID != u.ID:
		c.JSON(http.StatusNotFound, gin.H{"error": appointmentRepo.ErrNotFound.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"appointment": appt})
	}
}
