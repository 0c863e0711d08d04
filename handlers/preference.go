// File: handlers/preference.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"entrega/models"
	"entrega/services/delivery"
	"entrega/utils"
)

// PreferenceHandler exposes the delivery-preference operations.
type PreferenceHandler struct {
	Service delivery.PreferenceService
}

func NewPreferenceHandler(svc delivery.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{Service: svc}
}

func ownerParam(c *gin.Context) (string, bool) {
	ownerID := c.Param("ownerID")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing owner ID in path"})
		return "", false
	}
	return ownerID, true
}

func dayParam(c *gin.Context) (models.Weekday, bool) {
	day, ok := models.ParseWeekday(c.Param("day"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown day name"})
		return "", false
	}
	return day, true
}

func slotIndexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot index"})
		return 0, false
	}
	return index, true
}

// GetPreferencesHandler returns the canonical weekly availability, defaulting
// when no row exists yet.
func (h *PreferenceHandler) GetPreferencesHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	av, err := h.Service.GetPreferences(c.Request.Context(), ownerID)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// ReplaceAvailabilityHandler stores a whole availability value, normalized.
func (h *PreferenceHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	var req models.WeeklyAvailability
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	av, err := h.Service.ReplaceAvailability(c.Request.Context(), ownerID, &req)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// ToggleDayHandler enables or disables one day.
func (h *PreferenceHandler) ToggleDayHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var body struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing enabled flag in request body"})
		return
	}

	av, err := h.Service.ToggleDay(c.Request.Context(), ownerID, day, *body.Enabled)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// AddSlotHandler appends a slot to a day.
func (h *PreferenceHandler) AddSlotHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	av, err := h.Service.AddSlot(c.Request.Context(), ownerID, day)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// UpdateSlotHandler merges a partial slot edit.
func (h *PreferenceHandler) UpdateSlotHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	index, ok := slotIndexParam(c)
	if !ok {
		return
	}

	var patch models.TimeSlotPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	av, err := h.Service.UpdateSlot(c.Request.Context(), ownerID, day, index, patch)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// RemoveSlotHandler deletes a slot; out-of-bounds indexes are a silent no-op.
func (h *PreferenceHandler) RemoveSlotHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	index, ok := slotIndexParam(c)
	if !ok {
		return
	}

	av, err := h.Service.RemoveSlot(c.Request.Context(), ownerID, day, index)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// SetPriorityHandler replaces the priority; unrecognized values fall back to
// normal during normalization.
func (h *PreferenceHandler) SetPriorityHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	var body struct {
		Priority models.Priority `json:"priority"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	av, err := h.Service.SetPriority(c.Request.Context(), ownerID, body.Priority)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// SetNotesHandler replaces the free-form notes.
func (h *PreferenceHandler) SetNotesHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	av, err := h.Service.SetNotes(c.Request.Context(), ownerID, body.Notes)
	if err != nil {
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// ScheduleReminderHandler enqueues a delivery reminder at the next window.
func (h *PreferenceHandler) ScheduleReminderHandler(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	var body struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing reminder title"})
		return
	}

	fireAt, err := h.Service.ScheduleReminder(c.Request.Context(), ownerID, body.Title, body.Body)
	if err != nil {
		if errors.Is(err, delivery.ErrNoWindow) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Reminder scheduled",
		"fireAt":  fireAt.Format(time.RFC3339),
	})
}
