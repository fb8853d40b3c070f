package routes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/navya24shree/Campus-Event-Management-System/logger"
	"github.com/navya24shree/Campus-Event-Management-System/metrics"
	"github.com/navya24shree/Campus-Event-Management-System/middlewares"
	"github.com/navya24shree/Campus-Event-Management-System/models"
)

// POST /api/registrations
func (d *deps) registerForEvent(c *gin.Context) {
	var req struct {
		EventID     int64  `json:"event_id" binding:"required"`
		StudentName string `json:"student_name" binding:"required"`
		Section     string `json:"section" binding:"required"`
		Sem         string `json:"sem" binding:"required"`
		Email       string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required registration fields"})
		return
	}

	reg := models.Registration{
		EventID:     req.EventID,
		StudentName: req.StudentName,
		Section:     req.Section,
		Sem:         req.Sem,
		Email:       req.Email,
	}
	if err := d.regs.Register(&reg); err != nil {
		if errors.Is(err, models.ErrDuplicateRegistration) {
			metrics.DuplicateRegistrations.Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already registered for this event"})
			return
		}
		logger.Log.Errorw("registration failed", "event_id", req.EventID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	metrics.Registrations.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Registered successfully"})
}

// GET /api/registrations/check?eventIds=csv
// The email always comes from the verified token, so a caller can only ever
// see their own registrations.
func (d *deps) checkRegistrations(c *gin.Context) {
	email := c.GetString(middlewares.CtxEmail)

	eventIDs := []int64{}
	if raw := c.Query("eventIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Could not parse event ids"})
				return
			}
			eventIDs = append(eventIDs, id)
		}
	}

	registered, err := d.regs.CheckRegistered(email, eventIDs)
	if err != nil {
		logger.Log.Errorw("check registrations failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check registrations"})
		return
	}
	c.JSON(http.StatusOK, registered)
}

// GET /api/registrations (admin)
func (d *deps) listRegistrations(c *gin.Context) {
	regs, err := d.regs.ListAll()
	if err != nil {
		logger.Log.Errorw("list registrations failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}
	c.JSON(http.StatusOK, regs)
}

// GET /api/registrations/event/:id (admin)
func (d *deps) listEventRegistrations(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	regs, err := d.regs.ListByEvent(id)
	if err != nil {
		logger.Log.Errorw("list event registrations failed", "event_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}
	c.JSON(http.StatusOK, regs)
}
