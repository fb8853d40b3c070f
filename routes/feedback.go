package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navya24shree/Campus-Event-Management-System/logger"
	"github.com/navya24shree/Campus-Event-Management-System/metrics"
	"github.com/navya24shree/Campus-Event-Management-System/models"
)

// POST /api/feedback — deliberately unauthenticated; anyone may submit,
// and the same email may submit more than once for an event.
func (d *deps) submitFeedback(c *gin.Context) {
	var req struct {
		EventID int64  `json:"event_id" binding:"required"`
		Name    string `json:"name" binding:"required"`
		Section string `json:"section" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback: all fields required, rating must be 1-5"})
		return
	}

	fb := models.Feedback{
		EventID: req.EventID,
		Name:    req.Name,
		Section: req.Section,
		Email:   req.Email,
		Rating:  req.Rating,
	}
	if err := d.feedback.Submit(&fb); err != nil {
		logger.Log.Errorw("submit feedback failed", "event_id", req.EventID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}

	metrics.FeedbackSubmitted.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted successfully"})
}

// GET /api/feedback/event/:id (admin)
func (d *deps) listEventFeedback(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	fbs, err := d.feedback.ListByEvent(id)
	if err != nil {
		logger.Log.Errorw("list feedback failed", "event_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, fbs)
}
