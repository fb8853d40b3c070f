package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navya24shree/Campus-Event-Management-System/logger"
	"github.com/navya24shree/Campus-Event-Management-System/metrics"
	"github.com/navya24shree/Campus-Event-Management-System/models"
)

type eventRequest struct {
	Name                string `json:"name" binding:"required"`
	ClubName            string `json:"club_name" binding:"required"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailed_description"`
	ImageURL            string `json:"image_url"`
	Date                string `json:"date" binding:"required"`
	Time                string `json:"time" binding:"required"`
	Venue               string `json:"venue" binding:"required"`
	Status              string `json:"status"`
}

func (r *eventRequest) toEvent() models.Event {
	return models.Event{
		Name:                r.Name,
		ClubName:            r.ClubName,
		Description:         r.Description,
		DetailedDescription: r.DetailedDescription,
		ImageURL:            r.ImageURL,
		Date:                r.Date,
		Time:                r.Time,
		Venue:               r.Venue,
		Status:              r.Status,
	}
}

func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not parse event id"})
		return 0, false
	}
	return id, true
}

// GET /api/events?status=
func (d *deps) getEvents(c *gin.Context) {
	events, err := d.events.GetAll(c.Query("status"))
	if err != nil {
		logger.Log.Errorw("list events failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /api/events/:id
func (d *deps) getEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	event, err := d.events.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Log.Errorw("fetch event failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// POST /api/events (admin)
func (d *deps) createEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required event fields"})
		return
	}

	event := req.toEvent()
	if err := d.events.Create(&event); err != nil {
		logger.Log.Errorw("create event failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	metrics.EventsCreated.Inc()
	if d.inv != nil {
		d.inv.PurgeEventsList(c)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event created successfully", "eventId": event.ID})
}

// PUT /api/events/:id (admin). Full overwrite of all mutable fields,
// status included.
func (d *deps) updateEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required event fields"})
		return
	}

	event := req.toEvent()
	event.ID = id
	if event.Status == "" {
		event.Status = models.StatusUpcoming
	}
	if err := d.events.Update(&event); err != nil {
		logger.Log.Errorw("update event failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	if d.inv != nil {
		d.inv.PurgeEventsList(c)
		d.inv.PurgeEventItem(c)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// DELETE /api/events/:id (admin). Registrations and feedback go with it.
func (d *deps) deleteEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := d.events.Delete(id); err != nil {
		logger.Log.Errorw("delete event failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	if d.inv != nil {
		d.inv.PurgeEventsList(c)
		d.inv.PurgeEventItem(c)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
