package routes

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/navya24shree/Campus-Event-Management-System/middlewares"
	"github.com/navya24shree/Campus-Event-Management-System/models"
	"github.com/navya24shree/Campus-Event-Management-System/utils"
)

// Dependency container for the handlers.
type deps struct {
	users    models.UserRepository
	events   models.EventRepository
	regs     models.RegistrationRepository
	feedback models.FeedbackRepository
	inv      *utils.CacheInvalidator
}

// RegisterRoutes mounts the whole API surface. Repositories are injected by
// main so tests can swap in in-memory doubles.
func RegisterRoutes(
	server *gin.Engine,
	u models.UserRepository,
	e models.EventRepository,
	r models.RegistrationRepository,
	f models.FeedbackRepository,
	rdb *redis.Client,
	inv *utils.CacheInvalidator,
) {
	d := &deps{users: u, events: e, regs: r, feedback: f, inv: inv}

	server.Use(middlewares.RequestID)

	// Global per-IP limiter (steady 20 rps, burst 40).
	globalLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     20,
		Burst:   40,
		IdleTTL: 3 * time.Minute,
	})
	server.Use(globalLimiter.Middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}))

	server.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Campus Event Management Backend is running")
	})
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Credential endpoints get a much stricter per-IP limiter.
	authLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     0.5,
		Burst:   2,
		IdleTTL: 10 * time.Minute,
	})
	server.POST("/api/auth/register",
		authLimiter.Middleware(func(c *gin.Context) string { return "signup:" + c.ClientIP() }),
		d.signup,
	)
	server.POST("/api/auth/login",
		authLimiter.Middleware(func(c *gin.Context) string { return "login:" + c.ClientIP() }),
		d.login,
	)

	// Public catalog reads and open feedback submission.
	server.GET("/api/events", d.getEvents)
	server.GET("/api/events/:id", d.getEvent)
	server.POST("/api/feedback", d.submitFeedback)

	// Token-gated group: per-user burst limiter plus a daily quota.
	auth := server.Group("/api")
	auth.Use(middlewares.Authenticate)

	userLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     5,
		Burst:   10,
		IdleTTL: 10 * time.Minute,
	})
	auth.Use(userLimiter.Middleware(func(c *gin.Context) string {
		return "u:" + strconv.FormatInt(c.GetInt64(middlewares.CtxUserID), 10)
	}))
	auth.Use(middlewares.Quota(rdb, middlewares.QuotaRule{
		Limit:  2000,
		Window: 24 * time.Hour,
		KeyFn: func(c *gin.Context) string {
			uid := c.GetInt64(middlewares.CtxUserID)
			if uid == 0 {
				return ""
			}
			return fmt.Sprintf("quota:user:%d:day", uid)
		},
	}))

	auth.POST("/registrations", d.registerForEvent)
	auth.GET("/registrations/check", d.checkRegistrations)

	// Admin-only surface.
	admin := auth.Group("/")
	admin.Use(middlewares.RequireAdmin)

	admin.POST("/events", d.createEvent)
	admin.PUT("/events/:id", d.updateEvent)
	admin.DELETE("/events/:id", d.deleteEvent)
	admin.GET("/registrations", d.listRegistrations)
	admin.GET("/registrations/event/:id", d.listEventRegistrations)
	admin.GET("/feedback/event/:id", d.listEventFeedback)
}
