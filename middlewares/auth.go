package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/navya24shree/Campus-Event-Management-System/models"
	"github.com/navya24shree/Campus-Event-Management-System/utils"
)

// Context keys set by Authenticate for downstream handlers.
const (
	CtxUserID = "userId"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Authenticate requires a valid session token. Accepts "Bearer <token>" or
// a bare token; missing or unverifiable tokens end the request with 401.
func Authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	token := header
	if fields := strings.SplitN(header, " ", 2); len(fields) == 2 {
		token = fields[1]
	}

	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxRole, claims.Role)
	c.Next()
}

// RequireAdmin gates admin-only handlers. Must run after Authenticate.
func RequireAdmin(c *gin.Context) {
	if c.GetString(CtxRole) != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
	c.Next()
}
