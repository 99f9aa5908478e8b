package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/dto"
	"social-listener/cmd/api/services"
	"social-listener/db"
)

// requireOwnerFromHeader extracts the owner id from the Authorization
// header for endpoints that require a login. On failure it writes the 401
// response and returns false; no core logic runs after that.
func requireOwnerFromHeader(c *gin.Context, authSvc *services.AuthService) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "missing_authorization_header"})
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_authorization_header"})
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "empty_token"})
		return "", false
	}

	ownerID, err := authSvc.ParseAccessToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_token"})
		return "", false
	}

	return ownerID, true
}

// HealthStatus reports which collaborators are configured.
type HealthStatus struct {
	RedditConfigured bool
	GeminiConfigured bool
}

// HealthHandler godoc
// @Summary      Service health
// @Description  Pings Mongo and reports whether the Reddit and Gemini clients are configured.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func HealthHandler(status HealthStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"mongo":  "down",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"reddit_api": status.RedditConfigured,
			"gemini_api": status.GeminiConfigured,
			"database":   true,
		})
	}
}
