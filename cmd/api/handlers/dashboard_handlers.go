package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/services"
)

// DashboardHandler godoc
// @Summary      Analytics dashboard
// @Description  Aggregates the caller's searches and posts into trends, keyword stats and summary totals. Never fails: a broken store yields an empty view.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.DashboardView
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /dashboard [get]
func DashboardHandler(authSvc *services.AuthService, dashboardSvc *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := requireOwnerFromHeader(c, authSvc)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, dashboardSvc.Dashboard(c.Request.Context(), ownerID))
	}
}
