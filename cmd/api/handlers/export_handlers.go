package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/dto"
	"social-listener/cmd/api/services"
)

// ExportCSVHandler godoc
// @Summary      Export posts as CSV
// @Description  Exports the caller's stored posts with a fixed column order, optionally restricted to one keyword.
// @Tags         export
// @Security     BearerAuth
// @Produce      json
// @Param        keyword  query     string  false  "restrict to one keyword"
// @Success      200      {object}  dto.ExportResponseDTO
// @Failure      401      {object}  dto.ErrorResponseDTO
// @Failure      500      {object}  dto.ErrorResponseDTO
// @Router       /export/csv [get]
func ExportCSVHandler(authSvc *services.AuthService, exportSvc *services.ExportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := requireOwnerFromHeader(c, authSvc)
		if !ok {
			return
		}

		filename, content, err := exportSvc.ExportCSV(c.Request.Context(), ownerID, c.Query("keyword"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "export_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.ExportResponseDTO{
			Filename: filename,
			Content:  content,
		})
	}
}
