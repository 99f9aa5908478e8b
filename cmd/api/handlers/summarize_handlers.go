package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/dto"
	"social-listener/cmd/api/services"
	"social-listener/summarizer"
)

// SummarizeHandler godoc
// @Summary      Summarize content with Gemini
// @Description  Generates a short plain-text summary of the provided content.
// @Tags         summarize
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SummarizeRequestDTO  true  "content to summarize"
// @Success      200      {object}  dto.SummarizeResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      401      {object}  dto.ErrorResponseDTO
// @Failure      502      {object}  dto.ErrorResponseDTO
// @Failure      503      {object}  dto.ErrorResponseDTO
// @Router       /summarize [post]
func SummarizeHandler(authSvc *services.AuthService, summarizeSvc *services.SummarizeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireOwnerFromHeader(c, authSvc); !ok {
			return
		}

		var req dto.SummarizeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		summary, err := summarizeSvc.Summarize(c.Request.Context(), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSummarizerUnavailable):
				c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "summarizer_unavailable"})
			case errors.Is(err, summarizer.ErrEmptyInput):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "empty_summarize_input"})
			default:
				c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "summarization_failed"})
			}
			return
		}

		c.JSON(http.StatusOK, dto.SummarizeResponseDTO{Summary: summary})
	}
}
