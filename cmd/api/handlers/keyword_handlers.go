package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/dto"
	"social-listener/cmd/api/services"
)

// SaveKeywordHandler godoc
// @Summary      Save a tracked keyword
// @Tags         keywords
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SearchRequestDTO  true  "keyword payload"
// @Success      200      {object}  models.SavedKeyword
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      401      {object}  dto.ErrorResponseDTO
// @Failure      500      {object}  dto.ErrorResponseDTO
// @Router       /save-keyword [post]
func SaveKeywordHandler(authSvc *services.AuthService, keywordSvc *services.KeywordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := requireOwnerFromHeader(c, authSvc)
		if !ok {
			return
		}

		var req dto.SearchRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		saved, err := keywordSvc.Save(c.Request.Context(), ownerID, req.Keyword, req.Subreddit)
		if err != nil {
			if errors.Is(err, services.ErrBlankKeyword) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "blank_keyword"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_save_keyword"})
			return
		}

		c.JSON(http.StatusOK, saved)
	}
}

// ListKeywordsHandler godoc
// @Summary      List saved keywords
// @Description  Returns the caller's active keywords. Serves an empty list when the store is unreachable.
// @Tags         keywords
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   models.SavedKeyword
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /saved-keywords [get]
func ListKeywordsHandler(authSvc *services.AuthService, keywordSvc *services.KeywordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := requireOwnerFromHeader(c, authSvc)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, keywordSvc.List(c.Request.Context(), ownerID))
	}
}

// DeleteKeywordHandler godoc
// @Summary      Delete a saved keyword
// @Description  Soft delete: the keyword flips to the deleted state and disappears from listings.
// @Tags         keywords
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "keyword id"
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /saved-keywords/{id} [delete]
func DeleteKeywordHandler(authSvc *services.AuthService, keywordSvc *services.KeywordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := requireOwnerFromHeader(c, authSvc)
		if !ok {
			return
		}

		if err := keywordSvc.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
			if errors.Is(err, services.ErrKeywordNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "keyword_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_delete_keyword"})
			return
		}

		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "keyword_deleted"})
	}
}
