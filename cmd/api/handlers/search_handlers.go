package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/dto"
	"social-listener/cmd/api/services"
)

// SearchPostsHandler godoc
// @Summary      Search Reddit for a keyword
// @Description  Queries Reddit, scores each post's sentiment, persists the search and returns the enriched posts.
// @Tags         search
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SearchRequestDTO  true  "search payload"
// @Success      200      {array}   models.Post
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      401      {object}  dto.ErrorResponseDTO
// @Failure      503      {object}  dto.ErrorResponseDTO
// @Router       /search-posts [post]
func SearchPostsHandler(authSvc *services.AuthService, searchSvc *services.SearchService) gin.HandlerFunc {
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

		posts, err := searchSvc.Search(c.Request.Context(), ownerID, req.Keyword, req.Subreddit, req.Limit)
		if err != nil {
			if errors.Is(err, services.ErrRedditUnavailable) {
				c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "reddit_unavailable"})
				return
			}
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "reddit_search_failed"})
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

// SearchHistoryHandler godoc
// @Summary      Recent search history
// @Description  Returns the caller's most recent searches, newest first. Serves an empty list when the store is unreachable.
// @Tags         search
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   models.SearchRecord
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /search-history [get]
func SearchHistoryHandler(authSvc *services.AuthService, searchSvc *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := requireOwnerFromHeader(c, authSvc)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, searchSvc.History(c.Request.Context(), ownerID))
	}
}
