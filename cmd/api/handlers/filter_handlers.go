package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/dto"
	"social-listener/cmd/api/services"
)

// FilterPostsHandler godoc
// @Summary      Filter a post collection
// @Description  Applies upvote/comment/subreddit/date/sentiment criteria to the posts in the request body. Stateless.
// @Tags         search
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.FilterRequestDTO  true  "posts and criteria"
// @Success      200      {array}   models.Post
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      401      {object}  dto.ErrorResponseDTO
// @Router       /filter-posts [post]
func FilterPostsHandler(authSvc *services.AuthService, filterSvc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireOwnerFromHeader(c, authSvc); !ok {
			return
		}

		var req dto.FilterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		filtered, err := filterSvc.Apply(req.Posts, req.Filters)
		if err != nil {
			if errors.Is(err, services.ErrInvalidDate) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_date_filter"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "filter_failed"})
			return
		}

		c.JSON(http.StatusOK, filtered)
	}
}
