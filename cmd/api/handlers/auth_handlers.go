package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-listener/cmd/api/dto"
	"social-listener/cmd/api/services"
	"social-listener/models"
)

func toUserDTO(u *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterHandler godoc
// @Summary      Register a new account
// @Description  Creates an account with a bcrypt-hashed password and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RegisterRequestDTO  true  "registration payload"
// @Success      200      {object}  dto.AuthResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      500      {object}  dto.ErrorResponseDTO
// @Router       /register [post]
func RegisterHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		user, token, err := authSvc.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "email_already_registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "registration_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.AuthResponseDTO{
			AccessToken: token,
			TokenType:   "bearer",
			User:        toUserDTO(user),
		})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequestDTO  true  "login payload"
// @Success      200      {object}  dto.AuthResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      401      {object}  dto.ErrorResponseDTO
// @Router       /login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		user, token, err := authSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "login_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.AuthResponseDTO{
			AccessToken: token,
			TokenType:   "bearer",
			User:        toUserDTO(user),
		})
	}
}

// MeHandler godoc
// @Summary      Current user profile
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /me [get]
func MeHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := requireOwnerFromHeader(c, authSvc)
		if !ok {
			return
		}

		user, err := authSvc.Profile(c.Request.Context(), ownerID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "user_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_profile"})
			return
		}

		c.JSON(http.StatusOK, toUserDTO(user))
	}
}
