package handler

import (
	"net/http"

	"hrbot/internal/service"
	"hrbot/pkg/apierror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler sets up the routing dependencies for session endpoints.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/auth/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
	}
}

// CreateSession authenticates a user and issues a session
// @Summary      Log in
// @Description  Authenticates by username and password, returning a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credentials"
// @Success      201      {object}  model.Session
// @Failure      401      {object}  apierror.Detail
// @Failure      422      {object}  apierror.Detail
// @Router       /auth/sessions [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Do not echo the failed input: it may contain the password.
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "username and password are required"})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession resolves a session token to its owning user
// @Summary      Resolve session
// @Tags         auth
// @Produce      json
// @Param        id   path      string  true  "Session token"
// @Success      200  {object}  model.User
// @Failure      401  {object}  apierror.Detail
// @Router       /auth/sessions/{id} [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	user, err := h.authService.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteSession logs a session out
// @Summary      Delete session
// @Tags         auth
// @Param        id   path  string  true  "Session token"
// @Success      204
// @Router       /auth/sessions/{id} [delete]
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
