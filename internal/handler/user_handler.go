package handler

import (
	"net/http"
	"strconv"

	"hrbot/internal/repository"
	"hrbot/internal/service"
	"hrbot/pkg/apierror"
	"hrbot/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler sets up the routing dependencies for user endpoints.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/roles", h.ListRoles)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PATCH("/:id", h.UpdateUser)
	}
}

// ListRoles lists all roles
// @Summary      List roles
// @Tags         users
// @Produce      json
// @Success      200  {array}  model.Role
// @Router       /users/roles [get]
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.userService.ListRoles(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// ListUsers lists users with optional filters
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page       query  int     false  "Page number"
// @Param        size       query  int     false  "Page size"
// @Param        role       query  int     false  "Filter by role id"
// @Param        is_active  query  bool    false  "Filter by active flag"
// @Param        name       query  string  false  "Username substring filter"
// @Success      200  {object}  pagination.Page[model.User]
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var filter repository.UserFilter
	if v := c.Query("role"); v != "" {
		if roleID, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(roleID)
			filter.RoleID = &id
		}
	}
	if v := c.Query("is_active"); v != "" {
		if active, err := strconv.ParseBool(v); err == nil {
			filter.IsActive = &active
		}
	}
	filter.Name = c.Query("name")

	page, err := h.userService.ListUsers(c.Request.Context(), filter, pagination.Parse(c))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetUser fetches a single user
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  model.User
// @Failure      404  {object}  apierror.Detail
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser creates a user on behalf of an acting user
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateUserRequest  true  "New user"
// @Success      201      {object}  model.User
// @Failure      403      {object}  apierror.Detail
// @Failure      422      {object}  apierror.Detail
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Do not echo the failed input: it may contain the password.
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid user payload"})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser patches an existing user
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "User id"
// @Param        payload  body      service.UpdateUserRequest  true  "Changed fields"
// @Success      200      {object}  model.User
// @Failure      403      {object}  apierror.Detail
// @Failure      404      {object}  apierror.Detail
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid user payload"})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// parseUintParam reads a numeric path parameter, answering 404 on garbage
// since such a record cannot exist.
func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.Detail{Detail: "requested entry does not exist"})
		return 0, err
	}
	return uint(v), nil
}
