package admin

import (
	"net/http"
	"net/url"
	"strconv"

	"hrbot/internal/model"
	"hrbot/internal/service"
	"hrbot/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type usersPageData struct {
	Users *pagination.Page[model.User]
	Roles []model.Role

	// Current filter values, echoed back into the form.
	FilterRole     string
	FilterIsActive string
	FilterName     string
}

func (s *Server) usersPage(c *gin.Context) {
	user := userFrom(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(pagination.DefaultSize))
	for _, name := range []string{"role", "is_active", "name"} {
		if v := c.Query(name); v != "" {
			query.Set(name, v)
		}
	}

	users, err := s.client.ListUsers(query)
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	roles, err := s.client.ListRoles()
	if err != nil {
		s.renderError(c, user, err)
		return
	}

	c.HTML(http.StatusOK, "users", newPageData(user, usersPageData{
		Users:          users,
		Roles:          roles,
		FilterRole:     c.Query("role"),
		FilterIsActive: c.Query("is_active"),
		FilterName:     c.Query("name"),
	}))
}

type userFormData struct {
	Target *model.User
	Roles  []model.Role
}

func (s *Server) createUserPage(c *gin.Context) {
	user := userFrom(c)
	roles, err := s.client.ListRoles()
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	c.HTML(http.StatusOK, "user_create", newPageData(user, userFormData{Roles: roles}))
}

func (s *Server) createUser(c *gin.Context) {
	user := userFrom(c)

	roleID, err := strconv.ParseUint(c.PostForm("role_id"), 10, 64)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}
	req := service.CreateUserRequest{
		Username:    c.PostForm("username"),
		Password:    c.PostForm("password"),
		RoleID:      uint(roleID),
		CreatedByID: user.ID,
	}
	if _, err := s.client.CreateUser(req); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

func (s *Server) editUserPage(c *gin.Context) {
	user := userFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	target, err := s.client.GetUser(uint(id))
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	roles, err := s.client.ListRoles()
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	c.HTML(http.StatusOK, "user_edit", newPageData(user, userFormData{Target: target, Roles: roles}))
}

func (s *Server) updateUser(c *gin.Context) {
	user := userFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	req := service.UpdateUserRequest{UpdatedByID: user.ID}
	if v := c.PostForm("password"); v != "" {
		req.Password = &v
	}
	if v := c.PostForm("role_id"); v != "" {
		roleID, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			r := uint(roleID)
			req.RoleID = &r
		}
	}
	isActive := c.PostForm("is_active") == "on"
	req.IsActive = &isActive

	if _, err := s.client.UpdateUser(uint(id), req); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}
