package admin

import (
	"net/http"
	"strconv"

	"hrbot/internal/model"
	"hrbot/internal/service"
	"hrbot/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type menuPageData struct {
	Menu *pagination.Page[model.MenuItem]
}

func (s *Server) menuPage(c *gin.Context) {
	user := userFrom(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	menu, err := s.client.GetMenuPage(page, pagination.DefaultSize)
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	c.HTML(http.StatusOK, "menu", newPageData(user, menuPageData{Menu: menu}))
}

func (s *Server) createMenuItemPage(c *gin.Context) {
	c.HTML(http.StatusOK, "menu_create", newPageData(userFrom(c), nil))
}

func (s *Server) createMenuItem(c *gin.Context) {
	user := userFrom(c)
	req := service.CreateMenuItemRequest{
		ButtonText:  c.PostForm("button_text"),
		Answer:      c.PostForm("answer"),
		CreatedByID: user.ID,
	}
	if _, err := s.client.CreateMenuItem(req); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/menu")
}

func (s *Server) editMenuItemPage(c *gin.Context) {
	user := userFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	item, err := s.client.GetMenuItem(uint(id))
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	c.HTML(http.StatusOK, "menu_edit", newPageData(user, item))
}

func (s *Server) updateMenuItem(c *gin.Context) {
	user := userFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	buttonText := c.PostForm("button_text")
	answer := c.PostForm("answer")
	req := service.UpdateMenuItemRequest{
		ButtonText:  &buttonText,
		Answer:      &answer,
		UpdatedByID: user.ID,
	}
	if _, err := s.client.UpdateMenuItem(uint(id), req); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/menu")
}

func (s *Server) deleteMenuItem(c *gin.Context) {
	user := userFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}
	if err := s.client.DeleteMenuItem(uint(id)); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/menu")
}

func (s *Server) downloadMenu(c *gin.Context) {
	user := userFrom(c)
	if err := s.client.DownloadMenu(c.PostForm("path"), user.ID); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/menu")
}

func (s *Server) uploadMenu(c *gin.Context) {
	user := userFrom(c)
	if err := s.client.UploadMenu(c.PostForm("path"), user.ID); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/menu")
}
