package admin

import (
	"net/http"
	"strconv"

	"hrbot/internal/model"
	"hrbot/internal/service"

	"github.com/gin-gonic/gin"
)

type settingsPageData struct {
	Settings []model.Setting
}

func (s *Server) settingsPage(c *gin.Context) {
	user := userFrom(c)

	settings, err := s.client.ListSettings()
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	c.HTML(http.StatusOK, "settings", newPageData(user, settingsPageData{Settings: settings}))
}

func (s *Server) updateSetting(c *gin.Context) {
	user := userFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	req := service.UpdateSettingRequest{
		Value:       c.PostForm("value"),
		UpdatedByID: user.ID,
	}
	if _, err := s.client.UpdateSetting(uint(id), req); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/settings")
}

func (s *Server) downloadSettings(c *gin.Context) {
	user := userFrom(c)
	if err := s.client.DownloadSettings(c.PostForm("path"), user.ID); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/settings")
}

func (s *Server) uploadSettings(c *gin.Context) {
	user := userFrom(c)
	if err := s.client.UploadSettings(c.PostForm("path"), user.ID); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/settings")
}
