package handler

import (
	"net/http"

	"hrbot/internal/service"
	"hrbot/pkg/apierror"

	"github.com/gin-gonic/gin"
)

// TransferRequest names the CSV file a download or upload operates on.
type TransferRequest struct {
	Path    string `json:"path"`
	ActorID uint   `json:"actor_id"`
}

type SettingHandler struct {
	settingService service.SettingService
	defaultPath    string
}

// NewSettingHandler sets up the routing dependencies for setting endpoints.
func NewSettingHandler(settingService service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
		defaultPath:    "fixtures/settings.csv",
	}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *SettingHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("", h.ListSettings)
		settings.GET("/:id", h.GetSetting)
		settings.PATCH("/:id", h.UpdateSetting)
		settings.POST("/download", h.Download)
		settings.POST("/upload", h.Upload)
	}
}

// ListSettings lists all settings
// @Summary      List settings
// @Tags         settings
// @Produce      json
// @Success      200  {array}  model.Setting
// @Router       /settings [get]
func (h *SettingHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingService.ListSettings(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetSetting fetches one setting
// @Summary      Get setting
// @Tags         settings
// @Produce      json
// @Param        id   path      int  true  "Setting id"
// @Success      200  {object}  model.Setting
// @Failure      404  {object}  apierror.Detail
// @Router       /settings/{id} [get]
func (h *SettingHandler) GetSetting(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	setting, err := h.settingService.GetSetting(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpdateSetting changes one setting value
// @Summary      Update setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Setting id"
// @Param        payload  body      service.UpdateSettingRequest  true  "New value"
// @Success      200      {object}  model.Setting
// @Failure      403      {object}  apierror.Detail
// @Failure      422      {object}  apierror.Detail
// @Router       /settings/{id} [patch]
func (h *SettingHandler) UpdateSetting(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	var req service.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid setting payload"})
		return
	}

	setting, err := h.settingService.UpdateSetting(c.Request.Context(), id, req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// Download exports the settings table to a CSV file on the server
// @Summary      Export settings to CSV
// @Tags         settings
// @Accept       json
// @Param        payload  body  TransferRequest  false  "Target path"
// @Success      200
// @Router       /settings/download [post]
func (h *SettingHandler) Download(c *gin.Context) {
	var req TransferRequest
	_ = c.ShouldBindJSON(&req)
	if req.Path == "" {
		req.Path = h.defaultPath
	}

	if err := h.settingService.Download(c.Request.Context(), req.Path); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Upload replaces the settings table from a CSV file on the server
// @Summary      Import settings from CSV
// @Tags         settings
// @Accept       json
// @Param        payload  body  TransferRequest  true  "Source path and acting user"
// @Success      200
// @Failure      403  {object}  apierror.Detail
// @Failure      422  {object}  apierror.Detail
// @Router       /settings/upload [post]
func (h *SettingHandler) Upload(c *gin.Context) {
	var req TransferRequest
	_ = c.ShouldBindJSON(&req)
	if req.Path == "" {
		req.Path = h.defaultPath
	}

	if err := h.settingService.Upload(c.Request.Context(), req.Path, req.ActorID); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}
