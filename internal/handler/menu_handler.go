package handler

import (
	"net/http"

	"hrbot/internal/service"
	"hrbot/pkg/apierror"
	"hrbot/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService service.MenuService
	defaultPath string
}

// NewMenuHandler sets up the routing dependencies for menu endpoints.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		defaultPath: "fixtures/menu.csv",
	}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/menu")
	{
		menu.GET("", h.GetMenuPage)
		menu.GET("/:id", h.GetMenuItem)
		menu.POST("", h.CreateMenuItem)
		menu.PATCH("/:id", h.UpdateMenuItem)
		menu.DELETE("/:id", h.DeleteMenuItem)
		menu.POST("/download", h.Download)
		menu.POST("/upload", h.Upload)
	}
}

// GetMenuPage lists menu items a page at a time
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        page  query  int  false  "Page number"
// @Param        size  query  int  false  "Page size"
// @Success      200  {object}  pagination.Page[model.MenuItem]
// @Router       /menu [get]
func (h *MenuHandler) GetMenuPage(c *gin.Context) {
	page, err := h.menuService.GetMenuPage(c.Request.Context(), pagination.Parse(c))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetMenuItem fetches one menu item
// @Summary      Get menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      int  true  "Menu item id"
// @Success      200  {object}  model.MenuItem
// @Failure      404  {object}  apierror.Detail
// @Router       /menu/{id} [get]
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMenuItem creates a menu item
// @Summary      Create menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateMenuItemRequest  true  "New item"
// @Success      201      {object}  model.MenuItem
// @Failure      403      {object}  apierror.Detail
// @Failure      422      {object}  apierror.Detail
// @Router       /menu [post]
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req service.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid menu item payload"})
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem patches a menu item
// @Summary      Update menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Menu item id"
// @Param        payload  body      service.UpdateMenuItemRequest  true  "Changed fields"
// @Success      200      {object}  model.MenuItem
// @Failure      403      {object}  apierror.Detail
// @Failure      404      {object}  apierror.Detail
// @Router       /menu/{id} [patch]
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	var req service.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid menu item payload"})
		return
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), id, req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes a menu item; unknown ids are a no-op
// @Summary      Delete menu item
// @Tags         menu
// @Param        id   path  int  true  "Menu item id"
// @Success      204
// @Router       /menu/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Download exports the menu to a CSV file on the server
// @Summary      Export menu to CSV
// @Tags         menu
// @Accept       json
// @Param        payload  body  TransferRequest  false  "Target path"
// @Success      200
// @Router       /menu/download [post]
func (h *MenuHandler) Download(c *gin.Context) {
	var req TransferRequest
	_ = c.ShouldBindJSON(&req)
	if req.Path == "" {
		req.Path = h.defaultPath
	}

	if err := h.menuService.Download(c.Request.Context(), req.Path); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Upload replaces the menu from a CSV file on the server
// @Summary      Import menu from CSV
// @Tags         menu
// @Accept       json
// @Param        payload  body  TransferRequest  true  "Source path and acting user"
// @Success      200
// @Failure      403  {object}  apierror.Detail
// @Failure      422  {object}  apierror.Detail
// @Router       /menu/upload [post]
func (h *MenuHandler) Upload(c *gin.Context) {
	var req TransferRequest
	_ = c.ShouldBindJSON(&req)
	if req.Path == "" {
		req.Path = h.defaultPath
	}

	if err := h.menuService.Upload(c.Request.Context(), req.Path, req.ActorID); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}
