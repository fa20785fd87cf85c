package handler

import (
	"net/http"
	"strconv"

	"hrbot/internal/service"
	"hrbot/pkg/apierror"
	"hrbot/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler sets up the routing dependencies for message and
// employee endpoints.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup.
func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages")
	{
		messages.POST("", h.CreateMessage)
		messages.POST("/employees", h.CreateOrGetEmployee)
		messages.GET("/employees", h.ChatList)
		messages.GET("/employees/:id", h.GetEmployee)
		messages.PATCH("/employees/:id", h.ChangeEmployee)
		messages.GET("/employees/:id/chat", h.GetEmployeeChat)
		messages.POST("/employees/:id/chat/mark_as_read", h.MarkChatAsRead)
	}
}

// CreateMessage stores a message from an employee or a manager
// @Summary      Create message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateMessageRequest  true  "Message"
// @Success      201      {object}  model.Message
// @Failure      403      {object}  apierror.Detail
// @Failure      404      {object}  apierror.Detail
// @Router       /messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid message payload"})
		return
	}

	message, err := h.messageService.CreateMessage(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// CreateOrGetEmployee registers an employee on first bot contact
// @Summary      Get or create employee
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        payload  body      service.EmployeeRequest  true  "Employee"
// @Success      201      {object}  model.Employee
// @Failure      403      {object}  apierror.Detail
// @Router       /messages/employees [post]
func (h *MessageHandler) CreateOrGetEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid employee payload"})
		return
	}

	employee, err := h.messageService.GetOrCreateEmployee(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// ChatList lists employees with unread counts and last-message timestamps
// @Summary      List chats
// @Tags         messages
// @Produce      json
// @Success      200  {array}  repository.ChatListEntry
// @Router       /messages/employees [get]
func (h *MessageHandler) ChatList(c *gin.Context) {
	chats, err := h.messageService.ChatList(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// GetEmployee fetches one employee
// @Summary      Get employee
// @Tags         messages
// @Produce      json
// @Param        id   path      int  true  "Employee chat id"
// @Success      200  {object}  model.Employee
// @Failure      404  {object}  apierror.Detail
// @Router       /messages/employees/{id} [get]
func (h *MessageHandler) GetEmployee(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		return
	}
	employee, err := h.messageService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// ChangeEmployee bans, unbans, or renames an employee
// @Summary      Change employee
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Employee chat id"
// @Param        payload  body      service.ChangeEmployeeRequest  true  "Changed fields"
// @Success      200      {object}  model.Employee
// @Failure      403      {object}  apierror.Detail
// @Failure      404      {object}  apierror.Detail
// @Router       /messages/employees/{id} [patch]
func (h *MessageHandler) ChangeEmployee(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		return
	}
	var req service.ChangeEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.Detail{Detail: "invalid employee payload"})
		return
	}

	employee, err := h.messageService.ChangeEmployee(c.Request.Context(), id, req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// GetEmployeeChat returns the employee and a page of their message history
// @Summary      Get chat
// @Tags         messages
// @Produce      json
// @Param        id    path   int  true   "Employee chat id"
// @Param        page  query  int  false  "Page number"
// @Param        size  query  int  false  "Page size"
// @Success      200  {object}  service.EmployeeChat
// @Failure      404  {object}  apierror.Detail
// @Router       /messages/employees/{id}/chat [get]
func (h *MessageHandler) GetEmployeeChat(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		return
	}
	chat, err := h.messageService.GetEmployeeChat(c.Request.Context(), id, pagination.Parse(c))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// MarkChatAsRead flips every message of the chat to read
// @Summary      Mark chat as read
// @Tags         messages
// @Param        id   path  int  true  "Employee chat id"
// @Success      204
// @Failure      404  {object}  apierror.Detail
// @Router       /messages/employees/{id}/chat/mark_as_read [post]
func (h *MessageHandler) MarkChatAsRead(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		return
	}
	if err := h.messageService.MarkChatAsRead(c.Request.Context(), id); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseEmployeeID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.Detail{Detail: "requested employee does not exist"})
		return 0, err
	}
	return id, nil
}
