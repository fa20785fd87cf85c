package admin

import (
	"log"
	"net/http"
	"strconv"

	"hrbot/internal/repository"
	"hrbot/internal/service"

	"github.com/gin-gonic/gin"
)

type chatsPageData struct {
	Chats []repository.ChatListEntry
}

func (s *Server) chatsPage(c *gin.Context) {
	user := userFrom(c)
	chats, err := s.client.ChatList()
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	c.HTML(http.StatusOK, "chats", newPageData(user, chatsPageData{Chats: chats}))
}

func (s *Server) chatPage(c *gin.Context) {
	user := userFrom(c)
	id, err := parseChatID(c)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	chat, err := s.client.GetEmployeeChat(id, page, chatPageSize)
	if err != nil {
		s.renderError(c, user, err)
		return
	}

	// Opening a chat counts as reading it.
	if err := s.client.MarkChatAsRead(id); err != nil {
		log.Printf("mark chat %d as read failed: %v", id, err)
	}

	c.HTML(http.StatusOK, "chat", newPageData(user, chat))
}

func (s *Server) replyInChat(c *gin.Context) {
	user := userFrom(c)
	id, err := parseChatID(c)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	if _, err := s.client.SendManagerMessage(id, user.ID, c.PostForm("text")); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/chats/"+strconv.FormatInt(id, 10))
}

// banEmployee toggles the ban flag.
func (s *Server) banEmployee(c *gin.Context) {
	user := userFrom(c)
	id, err := parseChatID(c)
	if err != nil {
		s.renderError(c, user, errNotFound)
		return
	}

	employee, err := s.client.GetEmployee(id)
	if err != nil {
		s.renderError(c, user, err)
		return
	}
	banned := !employee.IsBanned
	req := service.ChangeEmployeeRequest{IsBanned: &banned, UpdatedByID: user.ID}
	if _, err := s.client.ChangeEmployee(id, req); err != nil {
		s.renderError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/chats")
}

const chatPageSize = 50

func parseChatID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
