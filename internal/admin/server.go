// Package admin serves the management web panel. It renders server-side
// HTML and talks to the backend REST API on behalf of the signed-in user,
// identified by the session_id cookie.
package admin

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"hrbot/internal/apiclient"
	"hrbot/internal/middleware"
	"hrbot/internal/model"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionCookie = "session_id"

// cookieMaxAge matches the backend session lifetime.
const cookieMaxAge = 7 * 24 * 60 * 60

type Server struct {
	client *apiclient.Client
	router *gin.Engine
}

func NewServer(client *apiclient.Client) *Server {
	s := &Server{client: client}

	router := gin.Default()
	router.Use(middleware.RequestID())

	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")))

	router.GET("/", s.root)
	router.GET("/login", s.loginPage)
	router.POST("/login", s.login)
	router.GET("/logout", s.logout)

	authed := router.Group("", s.requireUser)
	{
		authed.GET("/settings", s.settingsPage)
		authed.POST("/settings/:id", s.updateSetting)
		authed.POST("/settings/download", s.downloadSettings)
		authed.POST("/settings/upload", s.uploadSettings)

		authed.GET("/users", s.usersPage)
		authed.GET("/users/create", s.createUserPage)
		authed.POST("/users/create", s.createUser)
		authed.GET("/users/:id", s.editUserPage)
		authed.POST("/users/:id", s.updateUser)

		authed.GET("/menu", s.menuPage)
		authed.GET("/menu/create", s.createMenuItemPage)
		authed.POST("/menu/create", s.createMenuItem)
		authed.GET("/menu/:id", s.editMenuItemPage)
		authed.POST("/menu/:id", s.updateMenuItem)
		authed.POST("/menu/:id/delete", s.deleteMenuItem)
		authed.POST("/menu/download", s.downloadMenu)
		authed.POST("/menu/upload", s.uploadMenu)

		authed.GET("/chats", s.chatsPage)
		authed.GET("/chats/:id", s.chatPage)
		authed.POST("/chats/:id/reply", s.replyInChat)
		authed.POST("/chats/:id/ban", s.banEmployee)
	}

	s.router = router
	return s
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the underlying engine, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) root(c *gin.Context) {
	if s.currentUser(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.Redirect(http.StatusFound, "/settings")
}

// currentUser resolves the session cookie against the backend. Returns nil
// for missing, expired or otherwise unusable sessions.
func (s *Server) currentUser(c *gin.Context) *model.User {
	sessionID, err := c.Cookie(sessionCookie)
	if err != nil || sessionID == "" {
		return nil
	}
	user, err := s.client.ResolveSession(sessionID)
	if err != nil {
		return nil
	}
	return user
}

const userKey = "currentUser"

// requireUser loads the signed-in user into the context or redirects the
// request to the login page.
func (s *Server) requireUser(c *gin.Context) {
	user := s.currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Set(userKey, user)
	c.Next()
}

func userFrom(c *gin.Context) *model.User {
	return c.MustGet(userKey).(*model.User)
}

// pageData is the payload every template receives: the signed-in user,
// their capability flags for conditional rendering, and a page body.
type pageData struct {
	User            *model.User
	CanEditSettings bool
	CanEditUsers    bool
	CanSendMessages bool
	CanEditMenu     bool

	Error string
	Data  any
}

func newPageData(user *model.User, data any) pageData {
	pd := pageData{User: user, Data: data}
	if user != nil && user.Role != nil {
		pd.CanEditSettings = user.Role.Has(model.CapEditSettings)
		pd.CanEditUsers = user.Role.Has(model.CapEditUsers)
		pd.CanSendMessages = user.Role.Has(model.CapSendMessages)
		pd.CanEditMenu = user.Role.Has(model.CapEditMenu)
	}
	return pd
}

var errNotFound = &apiclient.APIError{Status: http.StatusNotFound, Detail: "record not found"}

// renderError shows the shared error page with the message extracted from
// the failed API call.
func (s *Server) renderError(c *gin.Context, user *model.User, err error) {
	status := http.StatusInternalServerError
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	pd := newPageData(user, nil)
	pd.Error = errorText(err)
	c.HTML(status, "error", pd)
}

// errorText extracts a user-facing message from an API call failure.
func errorText(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return "error while processing the request"
}
