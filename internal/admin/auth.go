package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) loginPage(c *gin.Context) {
	if s.currentUser(c) != nil {
		c.Redirect(http.StatusFound, "/settings")
		return
	}
	c.HTML(http.StatusOK, "login", pageData{})
}

func (s *Server) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.HTML(http.StatusUnprocessableEntity, "login", pageData{Error: "all fields are required"})
		return
	}

	session, err := s.client.Login(username, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login", pageData{Error: errorText(err)})
		return
	}

	log.Printf("AUTH login by %s", username)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, session.ID, cookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/settings")
}

// logout deletes the backend session and drops the cookie. Works the same
// for already invalid sessions.
func (s *Server) logout(c *gin.Context) {
	if sessionID, err := c.Cookie(sessionCookie); err == nil && sessionID != "" {
		if err := s.client.Logout(sessionID); err != nil {
			log.Printf("logout failed: %v", err)
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
