package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/bloghub/models"
	"github.com/techagentng/bloghub/services/jwt"
)

// Authorize guards routes that require a signed-in user. Guests are sent to
// the login page, never shown an error.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.resolveUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, s.Config.LoginURL)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

// CurrentUser resolves the viewer when a valid token is present and continues
// either way. Used on public routes that behave differently for guests.
func (s *Server) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := s.resolveUser(c); user != nil {
			c.Set("user", user)
			c.Set("userID", user.ID)
			c.Set("username", user.Username)
		}
		c.Next()
	}
}

func (s *Server) resolveUser(c *gin.Context) *models.User {
	accessToken := getTokenFromHeader(c)
	if accessToken == "" {
		return nil
	}

	accessClaims, err := jwt.ValidateAndGetClaims(accessToken, s.Config.JWTSecret)
	if err != nil {
		return nil
	}

	id, ok := accessClaims["id"].(float64)
	if !ok {
		return nil
	}

	user, err := s.AuthRepository.FindUserByID(uint(id))
	if err != nil {
		return nil
	}
	return user
}

// currentUser returns the viewer set by Authorize or CurrentUser, nil for
// guests.
func currentUser(c *gin.Context) *models.User {
	val, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// getTokenFromHeader returns the token string in the authorization header
func getTokenFromHeader(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) > 8 {
		return authHeader[7:]
	}
	return ""
}
