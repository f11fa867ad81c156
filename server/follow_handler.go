package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/server/response"
)

// handleFollow creates the follow edge and always lands on the target's
// profile, whether or not an edge was created.
func (s *Server) handleFollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		err := s.FollowService.Follow(currentUser(c), username)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
	}
}

func (s *Server) handleUnfollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		err := s.FollowService.Unfollow(currentUser(c), username)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
	}
}
