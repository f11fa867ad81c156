package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/server/response"
	"github.com/techagentng/bloghub/services"
)

func (s *Server) handleIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := services.ParsePage(c.Query("page"))

		result, err := s.FeedService.Index(c.Request.Context(), page)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "index feed", http.StatusOK, result, nil)
	}
}

func (s *Server) handleGroupFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := services.ParsePage(c.Query("page"))

		result, err := s.FeedService.GroupFeed(c.Request.Context(), c.Param("slug"), page)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "group feed", http.StatusOK, result, nil)
	}
}

func (s *Server) handleProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := services.ParsePage(c.Query("page"))

		result, err := s.FeedService.ProfileFeed(c.Request.Context(), c.Param("username"), page, currentUser(c))
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "profile feed", http.StatusOK, result, nil)
	}
}

func (s *Server) handleFollowFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := services.ParsePage(c.Query("page"))

		result, err := s.FeedService.FollowingFeed(c.Request.Context(), currentUser(c), page)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "follow feed", http.StatusOK, result, nil)
	}
}
