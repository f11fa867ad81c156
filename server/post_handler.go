package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/models"
	"github.com/techagentng/bloghub/server/response"
)

func postDetailPath(postID uint) string {
	return fmt.Sprintf("/posts/%d/", postID)
}

func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}

func (s *Server) handleCreatePostForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, "create post", http.StatusOK, gin.H{"form": models.PostForm{}}, nil)
	}
}

func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var form models.PostForm
		if err := c.ShouldBind(&form); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.ErrBadRequest)
			return
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			imagePath, err := s.MediaService.SaveImage(fileHeader)
			if err != nil {
				response.JSON(c, "", http.StatusBadRequest, nil, errs.New(err.Error(), http.StatusBadRequest))
				return
			}
			form.Image = imagePath
		}

		if _, err := s.PostService.CreatePost(user, form); err != nil {
			if errors.Is(err, models.ErrEmptyText) {
				response.JSON(c, "", http.StatusBadRequest, nil, models.ErrEmptyText)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", user.Username))
	}
}

func (s *Server) handleEditPostForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parsePostID(c)
		if !ok {
			return
		}

		detail, err := s.PostService.GetPostDetail(postID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		// Only the author gets the edit form; everyone else lands on the
		// detail view.
		if detail.Post.AuthorID != currentUser(c).ID {
			c.Redirect(http.StatusFound, postDetailPath(postID))
			return
		}

		form := models.PostForm{
			Text:    detail.Post.Text,
			GroupID: detail.Post.GroupID,
			Image:   detail.Post.Image,
		}
		response.JSON(c, "edit post", http.StatusOK, gin.H{"form": form, "post": detail.Post}, nil)
	}
}

func (s *Server) handleEditPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parsePostID(c)
		if !ok {
			return
		}

		var form models.PostForm
		if err := c.ShouldBind(&form); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.ErrBadRequest)
			return
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			imagePath, err := s.MediaService.SaveImage(fileHeader)
			if err != nil {
				response.JSON(c, "", http.StatusBadRequest, nil, errs.New(err.Error(), http.StatusBadRequest))
				return
			}
			form.Image = imagePath
		}

		_, err := s.PostService.EditPost(postID, currentUser(c), form)
		switch {
		case err == nil:
			c.Redirect(http.StatusFound, postDetailPath(postID))
		case errors.Is(err, errs.ErrForbidden):
			// Unauthorized edits are deflected, not surfaced as errors.
			c.Redirect(http.StatusFound, postDetailPath(postID))
		case errors.Is(err, errs.ErrNotFound):
			response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
		case errors.Is(err, models.ErrEmptyText):
			response.JSON(c, "", http.StatusBadRequest, nil, models.ErrEmptyText)
		default:
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
		}
	}
}

func (s *Server) handleAddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parsePostID(c)
		if !ok {
			return
		}

		// Guests are bounced back to the post without creating anything.
		user := currentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, postDetailPath(postID))
			return
		}

		var form models.CommentForm
		if err := c.ShouldBind(&form); err != nil {
			c.Redirect(http.StatusFound, postDetailPath(postID))
			return
		}

		_, err := s.PostService.AddComment(postID, user, form.Text)
		switch {
		case err == nil, errors.Is(err, models.ErrEmptyText):
			c.Redirect(http.StatusFound, postDetailPath(postID))
		case errors.Is(err, errs.ErrNotFound):
			response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
		default:
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
		}
	}
}

func (s *Server) handlePostDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parsePostID(c)
		if !ok {
			return
		}

		detail, err := s.PostService.GetPostDetail(postID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "post detail", http.StatusOK, gin.H{
			"post":     detail.Post,
			"count":    detail.Count,
			"comments": detail.Comments,
			"form":     models.CommentForm{},
		}, nil)
	}
}
