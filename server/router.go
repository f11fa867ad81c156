package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/server/response"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 32 << 20
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 30,
	})
	limitComments := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: errs.ErrorHandler,
		KeyFunc:      func(c *gin.Context) string { return c.ClientIP() },
	})

	router.GET("/", s.CurrentUser(), s.handleIndex())
	router.GET("/group/:slug/", s.handleGroupFeed())
	router.GET("/profile/:username/", s.CurrentUser(), s.handleProfile())
	router.GET("/posts/:id/", s.handlePostDetail())
	router.POST("/posts/:id/comment/", s.CurrentUser(), limitComments, s.handleAddComment())

	authorized := router.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/create/", s.handleCreatePostForm())
	authorized.POST("/create/", s.handleCreatePost())
	authorized.GET("/posts/:id/edit/", s.handleEditPostForm())
	authorized.POST("/posts/:id/edit/", s.handleEditPost())
	authorized.GET("/follow/", s.handleFollowFeed())
	authorized.GET("/profile/:username/follow/", s.handleFollow())
	authorized.GET("/profile/:username/unfollow/", s.handleUnfollow())

	router.NoRoute(func(c *gin.Context) {
		response.JSON(c, "page not found", http.StatusNotFound, nil, errs.ErrNotFound)
	})
}
