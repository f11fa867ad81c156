package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techagentng/bloghub/config"
	"github.com/techagentng/bloghub/db"
	"github.com/techagentng/bloghub/services"
	"github.com/techagentng/bloghub/services/cache"
)

type Server struct {
	Config         *config.Config
	AuthRepository db.AuthRepository
	FeedService    services.FeedService
	FollowService  services.FollowService
	PostService    services.PostService
	MediaService   services.MediaService
	Cache          cache.Cache
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests.
func (s *Server) Start() {
	r := s.setupRouter()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.Port),
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
}
