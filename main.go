package main

import (
	"log"

	"github.com/techagentng/bloghub/config"
	"github.com/techagentng/bloghub/db"
	"github.com/techagentng/bloghub/server"
	"github.com/techagentng/bloghub/services"
	"github.com/techagentng/bloghub/services/cache"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	authRepo := db.NewAuthRepo(gormDB)
	postRepo := db.NewPostRepo(gormDB)
	groupRepo := db.NewGroupRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)
	followRepo := db.NewFollowRepo(gormDB)

	pageCache := cache.NewRedisCache(conf.RedisAddr, "bloghub:")

	feedService := services.NewFeedService(postRepo, groupRepo, authRepo, followRepo, pageCache, conf)
	followService := services.NewFollowService(followRepo, authRepo, conf)
	postService := services.NewPostService(postRepo, commentRepo, conf)
	mediaService := services.NewMediaService(conf)

	s := &server.Server{
		Config:         conf,
		AuthRepository: authRepo,
		FeedService:    feedService,
		FollowService:  followService,
		PostService:    postService,
		MediaService:   mediaService,
		Cache:          pageCache,
	}

	s.Start()
}
