package services

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/bloghub/config"
	"github.com/techagentng/bloghub/db"
	"github.com/techagentng/bloghub/models"
	"github.com/techagentng/bloghub/services/cache"
)

type testEnv struct {
	conf        *config.Config
	authRepo    db.AuthRepository
	postRepo    db.PostRepository
	groupRepo   db.GroupRepository
	commentRepo db.CommentRepository
	followRepo  db.FollowRepository
	cache       cache.Cache
	redis       *miniredis.Miniredis
	feed        FeedService
	follow      FollowService
	posts       PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gormDB := db.NewTestDB(t)
	mr := miniredis.RunT(t)

	conf := &config.Config{
		JWTSecret: "test-secret",
		LoginURL:  "/auth/login/",
		MediaDir:  t.TempDir(),
	}

	env := &testEnv{
		conf:        conf,
		authRepo:    db.NewAuthRepo(gormDB),
		postRepo:    db.NewPostRepo(gormDB),
		groupRepo:   db.NewGroupRepo(gormDB),
		commentRepo: db.NewCommentRepo(gormDB),
		followRepo:  db.NewFollowRepo(gormDB),
		cache:       cache.NewRedisCache(mr.Addr(), "bloghub:"),
		redis:       mr,
	}
	env.feed = NewFeedService(env.postRepo, env.groupRepo, env.authRepo, env.followRepo, env.cache, conf)
	env.follow = NewFollowService(env.followRepo, env.authRepo, conf)
	env.posts = NewPostService(env.postRepo, env.commentRepo, conf)
	return env
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.authRepo.CreateUser(&models.User{Username: username})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createPost(t *testing.T, author *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID}
	require.NoError(t, e.postRepo.CreatePost(post))
	return post
}

func (e *testEnv) createPosts(t *testing.T, author *models.User, n int) []*models.Post {
	t.Helper()
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, e.createPost(t, author, fmt.Sprintf("post %d", i)))
	}
	return posts
}
