package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/models"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.raw), "raw=%q", tt.raw)
	}
}

func TestIndexPagination(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "leo")
	env.createPosts(t, author, 16)
	ctx := context.Background()

	page1, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Posts, 10)
	assert.Equal(t, int64(16), page1.Total)
	assert.Equal(t, 2, page1.TotalPages)

	page2, err := env.feed.Index(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 6)
	assert.Equal(t, 2, page2.Page)
}

func TestIndexNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "leo")
	env.createPost(t, author, "older")
	newest := env.createPost(t, author, "newest")
	ctx := context.Background()

	page, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, newest.ID, page.Posts[0].ID)
}

func TestIndexPageFallback(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "leo")
	env.createPosts(t, author, 16)
	ctx := context.Background()

	t.Run("beyond last page falls back to last", func(t *testing.T) {
		page, err := env.feed.Index(ctx, 99)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.Len(t, page.Posts, 6)
	})

	t.Run("empty collection yields single empty page", func(t *testing.T) {
		other := newTestEnv(t)
		page, err := other.feed.Index(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Empty(t, page.Posts)
	})
}

func TestIndexCacheStalenessWindow(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "leo")
	env.createPost(t, author, "first")
	ctx := context.Background()

	// Fill the cache.
	warm, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	require.Len(t, warm.Posts, 1)

	// A post created after the cache fill is invisible inside the TTL window.
	env.createPost(t, author, "second")
	stale, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, stale.Posts, 1)

	// After expiry the new post shows up.
	env.redis.FastForward(IndexCacheTTL + time.Second)
	fresh, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, fresh.Posts, 2)
}

func TestIndexCacheDeleteThenClear(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "leo")
	env.createPost(t, author, "keep")
	doomed := env.createPost(t, author, "doomed")
	ctx := context.Background()

	before, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	require.Len(t, before.Posts, 2)

	require.NoError(t, env.postRepo.DeletePost(doomed.ID))

	// Within the TTL the deletion is not reflected.
	during, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	require.Len(t, during.Posts, len(before.Posts))
	for i := range before.Posts {
		assert.Equal(t, before.Posts[i].ID, during.Posts[i].ID)
	}

	// An explicit clear makes the next fetch reflect the deletion.
	require.NoError(t, env.cache.Clear(ctx))
	after, err := env.feed.Index(ctx, 1)
	require.NoError(t, err)
	require.Len(t, after.Posts, 1)
	assert.Equal(t, "keep", after.Posts[0].Text)
}

func TestGroupFeed(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "leo")
	group := &models.Group{Title: "Cats", Slug: "cats", Description: "feline content"}
	require.NoError(t, env.groupRepo.CreateGroup(group))

	inGroup := &models.Post{Text: "in group", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, env.postRepo.CreatePost(inGroup))
	env.createPost(t, author, "ungrouped")
	ctx := context.Background()

	t.Run("filters by slug", func(t *testing.T) {
		view, err := env.feed.GroupFeed(ctx, "cats", 1)
		require.NoError(t, err)
		assert.Equal(t, "Cats", view.Group.Title)
		require.Len(t, view.Page.Posts, 1)
		assert.Equal(t, inGroup.ID, view.Page.Posts[0].ID)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := env.feed.GroupFeed(ctx, "dogs", 1)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestProfileFeed(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "leo")
	viewer := env.createUser(t, "mia")
	env.createPosts(t, author, 3)
	ctx := context.Background()

	t.Run("returns count and posts", func(t *testing.T) {
		view, err := env.feed.ProfileFeed(ctx, "leo", 1, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3), view.Count)
		assert.Len(t, view.Page.Posts, 3)
		assert.False(t, view.Following)
	})

	t.Run("following flag for authenticated viewer", func(t *testing.T) {
		require.NoError(t, env.follow.Follow(viewer, "leo"))
		view, err := env.feed.ProfileFeed(ctx, "leo", 1, viewer)
		require.NoError(t, err)
		assert.True(t, view.Following)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := env.feed.ProfileFeed(ctx, "ghost", 1, nil)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestFollowingFeed(t *testing.T) {
	env := newTestEnv(t)
	reader := env.createUser(t, "reader")
	followed := env.createUser(t, "followed")
	stranger := env.createUser(t, "stranger")
	env.createPosts(t, followed, 2)
	env.createPosts(t, stranger, 2)
	ctx := context.Background()

	t.Run("empty without follows", func(t *testing.T) {
		page, err := env.feed.FollowingFeed(ctx, reader, 1)
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
	})

	t.Run("only followed authors' posts", func(t *testing.T) {
		require.NoError(t, env.follow.Follow(reader, "followed"))
		page, err := env.feed.FollowingFeed(ctx, reader, 1)
		require.NoError(t, err)
		require.Len(t, page.Posts, 2)
		for _, post := range page.Posts {
			assert.Equal(t, followed.ID, post.AuthorID)
		}
	})
}
