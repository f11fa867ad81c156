package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/techagentng/bloghub/config"
	"github.com/techagentng/bloghub/db"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/models"
	"github.com/techagentng/bloghub/services/cache"
	"gorm.io/gorm"
)

// PageSize is the number of posts per page in every feed.
const PageSize = 10

// IndexCacheTTL is the staleness window of the index feed. Within this window
// newly created or deleted posts are not reflected; there is no automatic
// invalidation on writes.
const IndexCacheTTL = 20 * time.Second

// ParsePage turns a raw ?page= query value into a page number. Non-numeric
// values and anything below 1 fall back to the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PostPage is one page of a feed.
type PostPage struct {
	Posts      []models.Post `json:"posts"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// GroupView is a group feed page together with the group itself.
type GroupView struct {
	Group *models.Group `json:"group"`
	Page  *PostPage     `json:"page"`
}

// ProfileView is an author's feed page plus profile metadata.
type ProfileView struct {
	Author    *models.User `json:"author"`
	Page      *PostPage    `json:"page"`
	Count     int64        `json:"count"`
	Following bool         `json:"following"`
}

// FeedService composes the paginated post lists for the index, group, profile
// and follow views.
type FeedService interface {
	Index(ctx context.Context, page int) (*PostPage, error)
	GroupFeed(ctx context.Context, slug string, page int) (*GroupView, error)
	ProfileFeed(ctx context.Context, username string, page int, viewer *models.User) (*ProfileView, error)
	FollowingFeed(ctx context.Context, user *models.User, page int) (*PostPage, error)
}

type feedService struct {
	Config     *config.Config
	postRepo   db.PostRepository
	groupRepo  db.GroupRepository
	authRepo   db.AuthRepository
	followRepo db.FollowRepository
	cache      cache.Cache
}

func NewFeedService(postRepo db.PostRepository, groupRepo db.GroupRepository, authRepo db.AuthRepository, followRepo db.FollowRepository, pageCache cache.Cache, conf *config.Config) FeedService {
	return &feedService{
		Config:     conf,
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		authRepo:   authRepo,
		followRepo: followRepo,
		cache:      pageCache,
	}
}

// Index returns a page of all posts, newest-first. Pages are cached for
// IndexCacheTTL under a key scoped to the requested page number.
func (s *feedService) Index(ctx context.Context, page int) (*PostPage, error) {
	key := fmt.Sprintf("index_page:page=%d", page)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached PostPage
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		log.Printf("discarding unreadable cache entry %q", key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("index cache read failed: %v", err)
	}

	result, err := s.paginate(page, s.postRepo.AllPosts)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, raw, IndexCacheTTL); err != nil {
		log.Printf("index cache write failed: %v", err)
	}
	return result, nil
}

func (s *feedService) GroupFeed(ctx context.Context, slug string, page int) (*GroupView, error) {
	group, err := s.groupRepo.FindGroupBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	result, err := s.paginate(page, func(offset, limit int) ([]models.Post, int64, error) {
		return s.postRepo.PostsByGroup(group.ID, offset, limit)
	})
	if err != nil {
		return nil, err
	}
	return &GroupView{Group: group, Page: result}, nil
}

// ProfileFeed returns the author's posts plus their total post count and
// whether viewer currently follows them. The flag is false for guests.
func (s *feedService) ProfileFeed(ctx context.Context, username string, page int, viewer *models.User) (*ProfileView, error) {
	author, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	result, err := s.paginate(page, func(offset, limit int) ([]models.Post, int64, error) {
		return s.postRepo.PostsByAuthor(author.ID, offset, limit)
	})
	if err != nil {
		return nil, err
	}

	following := false
	if viewer != nil {
		following, err = s.followRepo.IsFollowing(viewer.ID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &ProfileView{
		Author:    author,
		Page:      result,
		Count:     result.Total,
		Following: following,
	}, nil
}

func (s *feedService) FollowingFeed(ctx context.Context, user *models.User, page int) (*PostPage, error) {
	return s.paginate(page, func(offset, limit int) ([]models.Post, int64, error) {
		return s.postRepo.PostsByFollowed(user.ID, offset, limit)
	})
}

// paginate splits an ordered collection into fixed-size pages. Pages beyond
// the last valid page fall back to the last page instead of erroring.
func (s *feedService) paginate(page int, list func(offset, limit int) ([]models.Post, int64, error)) (*PostPage, error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := list((page-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
		posts, _, err = list((page-1)*PageSize, PageSize)
		if err != nil {
			return nil, err
		}
	}

	return &PostPage{
		Posts:      posts,
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
