package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/bloghub/models"
	"gorm.io/gorm"
)

// PostRepository is the storage layer for posts. Every listing method returns
// posts newest-first together with the total row count for the filter.
type PostRepository interface {
	CreatePost(post *models.Post) error
	SavePost(post *models.Post) error
	DeletePost(id uint) error
	FindPostByID(id uint) (*models.Post, error)
	AllPosts(offset, limit int) ([]models.Post, int64, error)
	PostsByGroup(groupID uint, offset, limit int) ([]models.Post, int64, error)
	PostsByAuthor(authorID uint, offset, limit int) ([]models.Post, int64, error)
	PostsByFollowed(userID uint, offset, limit int) ([]models.Post, int64, error)
	CountPostsByAuthor(authorID uint) (int64, error)
}

type postRepo struct {
	DB *gorm.DB
}

func NewPostRepo(db *GormDB) PostRepository {
	return &postRepo{db.DB}
}

func (r *postRepo) CreatePost(post *models.Post) error {
	if err := r.DB.Create(post).Error; err != nil {
		return errors.Wrap(err, "could not create post")
	}
	return nil
}

func (r *postRepo) SavePost(post *models.Post) error {
	if err := r.DB.Save(post).Error; err != nil {
		return errors.Wrap(err, "could not save post")
	}
	return nil
}

// DeletePost removes a post and its comments. Only reachable through admin
// tooling, there is no public delete endpoint.
func (r *postRepo) DeletePost(id uint) error {
	tx := r.DB.Begin()
	if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "could not delete comments")
	}
	if err := tx.Delete(&models.Post{}, id).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "could not delete post")
	}
	return tx.Commit().Error
}

func (r *postRepo) FindPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.DB.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) AllPosts(offset, limit int) ([]models.Post, int64, error) {
	return r.listPosts(r.DB.Model(&models.Post{}), offset, limit)
}

func (r *postRepo) PostsByGroup(groupID uint, offset, limit int) ([]models.Post, int64, error) {
	return r.listPosts(r.DB.Model(&models.Post{}).Where("group_id = ?", groupID), offset, limit)
}

func (r *postRepo) PostsByAuthor(authorID uint, offset, limit int) ([]models.Post, int64, error) {
	return r.listPosts(r.DB.Model(&models.Post{}).Where("author_id = ?", authorID), offset, limit)
}

func (r *postRepo) PostsByFollowed(userID uint, offset, limit int) ([]models.Post, int64, error) {
	query := r.DB.Model(&models.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID)
	return r.listPosts(query, offset, limit)
}

func (r *postRepo) CountPostsByAuthor(authorID uint) (int64, error) {
	var count int64
	if err := r.DB.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "could not count posts")
	}
	return count, nil
}

func (r *postRepo) listPosts(query *gorm.DB, offset, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "could not count posts")
	}
	err := query.Session(&gorm.Session{}).Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not list posts")
	}
	return posts, total, nil
}
