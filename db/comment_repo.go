package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/bloghub/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	CommentsByPost(postID uint) ([]models.Comment, error)
	CountCommentsByPost(postID uint) (int64, error)
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (r *commentRepo) CreateComment(comment *models.Comment) error {
	if err := r.DB.Create(comment).Error; err != nil {
		return errors.Wrap(err, "could not create comment")
	}
	return nil
}

func (r *commentRepo) CommentsByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.DB.Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not list comments")
	}
	return comments, nil
}

func (r *commentRepo) CountCommentsByPost(postID uint) (int64, error) {
	var count int64
	if err := r.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "could not count comments")
	}
	return count, nil
}
