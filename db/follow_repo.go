package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/bloghub/models"
	"gorm.io/gorm"
)

// FollowRepository manages follow edges. The unique index on (user_id,
// author_id) and the no-self-follow check live in the schema, so a racing
// duplicate insert fails here rather than in application logic.
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
	CountFollows(userID, authorID uint) (int64, error)
}

type followRepo struct {
	DB *gorm.DB
}

func NewFollowRepo(db *GormDB) FollowRepository {
	return &followRepo{db.DB}
}

func (r *followRepo) CreateFollow(follow *models.Follow) error {
	return r.DB.Create(follow).Error
}

// DeleteFollow removes the edge by filter. The unique index guarantees at
// most one matching row.
func (r *followRepo) DeleteFollow(userID, authorID uint) error {
	err := r.DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return errors.Wrap(err, "could not delete follow")
	}
	return nil
}

func (r *followRepo) IsFollowing(userID, authorID uint) (bool, error) {
	count, err := r.CountFollows(userID, authorID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepo) CountFollows(userID, authorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "could not count follows")
	}
	return count, nil
}
