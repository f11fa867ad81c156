package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/bloghub/models"
	"gorm.io/gorm"
)

type GroupRepository interface {
	CreateGroup(group *models.Group) error
	FindGroupBySlug(slug string) (*models.Group, error)
}

type groupRepo struct {
	DB *gorm.DB
}

func NewGroupRepo(db *GormDB) GroupRepository {
	return &groupRepo{db.DB}
}

// CreateGroup is used by admin tooling and fixtures.
func (r *groupRepo) CreateGroup(group *models.Group) error {
	if err := r.DB.Create(group).Error; err != nil {
		return errors.Wrap(err, "could not create group")
	}
	return nil
}

func (r *groupRepo) FindGroupBySlug(slug string) (*models.Group, error) {
	var group models.Group
	if err := r.DB.Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}
