package services

import (
	"errors"

	"github.com/techagentng/bloghub/config"
	"github.com/techagentng/bloghub/db"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/models"
	"gorm.io/gorm"
)

// FollowService manages follow edges between users.
type FollowService interface {
	Follow(user *models.User, targetUsername string) error
	Unfollow(user *models.User, targetUsername string) error
	IsFollowing(user *models.User, author *models.User) (bool, error)
}

type followService struct {
	Config     *config.Config
	followRepo db.FollowRepository
	authRepo   db.AuthRepository
}

func NewFollowService(followRepo db.FollowRepository, authRepo db.AuthRepository, conf *config.Config) FollowService {
	return &followService{
		Config:     conf,
		followRepo: followRepo,
		authRepo:   authRepo,
	}
}

// Follow creates the edge user -> target. Following yourself or someone you
// already follow is a silent no-op. A constraint violation from a racing
// duplicate insert is swallowed the same way: the edge exists either way.
func (s *followService) Follow(user *models.User, targetUsername string) error {
	target, err := s.authRepo.FindUserByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return err
	}

	if user.ID == target.ID {
		return nil
	}

	following, err := s.followRepo.IsFollowing(user.ID, target.ID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	err = s.followRepo.CreateFollow(&models.Follow{UserID: user.ID, AuthorID: target.ID})
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return nil
	}
	return err
}

// Unfollow removes the edge user -> target. A missing edge is a no-op.
func (s *followService) Unfollow(user *models.User, targetUsername string) error {
	target, err := s.authRepo.FindUserByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return err
	}

	return s.followRepo.DeleteFollow(user.ID, target.ID)
}

func (s *followService) IsFollowing(user *models.User, author *models.User) (bool, error) {
	if user == nil {
		return false, nil
	}
	return s.followRepo.IsFollowing(user.ID, author.ID)
}
