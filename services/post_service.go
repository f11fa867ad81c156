package services

import (
	"errors"

	"github.com/techagentng/bloghub/config"
	"github.com/techagentng/bloghub/db"
	errs "github.com/techagentng/bloghub/errors"
	"github.com/techagentng/bloghub/models"
	"gorm.io/gorm"
)

// PostDetail is everything the post detail view needs: the post, its author's
// total post count and the comments newest-first.
type PostDetail struct {
	Post     *models.Post     `json:"post"`
	Count    int64            `json:"count"`
	Comments []models.Comment `json:"comments"`
}

// PostService creates and edits posts and comments. The author always comes
// from the authenticated identity, never from the client.
type PostService interface {
	CreatePost(author *models.User, form models.PostForm) (*models.Post, error)
	EditPost(postID uint, requester *models.User, form models.PostForm) (*models.Post, error)
	AddComment(postID uint, author *models.User, text string) (*models.Comment, error)
	GetPostDetail(postID uint) (*PostDetail, error)
}

type postService struct {
	Config      *config.Config
	postRepo    db.PostRepository
	commentRepo db.CommentRepository
}

func NewPostService(postRepo db.PostRepository, commentRepo db.CommentRepository, conf *config.Config) PostService {
	return &postService{
		Config:      conf,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *postService) CreatePost(author *models.User, form models.PostForm) (*models.Post, error) {
	if err := models.ValidatePostText(form.Text); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: author.ID,
		GroupID:  form.GroupID,
		Image:    form.Image,
	}
	if err := s.postRepo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost persists changes only when the requester is the original author.
// Anyone else gets ErrForbidden and the post stays untouched; the caller
// decides how to deflect. The author is never changed.
func (s *postService) EditPost(postID uint, requester *models.User, form models.PostForm) (*models.Post, error) {
	post, err := s.postRepo.FindPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	if post.AuthorID != requester.ID {
		return nil, errs.ErrForbidden
	}

	if err := models.ValidatePostText(form.Text); err != nil {
		return nil, err
	}

	post.Text = form.Text
	post.GroupID = form.GroupID
	if form.Image != "" {
		post.Image = form.Image
	}
	if err := s.postRepo.SavePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) AddComment(postID uint, author *models.User, text string) (*models.Comment, error) {
	post, err := s.postRepo.FindPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	if err := models.ValidatePostText(text); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Text:     text,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *postService) GetPostDetail(postID uint) (*PostDetail, error) {
	post, err := s.postRepo.FindPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	count, err := s.postRepo.CountPostsByAuthor(post.AuthorID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.CommentsByPost(post.ID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:     post,
		Count:    count,
		Comments: comments,
	}, nil
}
