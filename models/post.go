package models

import (
	"net/http"

	errs "github.com/techagentng/bloghub/errors"
)

// ErrEmptyText is returned when a post is submitted with no text at all.
var ErrEmptyText = errs.New("post text cannot be empty", http.StatusBadRequest)

// Post is a single entry in an author's blog. Posts are ordered newest-first
// everywhere they are listed.
type Post struct {
	Model
	Text     string `json:"text" gorm:"type:text;not null"`
	AuthorID uint   `json:"author_id" gorm:"not null;index"`
	Author   User   `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID  *uint  `json:"group_id"`
	Group    *Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Image    string `json:"image,omitempty"`
}

// PostForm carries the submitted fields of the create/edit post form.
type PostForm struct {
	Text    string `json:"text" form:"text"`
	GroupID *uint  `json:"group" form:"group"`
	Image   string `json:"image,omitempty" form:"-"`
}

// CommentForm carries the submitted fields of the comment form.
type CommentForm struct {
	Text string `json:"text" form:"text"`
}

// ValidatePostText rejects the exact empty string. Whitespace-only text is
// deliberately allowed, this is not a full blank check.
func ValidatePostText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return nil
}
