package models

// Comment represents a user's comment on a post. Comments are removed together
// with the post they belong to.
type Comment struct {
	Model
	PostID   uint   `json:"post_id" gorm:"not null;index"`
	Post     Post   `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID uint   `json:"author_id" gorm:"not null"`
	Author   User   `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text     string `json:"text" gorm:"type:text"`
}
