package models

// Follow is a directed edge in the user graph: UserID receives AuthorID's
// posts in their follow feed. The composite unique index and the check
// constraint are the authoritative guards against duplicate and self follows;
// application logic avoids triggering them but does not rely on that.
type Follow struct {
	Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_follows_user_author;check:chk_no_self_follow,user_id <> author_id"`
	User     User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AuthorID uint `json:"author_id" gorm:"not null;uniqueIndex:idx_follows_user_author"`
	Author   User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
