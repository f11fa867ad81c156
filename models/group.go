package models

// Group is an optional category posts can be filed under. Groups are created
// through admin tooling only, there is no public create endpoint.
type Group struct {
	Model
	Title       string `json:"title" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
}
