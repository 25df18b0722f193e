package model

// DefaultCategoryIcon is used when a category is created without one.
const DefaultCategoryIcon = "list-check"

// Category groups tasks under a user-defined label with a display icon.
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index" json:"userId"`
	Name   string `json:"name"`
	Icon   string `gorm:"default:list-check" json:"icon"`
}
