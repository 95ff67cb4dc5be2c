package model

import "time"

// ArticleModel is the GORM-specific struct for the 'articles' table.
type ArticleModel struct {
	ID        int64  `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	ImageURL  string
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArticleModel) TableName() string {
	return "articles"
}
