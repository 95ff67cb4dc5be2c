// Package entity contains the core business objects of the project.
package entity

import "time"

// Article is a plant care editorial entry shown in the shop.
type Article struct {
	ID        int64     // Numeric identity of the article.
	Title     string    // Headline of the article.
	Content   string    // Full article body.
	ImageURL  string    // Public URL of the cover image, if any.
	CreatedAt time.Time // Timestamp of when the article was published.
}
