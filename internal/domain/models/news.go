// internal/domain/models/news.go
package models

import "time"

type NewsInput struct {
	Title    string    `bson:"title" json:"title" validate:"required,max=200"`
	Content  string    `bson:"content" json:"content" validate:"required,max=100000"`
	Excerpt  *string   `bson:"excerpt,omitempty" json:"excerpt,omitempty" validate:"omitempty,max=500"`
	ImageURL *string   `bson:"image_url,omitempty" json:"imageUrl,omitempty" validate:"omitempty,max=2048"`
	Category *string   `bson:"category,omitempty" json:"category,omitempty" validate:"omitempty,max=60"`
	Author   *string   `bson:"author,omitempty" json:"author,omitempty" validate:"omitempty,max=120"`
	Date     time.Time `bson:"date" json:"date" update:"required"` // defaults to creation time
}

// News is a club news article.
type News struct {
	ID        int64 `bson:"_id" json:"id"`
	NewsInput `bson:",inline"`
}
