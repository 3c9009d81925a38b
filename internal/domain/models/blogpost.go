// internal/domain/models/blogpost.go
package models

import "time"

type BlogPostInput struct {
	Title    string    `bson:"title" json:"title" validate:"required,max=200"`
	Content  string    `bson:"content" json:"content" validate:"required,max=100000"`
	Excerpt  *string   `bson:"excerpt,omitempty" json:"excerpt,omitempty" validate:"omitempty,max=500"`
	ImageURL *string   `bson:"image_url,omitempty" json:"imageUrl,omitempty" validate:"omitempty,max=2048"`
	AuthorID int64     `bson:"author_id" json:"authorId" validate:"required,min=1"` // user id; not enforced
	Tags     []string  `bson:"tags,omitempty" json:"tags,omitempty" validate:"omitempty,max=20,dive,required,max=40"`
	Date     time.Time `bson:"date" json:"date" update:"required"`
}

// BlogPost is a long-form post written by a club user.
type BlogPost struct {
	ID            int64 `bson:"_id" json:"id"`
	BlogPostInput `bson:",inline"`
}
