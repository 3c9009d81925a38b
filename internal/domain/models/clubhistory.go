// internal/domain/models/clubhistory.go
package models

type ClubHistoryInput struct {
	Year        int     `bson:"year" json:"year" validate:"required,min=1800,max=2200"`
	Title       string  `bson:"title" json:"title" validate:"required,max=200"`
	Description string  `bson:"description" json:"description" validate:"required,max=10000"`
	ImageURL    *string `bson:"image_url,omitempty" json:"imageUrl,omitempty" validate:"omitempty,max=2048"`
}

// ClubHistory is a milestone on the club timeline.
type ClubHistory struct {
	ID               int64 `bson:"_id" json:"id"`
	ClubHistoryInput `bson:",inline"`
}
