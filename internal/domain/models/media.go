// internal/domain/models/media.go
package models

import "time"

// Media types.
const (
	MediaPhoto = "photo"
	MediaVideo = "video"
)

type MediaInput struct {
	Title        string    `bson:"title" json:"title" validate:"required,max=200"`
	Type         string    `bson:"type" json:"type" validate:"required,oneof=photo video"`
	URL          string    `bson:"url" json:"url" validate:"required,max=2048"`
	ThumbnailURL *string   `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty" validate:"omitempty,max=2048"`
	Description  *string   `bson:"description,omitempty" json:"description,omitempty" validate:"omitempty,max=2000"`
	Date         time.Time `bson:"date" json:"date" update:"required"`
}

// Media is a gallery item (photo or video link).
type Media struct {
	ID         int64 `bson:"_id" json:"id"`
	MediaInput `bson:",inline"`
}
