// internal/domain/models/coach.go
package models

type CoachInput struct {
	Name        string  `bson:"name" json:"name" validate:"required,max=120"`
	Position    string  `bson:"position" json:"position" validate:"required,max=80"` // e.g. "Head Coach"
	Experience  *string `bson:"experience,omitempty" json:"experience,omitempty" validate:"omitempty,max=200"`
	Nationality *string `bson:"nationality,omitempty" json:"nationality,omitempty" validate:"omitempty,max=80"`
	PhotoURL    *string `bson:"photo_url,omitempty" json:"photoUrl,omitempty" validate:"omitempty,max=2048"`
	Bio         *string `bson:"bio,omitempty" json:"bio,omitempty" validate:"omitempty,max=5000"`
}

// Coach is a member of the coaching staff.
type Coach struct {
	ID         int64 `bson:"_id" json:"id"`
	CoachInput `bson:",inline"`
}
