// internal/domain/models/player.go
package models

// PlayerInput is the writable part of a Player. It doubles as the create
// payload and, with partial validation, the update payload.
type PlayerInput struct {
	Name          string  `bson:"name" json:"name" validate:"required,max=120"`
	Position      string  `bson:"position" json:"position" validate:"required,max=60"`
	Number        int     `bson:"number" json:"number" validate:"required,min=1,max=99"`
	Age           int     `bson:"age" json:"age" validate:"required,min=14,max=60"`
	Nationality   *string `bson:"nationality,omitempty" json:"nationality,omitempty" validate:"omitempty,max=80"`
	Height        *int    `bson:"height,omitempty" json:"height,omitempty" validate:"omitempty,min=100,max=250"` // cm
	Weight        *int    `bson:"weight,omitempty" json:"weight,omitempty" validate:"omitempty,min=30,max=200"`  // kg
	PhotoURL      *string `bson:"photo_url,omitempty" json:"photoUrl,omitempty" validate:"omitempty,max=2048"`
	Bio           *string `bson:"bio,omitempty" json:"bio,omitempty" validate:"omitempty,max=5000"`
	Goals         int     `bson:"goals" json:"goals" validate:"min=0"`
	Assists       int     `bson:"assists" json:"assists" validate:"min=0"`
	MatchesPlayed int     `bson:"matches_played" json:"matchesPlayed" validate:"min=0"`
	Active        bool    `bson:"active" json:"active"`
}

// Player is a first-team squad member.
type Player struct {
	ID          int64 `bson:"_id" json:"id"`
	PlayerInput `bson:",inline"`
}
