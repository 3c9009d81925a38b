// internal/domain/models/standing.go
package models

type StandingInput struct {
	Position     int     `bson:"position" json:"position" validate:"required,min=1"`
	Team         string  `bson:"team" json:"team" validate:"required,max=120"`
	Played       int     `bson:"played" json:"played" validate:"min=0"`
	Won          int     `bson:"won" json:"won" validate:"min=0"`
	Drawn        int     `bson:"drawn" json:"drawn" validate:"min=0"`
	Lost         int     `bson:"lost" json:"lost" validate:"min=0"`
	GoalsFor     int     `bson:"goals_for" json:"goalsFor" validate:"min=0"`
	GoalsAgainst int     `bson:"goals_against" json:"goalsAgainst" validate:"min=0"`
	Points       int     `bson:"points" json:"points" validate:"min=0"`
	LogoURL      *string `bson:"logo_url,omitempty" json:"logoUrl,omitempty" validate:"omitempty,max=2048"`
}

// Standing is one row of the league table.
type Standing struct {
	ID            int64 `bson:"_id" json:"id"`
	StandingInput `bson:",inline"`
}
