// internal/domain/models/match.go
package models

import "time"

// Match status values.
const (
	MatchUpcoming  = "upcoming"
	MatchLive      = "live"
	MatchCompleted = "completed"
)

// MatchInput holds the writable fields of a fixture. Team names are stored as
// plain strings; nothing ties them to the standings table.
type MatchInput struct {
	HomeTeam    string    `bson:"home_team" json:"homeTeam" validate:"required,max=120"`
	AwayTeam    string    `bson:"away_team" json:"awayTeam" validate:"required,max=120"`
	Date        time.Time `bson:"date" json:"date" validate:"required"`
	Venue       string    `bson:"venue" json:"venue" validate:"required,max=200"`
	Competition *string   `bson:"competition,omitempty" json:"competition,omitempty" validate:"omitempty,max=120"`
	Status      string    `bson:"status" json:"status" validate:"omitempty,oneof=upcoming live completed" update:"required"`
	HomeScore   *int      `bson:"home_score,omitempty" json:"homeScore,omitempty" validate:"omitempty,min=0"`
	AwayScore   *int      `bson:"away_score,omitempty" json:"awayScore,omitempty" validate:"omitempty,min=0"`
	TicketsURL  *string   `bson:"tickets_url,omitempty" json:"ticketsUrl,omitempty" validate:"omitempty,max=2048"`
}

type Match struct {
	ID         int64 `bson:"_id" json:"id"`
	MatchInput `bson:",inline"`
}
