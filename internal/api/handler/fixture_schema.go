package handler

import "time"

type fixtureRequest struct {
	HomeTeamID string    `json:"home_team_id" validate:"required"`
	AwayTeamID string    `json:"away_team_id" validate:"required,nefield=HomeTeamID"`
	Date       time.Time `json:"date"         validate:"required"`
}

type scoreRequest struct {
	Score string `json:"score" validate:"required"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type teamRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fixtureResponse struct {
	ID       string          `json:"id"`
	HomeTeam teamRefResponse `json:"home_team"`
	AwayTeam teamRefResponse `json:"away_team"`
	Date     time.Time       `json:"date"`
	Status   string          `json:"status"`
	Score    string          `json:"score,omitempty"`
	Link     string          `json:"link"`
}
