package domain

import (
	"errors"
	"time"
)

// FixtureStatus is the lifecycle state of a fixture. It is derived from the
// kickoff date at read time and never persisted.
type FixtureStatus string

const (
	StatusPending   FixtureStatus = "pending"
	StatusOngoing   FixtureStatus = "ongoing"
	StatusCompleted FixtureStatus = "completed"
)

// matchWindow is how long a fixture counts as ongoing after kickoff:
// 90 minutes of play plus stoppage time, with margin.
const matchWindow = 110 * time.Minute

var ErrFixtureNotFound = errors.New("fixture not found")
var ErrFixtureExists = errors.New("fixture link already exists")
var ErrFixtureNotStarted = errors.New("fixture has not started")
var ErrDateNotFuture = errors.New("fixture date must be in the future")
var ErrInvalidTeamRef = errors.New("home or away team does not exist")
var ErrUnknownStatus = errors.New("unknown fixture status")
var ErrInvalidID = errors.New("invalid id")

// StatusAt derives the fixture status from its kickoff date and the current
// instant. A fixture exactly matchWindow past kickoff is still ongoing.
func StatusAt(date, now time.Time) FixtureStatus {
	if date.After(now) {
		return StatusPending
	}
	if now.Sub(date) <= matchWindow {
		return StatusOngoing
	}
	return StatusCompleted
}

// ParseStatus converts a query-string value into a FixtureStatus.
func ParseStatus(s string) (FixtureStatus, error) {
	switch FixtureStatus(s) {
	case StatusPending, StatusOngoing, StatusCompleted:
		return FixtureStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// Fixture is a scheduled match between two teams. The stored document keeps
// team references only; read paths resolve HomeTeam and AwayTeam. Status is
// intentionally absent: call Status with the current time instead.
type Fixture struct {
	ID        string    `json:"id"`
	HomeTeam  Team      `json:"home_team"`
	AwayTeam  Team      `json:"away_team"`
	Date      time.Time `json:"date"`
	Score     string    `json:"score,omitempty"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

// Status reports the derived lifecycle state at the given instant.
func (f *Fixture) Status(now time.Time) FixtureStatus {
	return StatusAt(f.Date, now)
}
