package ports

import (
	"context"
	"time"

	"github.com/premierleague/fixtures-api/internal/core/domain"
)

// FixtureRecord carries the fields the repository stores for a fixture.
// Team references are ids; reads resolve them into full teams.
type FixtureRecord struct {
	HomeTeamID string
	AwayTeamID string
	Date       time.Time
	Link       string
}

// FixtureRepository defines persistence operations for fixtures. All read
// methods return fixtures with both team references resolved.
type FixtureRepository interface {
	Create(ctx context.Context, rec FixtureRecord) (*domain.Fixture, error)
	FindByID(ctx context.Context, id string) (*domain.Fixture, error)
	ListAll(ctx context.Context) ([]*domain.Fixture, error)
	Update(ctx context.Context, id string, rec FixtureRecord) (*domain.Fixture, error)
	// UpdateScore sets the literal score string without touching any other field.
	UpdateScore(ctx context.Context, id, score string) (*domain.Fixture, error)
	Delete(ctx context.Context, id string) error
}
