package ports

import (
	"context"
	"time"

	"github.com/premierleague/fixtures-api/internal/core/domain"
)

// CreateFixtureInput carries all data needed to schedule a fixture.
type CreateFixtureInput struct {
	HomeTeamID string
	AwayTeamID string
	Date       time.Time
}

// TeamView is the resolved team reference embedded in fixture views.
type TeamView struct {
	ID   string
	Name string
}

// FixtureView is the read model returned by the fixture service: the stored
// fixture plus the status derived at the moment of the call.
type FixtureView struct {
	ID       string
	HomeTeam TeamView
	AwayTeam TeamView
	Date     time.Time
	Status   domain.FixtureStatus
	Score    string
	Link     string
}

// FixtureListResult is returned by the cached list read path.
type FixtureListResult struct {
	Items []FixtureView
	// FromCache is true when the list was served from the cache layer.
	FromCache bool
}

// FixtureService defines fixture use-cases.
type FixtureService interface {
	Create(ctx context.Context, input CreateFixtureInput) (*FixtureView, error)
	Get(ctx context.Context, id string) (*FixtureView, error)
	// ListAll is the cache-aside read path over the full fixture list.
	ListAll(ctx context.Context) (*FixtureListResult, error)
	// ListByStatus filters the fixture list by derived status.
	ListByStatus(ctx context.Context, status string) ([]FixtureView, error)
	// Search matches a case-insensitive substring against team names and links.
	Search(ctx context.Context, query string) ([]FixtureView, error)
	Update(ctx context.Context, id string, input CreateFixtureInput) (*FixtureView, error)
	// UpdateScore stores a score once the fixture has kicked off; it fails
	// with domain.ErrFixtureNotStarted while the derived status is pending.
	UpdateScore(ctx context.Context, id, score string) (*FixtureView, error)
	Delete(ctx context.Context, id string) error
}
