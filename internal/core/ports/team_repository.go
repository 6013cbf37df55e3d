package ports

import (
	"context"

	"github.com/premierleague/fixtures-api/internal/core/domain"
)

// TeamRepository defines persistence operations for teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, id, name string) (*domain.Team, error)
	Delete(ctx context.Context, id string) error
}
