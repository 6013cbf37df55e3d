package ports

import (
	"context"

	"github.com/premierleague/fixtures-api/internal/core/domain"
)

// TeamService defines team CRUD use-cases.
type TeamService interface {
	Create(ctx context.Context, name string) (*domain.Team, error)
	Get(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, id, name string) (*domain.Team, error)
	Delete(ctx context.Context, id string) error
}
