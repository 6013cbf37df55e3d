package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/premierleague/fixtures-api/internal/core/domain"
	"github.com/premierleague/fixtures-api/internal/core/ports"
)

// TeamService implements team CRUD. Uniqueness of names is enforced by the
// repository's unique index; duplicates surface as domain.ErrTeamExists.
type TeamService struct {
	repo ports.TeamRepository
	log  zerolog.Logger
}

func NewTeamService(repo ports.TeamRepository, log zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, log: log}
}

func (s *TeamService) Create(ctx context.Context, name string) (*domain.Team, error) {
	team, err := s.repo.Create(ctx, &domain.Team{Name: name})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")
	return team, nil
}

func (s *TeamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TeamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *TeamService) Update(ctx context.Context, id, name string) (*domain.Team, error) {
	team, err := s.repo.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("team_id", id).Str("name", name).Msg("team updated")
	return team, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("team_id", id).Msg("team deleted")
	return nil
}
