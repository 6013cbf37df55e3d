package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/premierleague/fixtures-api/internal/core/domain"
	"github.com/premierleague/fixtures-api/internal/core/ports"
)

// FixtureCache abstracts the list cache (Redis). Entries are opportunistic:
// a read error is treated as a miss and writes are best-effort.
type FixtureCache interface {
	// GetAll returns the cached list and whether the key was present.
	GetAll(ctx context.Context) ([]*domain.Fixture, bool, error)
	SetAll(ctx context.Context, fixtures []*domain.Fixture) error
	Invalidate(ctx context.Context) error
}

// FixtureService implements fixture use-cases. The clock is injected so the
// derived status and the score-update gate can be driven in tests.
type FixtureService struct {
	fixtures ports.FixtureRepository
	teams    ports.TeamRepository
	cache    FixtureCache
	clock    clockwork.Clock
	log      zerolog.Logger
}

func NewFixtureService(
	fixtures ports.FixtureRepository,
	teams ports.TeamRepository,
	cache FixtureCache,
	clock clockwork.Clock,
	log zerolog.Logger,
) *FixtureService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &FixtureService{
		fixtures: fixtures,
		teams:    teams,
		cache:    cache,
		clock:    clock,
		log:      log,
	}
}

// Create schedules a new fixture. The date must be strictly in the future and
// both team references must resolve to existing teams.
func (s *FixtureService) Create(ctx context.Context, input ports.CreateFixtureInput) (*ports.FixtureView, error) {
	if err := s.checkInput(ctx, input); err != nil {
		return nil, err
	}

	fixture, err := s.fixtures.Create(ctx, ports.FixtureRecord{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Date:       input.Date,
		Link:       generateLink(),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create fixture")
		return nil, err
	}

	s.log.Info().Str("fixture_id", fixture.ID).Str("link", fixture.Link).Time("date", fixture.Date).Msg("fixture created")
	return s.view(fixture), nil
}

func (s *FixtureService) Get(ctx context.Context, id string) (*ports.FixtureView, error) {
	fixture, err := s.fixtures.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(fixture), nil
}

// ListAll serves the full fixture list cache-aside: consult the cache first,
// fall back to the store on a miss and repopulate. Writes do not evict the
// key, so reads may lag mutations by up to the cache TTL.
func (s *FixtureService) ListAll(ctx context.Context) (*ports.FixtureListResult, error) {
	cached, hit, err := s.cache.GetAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("fixture list cache read failed, falling back to store")
	} else if hit {
		return &ports.FixtureListResult{Items: s.views(cached), FromCache: true}, nil
	}

	fixtures, err := s.fixtures.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetAll(ctx, fixtures); err != nil {
		s.log.Warn().Err(err).Msg("failed to populate fixture list cache")
	}

	return &ports.FixtureListResult{Items: s.views(fixtures), FromCache: false}, nil
}

// ListByStatus filters fixtures by status derived at call time. Status is
// recomputed on every read; only raw fixture data is ever cached.
func (s *FixtureService) ListByStatus(ctx context.Context, status string) ([]ports.FixtureView, error) {
	want, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	fixtures, err := s.fixtures.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	views := make([]ports.FixtureView, 0, len(fixtures))
	for _, f := range fixtures {
		if f.Status(now) == want {
			views = append(views, *s.view(f))
		}
	}
	return views, nil
}

// Search matches a case-insensitive substring against either team name and
// the fixture link. An empty query returns every fixture.
func (s *FixtureService) Search(ctx context.Context, query string) ([]ports.FixtureView, error) {
	fixtures, err := s.fixtures.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	views := make([]ports.FixtureView, 0, len(fixtures))
	for _, f := range fixtures {
		if strings.Contains(strings.ToLower(f.HomeTeam.Name), q) ||
			strings.Contains(strings.ToLower(f.AwayTeam.Name), q) ||
			strings.Contains(strings.ToLower(f.Link), q) {
			views = append(views, *s.view(f))
		}
	}
	return views, nil
}

// Update reschedules a fixture. The score is not editable through this path.
func (s *FixtureService) Update(ctx context.Context, id string, input ports.CreateFixtureInput) (*ports.FixtureView, error) {
	if err := s.checkInput(ctx, input); err != nil {
		return nil, err
	}

	fixture, err := s.fixtures.Update(ctx, id, ports.FixtureRecord{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Date:       input.Date,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("fixture_id", id).Time("date", fixture.Date).Msg("fixture updated")
	return s.view(fixture), nil
}

// UpdateScore stores the score string on a fixture that has kicked off.
// While the derived status is still pending the write is rejected; the
// status itself remains a function of time and is untouched by the score.
func (s *FixtureService) UpdateScore(ctx context.Context, id, score string) (*ports.FixtureView, error) {
	fixture, err := s.fixtures.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fixture.Status(s.clock.Now()) == domain.StatusPending {
		return nil, domain.ErrFixtureNotStarted
	}

	updated, err := s.fixtures.UpdateScore(ctx, id, score)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("fixture_id", id).Str("score", score).Msg("fixture score updated")
	return s.view(updated), nil
}

func (s *FixtureService) Delete(ctx context.Context, id string) error {
	if err := s.fixtures.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("fixture_id", id).Msg("fixture deleted")
	return nil
}

// checkInput enforces the future-date rule and that both team refs resolve.
func (s *FixtureService) checkInput(ctx context.Context, input ports.CreateFixtureInput) error {
	if !input.Date.After(s.clock.Now()) {
		return domain.ErrDateNotFuture
	}

	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		if _, err := s.teams.FindByID(ctx, teamID); err != nil {
			return domain.ErrInvalidTeamRef
		}
	}
	return nil
}

func (s *FixtureService) view(f *domain.Fixture) *ports.FixtureView {
	return &ports.FixtureView{
		ID:       f.ID,
		HomeTeam: ports.TeamView{ID: f.HomeTeam.ID, Name: f.HomeTeam.Name},
		AwayTeam: ports.TeamView{ID: f.AwayTeam.ID, Name: f.AwayTeam.Name},
		Date:     f.Date,
		Status:   f.Status(s.clock.Now()),
		Score:    f.Score,
		Link:     f.Link,
	}
}

func (s *FixtureService) views(fixtures []*domain.Fixture) []ports.FixtureView {
	out := make([]ports.FixtureView, len(fixtures))
	for i, f := range fixtures {
		out[i] = *s.view(f)
	}
	return out
}

// generateLink returns a unique shareable link in the format fixture-<uuid>.
func generateLink() string {
	return "fixture-" + uuid.NewString()
}
