package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/premierleague/fixtures-api/internal/core/domain"
)

type memTeamRepo struct {
	byID   map[string]*domain.Team
	nextID int
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{byID: make(map[string]*domain.Team)}
}

func (r *memTeamRepo) nameTaken(name, exceptID string) bool {
	for id, t := range r.byID {
		if t.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

func (r *memTeamRepo) Create(_ context.Context, team *domain.Team) (*domain.Team, error) {
	if r.nameTaken(team.Name, "") {
		return nil, domain.ErrTeamExists
	}
	r.nextID++
	created := &domain.Team{ID: "team" + strconv.Itoa(r.nextID), Name: team.Name}
	r.byID[created.ID] = created
	return created, nil
}

func (r *memTeamRepo) FindByID(_ context.Context, id string) (*domain.Team, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return t, nil
}

func (r *memTeamRepo) List(_ context.Context) ([]*domain.Team, error) {
	out := make([]*domain.Team, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTeamRepo) Update(_ context.Context, id, name string) (*domain.Team, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	if r.nameTaken(name, id) {
		return nil, domain.ErrTeamExists
	}
	t.Name = name
	return t, nil
}

func (r *memTeamRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestTeamService_CreateAndGet(t *testing.T) {
	svc := NewTeamService(newMemTeamRepo(), zerolog.Nop())

	team, err := svc.Create(context.Background(), "Arsenal")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if team.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.Get(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Arsenal" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
}

func TestTeamService_Create_DuplicateName(t *testing.T) {
	svc := NewTeamService(newMemTeamRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "Chelsea"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "Chelsea"); !errors.Is(err, domain.ErrTeamExists) {
		t.Fatalf("expected ErrTeamExists, got %v", err)
	}
}

func TestTeamService_Update(t *testing.T) {
	svc := NewTeamService(newMemTeamRepo(), zerolog.Nop())

	team, _ := svc.Create(context.Background(), "Arsenal")
	_, _ = svc.Create(context.Background(), "Chelsea")

	updated, err := svc.Update(context.Background(), team.ID, "Arsenal FC")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Arsenal FC" {
		t.Fatalf("name not updated: %s", updated.Name)
	}

	if _, err := svc.Update(context.Background(), team.ID, "Chelsea"); !errors.Is(err, domain.ErrTeamExists) {
		t.Fatalf("expected ErrTeamExists on rename collision, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "missing", "X"); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamService_Delete(t *testing.T) {
	svc := NewTeamService(newMemTeamRepo(), zerolog.Nop())

	team, _ := svc.Create(context.Background(), "Arsenal")
	if err := svc.Delete(context.Background(), team.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), team.ID); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
