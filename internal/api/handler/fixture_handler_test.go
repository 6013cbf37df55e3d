package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/premierleague/fixtures-api/internal/core/domain"
	"github.com/premierleague/fixtures-api/internal/core/ports"
)

type stubFixtureService struct {
	createFn       func(ctx context.Context, input ports.CreateFixtureInput) (*ports.FixtureView, error)
	getFn          func(ctx context.Context, id string) (*ports.FixtureView, error)
	listAllFn      func(ctx context.Context) (*ports.FixtureListResult, error)
	listByStatusFn func(ctx context.Context, status string) ([]ports.FixtureView, error)
	searchFn       func(ctx context.Context, query string) ([]ports.FixtureView, error)
	updateFn       func(ctx context.Context, id string, input ports.CreateFixtureInput) (*ports.FixtureView, error)
	updateScoreFn  func(ctx context.Context, id, score string) (*ports.FixtureView, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubFixtureService) Create(ctx context.Context, input ports.CreateFixtureInput) (*ports.FixtureView, error) {
	return s.createFn(ctx, input)
}

func (s *stubFixtureService) Get(ctx context.Context, id string) (*ports.FixtureView, error) {
	return s.getFn(ctx, id)
}

func (s *stubFixtureService) ListAll(ctx context.Context) (*ports.FixtureListResult, error) {
	return s.listAllFn(ctx)
}

func (s *stubFixtureService) ListByStatus(ctx context.Context, status string) ([]ports.FixtureView, error) {
	return s.listByStatusFn(ctx, status)
}

func (s *stubFixtureService) Search(ctx context.Context, query string) ([]ports.FixtureView, error) {
	return s.searchFn(ctx, query)
}

func (s *stubFixtureService) Update(ctx context.Context, id string, input ports.CreateFixtureInput) (*ports.FixtureView, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubFixtureService) UpdateScore(ctx context.Context, id, score string) (*ports.FixtureView, error) {
	return s.updateScoreFn(ctx, id, score)
}

func (s *stubFixtureService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func sampleView() *ports.FixtureView {
	return &ports.FixtureView{
		ID:       "f1",
		HomeTeam: ports.TeamView{ID: "t1", Name: "Arsenal"},
		AwayTeam: ports.TeamView{ID: "t2", Name: "Chelsea"},
		Date:     time.Date(2026, time.September, 12, 15, 0, 0, 0, time.UTC),
		Status:   domain.StatusPending,
		Link:     "fixture-abc",
	}
}

func TestFixtureHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubFixtureService{
		createFn: func(ctx context.Context, input ports.CreateFixtureInput) (*ports.FixtureView, error) {
			if input.HomeTeamID != "t1" || input.AwayTeamID != "t2" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleView(), nil
		},
	}
	handler := NewFixtureHandler(stub)

	body := strings.NewReader(`{"home_team_id":"t1","away_team_id":"t2","date":"2026-09-12T15:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/fixtures", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp["data"].(map[string]any)
	if data["status"] != "pending" {
		t.Fatalf("expected derived status in response, got %v", data["status"])
	}
	if data["link"] != "fixture-abc" {
		t.Fatalf("expected link in response, got %v", data["link"])
	}
}

func TestFixtureHandler_Create_SameTeamRejected(t *testing.T) {
	e := newTestEcho()
	stub := &stubFixtureService{
		createFn: func(ctx context.Context, input ports.CreateFixtureInput) (*ports.FixtureView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewFixtureHandler(stub)

	body := strings.NewReader(`{"home_team_id":"t1","away_team_id":"t1","date":"2026-09-12T15:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/fixtures", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestFixtureHandler_ListAll_SourceField(t *testing.T) {
	e := newTestEcho()

	tests := []struct {
		name      string
		fromCache bool
		want      string
	}{
		{"from store", false, "store"},
		{"from cache", true, "cache"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubFixtureService{
				listAllFn: func(ctx context.Context) (*ports.FixtureListResult, error) {
					return &ports.FixtureListResult{
						Items:     []ports.FixtureView{*sampleView()},
						FromCache: tt.fromCache,
					}, nil
				},
			}
			handler := NewFixtureHandler(stub)

			req := httptest.NewRequest(http.MethodGet, "/fixtures/all", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := handler.ListAll(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["source"] != tt.want {
				t.Fatalf("expected source %q, got %v", tt.want, resp["source"])
			}
		})
	}
}

func TestFixtureHandler_UpdateScore_BadFormat(t *testing.T) {
	e := newTestEcho()
	stub := &stubFixtureService{
		updateScoreFn: func(ctx context.Context, id, score string) (*ports.FixtureView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewFixtureHandler(stub)

	for _, score := range []string{"2:1", "2 - 1", "a : b", "2 :1", " 2 : 1"} {
		body := strings.NewReader(`{"score":"` + score + `"}`)
		req := httptest.NewRequest(http.MethodPut, "/fixtures/score/f1", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.UpdateScore(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("score %q: expected 400 HTTPError, got %v", score, err)
		}
	}
}

func TestFixtureHandler_UpdateScore_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubFixtureService{
		updateScoreFn: func(ctx context.Context, id, score string) (*ports.FixtureView, error) {
			if id != "f1" || score != "2 : 1" {
				t.Fatalf("unexpected args: %s %s", id, score)
			}
			view := sampleView()
			view.Status = domain.StatusOngoing
			view.Score = score
			return view, nil
		},
	}
	handler := NewFixtureHandler(stub)

	body := strings.NewReader(`{"score":"2 : 1"}`)
	req := httptest.NewRequest(http.MethodPut, "/fixtures/score/f1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("f1")

	if err := handler.UpdateScore(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestFixtureHandler_UpdateScore_NotStartedPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubFixtureService{
		updateScoreFn: func(ctx context.Context, id, score string) (*ports.FixtureView, error) {
			return nil, domain.ErrFixtureNotStarted
		},
	}
	handler := NewFixtureHandler(stub)

	body := strings.NewReader(`{"score":"1 : 0"}`)
	req := httptest.NewRequest(http.MethodPut, "/fixtures/score/f1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("f1")

	if err := handler.UpdateScore(c); err != domain.ErrFixtureNotStarted {
		t.Fatalf("expected ErrFixtureNotStarted to propagate, got %v", err)
	}
}

func TestFixtureHandler_Delete(t *testing.T) {
	e := newTestEcho()
	var deletedID string
	stub := &stubFixtureService{
		deleteFn: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	handler := NewFixtureHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/fixtures/f1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("f1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deletedID != "f1" {
		t.Fatalf("expected delete of f1, got %q", deletedID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
