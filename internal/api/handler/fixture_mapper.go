package handler

import (
	"github.com/premierleague/fixtures-api/internal/core/ports"
)

// --- Service view → HTTP response ---

func toFixtureResponse(v *ports.FixtureView) fixtureResponse {
	return fixtureResponse{
		ID:       v.ID,
		HomeTeam: teamRefResponse{ID: v.HomeTeam.ID, Name: v.HomeTeam.Name},
		AwayTeam: teamRefResponse{ID: v.AwayTeam.ID, Name: v.AwayTeam.Name},
		Date:     v.Date.UTC(),
		Status:   string(v.Status),
		Score:    v.Score,
		Link:     v.Link,
	}
}

func toFixtureListResponse(views []ports.FixtureView) []fixtureResponse {
	out := make([]fixtureResponse, len(views))
	for i := range views {
		out[i] = toFixtureResponse(&views[i])
	}
	return out
}
