package domain

import "errors"

var ErrTeamNotFound = errors.New("team not found")
var ErrTeamExists = errors.New("team name already exists")

// Team is a uniquely named club.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
