// Package game builds the dungeon world and drives the terminal preview.
package game

// State represents the current preview mode.
type State int

const (
	// StateExplore follows the player around the map.
	StateExplore State = iota
	// StateOverview shows the map from its top-left corner with the player hidden.
	StateOverview
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateOverview:
		return "overview"
	default:
		return "unknown"
	}
}

// Next cycles to the following mode.
func (s State) Next() State {
	if s == StateExplore {
		return StateOverview
	}
	return StateExplore
}
