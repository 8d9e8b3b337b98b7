package world

import "errors"

var (
	// ErrPlacementRejected reports a rect that overlapped used space or left the world bounds.
	ErrPlacementRejected = errors.New("placement rejected")
	// ErrGenerationIncomplete reports fewer features or stairs than requested.
	ErrGenerationIncomplete = errors.New("generation incomplete")
)
