package orm

import "errors"

// ErrInvalidInput reports a signal too short to analyze (fewer than two
// samples).
var ErrInvalidInput = errors.New("orm: invalid input")
