package summaries

import "errors"

// ErrInvalidInput indicates validation or bad input.
var ErrInvalidInput = errors.New("invalid input")
