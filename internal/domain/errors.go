package domain

import "errors"

// ErrIndexOutOfRange reports a batch-delete index outside the current
// list bounds. This is a caller contract violation, not a runtime
// condition to recover from.
var ErrIndexOutOfRange = errors.New("session index out of range")
