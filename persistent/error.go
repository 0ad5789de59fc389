package persistent

import "errors"

// ErrReleased is the panic value when a released list is used.
var ErrReleased = errors.New("persistent: use of released list")
