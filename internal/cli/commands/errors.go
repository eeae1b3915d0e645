package commands

import "errors"

// ErrCheckFailed is returned by check when fixtures cannot be generated cleanly
var ErrCheckFailed = errors.New("fixture check failed")
