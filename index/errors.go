package index

import "errors"

// ErrBuildFailed wraps the first error raised by an indexing worker during
// BuildParallel.
var ErrBuildFailed = errors.New("index: build failed")
