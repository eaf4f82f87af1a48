package sorting

import "errors"

// ErrUnknownAlgorithm is returned when a name or key matches no algorithm.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
