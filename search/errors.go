package search

import "errors"

// ErrNoSuchExample indicates that no generated value satisfied the predicate
// within the configured budget.
var ErrNoSuchExample = errors.New("search: no such example")
