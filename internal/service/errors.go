package service

import "errors"

// ErrNoRecommendations is returned when a genre query matches no books. It is
// a NotFound at the HTTP boundary, kept distinct from store.ErrNotFound so
// the handler can report "no matches" rather than a missing record.
var ErrNoRecommendations = errors.New("no books match the genre query")
