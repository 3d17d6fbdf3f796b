// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRatings means no rating could be matched to a model item, so
	// the user cannot be personalized. The service turns it into an empty
	// result rather than a failure.
	ErrEmptyRatings = errors.New("no usable ratings")

	// ErrSingularSystem means the fold-in normal equations were not positive
	// definite. With λ > 0 this only happens on corrupt factor data.
	ErrSingularSystem = errors.New("singular system")

	// ErrInvalidRating marks a rating value outside the accepted range.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrTooManyRatings means a request exceeded the configured rating limit.
	ErrTooManyRatings = errors.New("too many ratings")

	// ErrInvalidFilter marks a filter expression that does not compile to a
	// boolean predicate.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrOnlineUpdateUnsupported is returned by UpdateUserRatings.
	ErrOnlineUpdateUnsupported = errors.New("online model updates are not supported")
)

// InvalidRatingError identifies the offending rating.
type InvalidRatingError struct {
	Index int
	Title string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("rating %d (%q): value %v outside [%v, %v]", e.Index, e.Title, e.Value, e.Min, e.Max)
}

func (e *InvalidRatingError) Unwrap() error {
	return ErrInvalidRating
}
