// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/reelfold/internal/logging"
	"github.com/tomtom215/reelfold/internal/recommend"
)

// writeServiceError maps a recommendation service error onto the response
// envelope. Unknown errors become a generic 500 and are logged.
func writeServiceError(rw *ResponseWriter, r *http.Request, err error) {
	var invalid *recommend.InvalidRatingError

	switch {
	case errors.As(err, &invalid):
		rw.ErrorWithDetails(http.StatusUnprocessableEntity, ErrCodeInvalidRating, invalid.Error(), map[string]interface{}{
			"index": invalid.Index,
			"title": invalid.Title,
			"value": invalid.Value,
			"min":   invalid.Min,
			"max":   invalid.Max,
		})

	case errors.Is(err, recommend.ErrTooManyRatings):
		rw.ValidationError(err.Error(), nil)

	case errors.Is(err, recommend.ErrInvalidFilter):
		rw.Error(http.StatusBadRequest, ErrCodeInvalidFilter, err.Error())

	case errors.Is(err, recommend.ErrSingularSystem):
		// Already logged by the service with full context.
		rw.Error(http.StatusInternalServerError, ErrCodeModelCorrupt,
			"The model could not fold in these ratings")

	case errors.Is(err, recommend.ErrOnlineUpdateUnsupported):
		rw.Error(http.StatusNotImplemented, ErrCodeNotImplemented, err.Error())

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		rw.ServiceUnavailable("Request timed out or was cancelled")

	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Unexpected recommendation error")
		rw.InternalError("Failed to generate recommendations")
	}
}
