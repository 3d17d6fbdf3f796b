// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/recommend"
	"github.com/tomtom215/reelfold/internal/validation"
)

// RatingRecord is one rating in a request body. Rating is a pointer so a
// missing value is rejected instead of read as zero.
type RatingRecord struct {
	Title  string   `json:"title" validate:"required,notblank,max=500"`
	Year   int      `json:"year" validate:"gte=0,lte=9999"`
	Rating *float64 `json:"rating" validate:"required"`
}

// RecommendationRequest is the body of POST /api/v1/recommendations.
type RecommendationRequest struct {
	UserID  string         `json:"user_id" validate:"max=128"`
	Ratings []RatingRecord `json:"ratings" validate:"dive"`
	TopN    int            `json:"top_n" validate:"gte=0"`
	Filter  string         `json:"filter" validate:"max=2048"`
}

// RatingsUpdateRequest is the body of PUT /api/v1/users/{userID}/ratings.
type RatingsUpdateRequest struct {
	Ratings []RatingRecord `json:"ratings" validate:"required,min=1,dive"`
}

// ResolveResponse reports how a title resolved against the catalog.
type ResolveResponse struct {
	Title string        `json:"title"`
	Year  int           `json:"year"`
	Match string        `json:"match"`
	Item  *catalog.Item `json:"item"`
}

func toRawRatings(records []RatingRecord) []recommend.RawRating {
	out := make([]recommend.RawRating, len(records))
	for i, rec := range records {
		out[i] = recommend.RawRating{
			Title: rec.Title,
			Year:  rec.Year,
			Value: *rec.Rating,
		}
	}
	return out
}

// decodeBody reads a size-limited JSON body into dst and validates it.
// It writes the error response itself and reports whether to continue.
func decodeBody(rw *ResponseWriter, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "Request body too large")
			return false
		}
		rw.BadRequest("Failed to read request body")
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		rw.BadRequest("Invalid request body: " + err.Error())
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// Recommendations handles POST /api/v1/recommendations.
// Ratings that do not resolve are counted in stats, not rejected; a request
// where nothing resolves succeeds with an empty prediction list.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendationRequest
	if !decodeBody(rw, w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res, err := h.service.GetRecommendations(ctx, recommend.Request{
		UserID:  req.UserID,
		Ratings: toRawRatings(req.Ratings),
		TopN:    req.TopN,
		Filter:  req.Filter,
	})
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}

	rw.SuccessWithMeta(res, &APIMeta{Cached: res.Stats.CacheHit})
}

// UpdateRatings handles PUT /api/v1/users/{userID}/ratings.
// The model is frozen, so a well-formed request always gets 501.
func (h *Handler) UpdateRatings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RatingsUpdateRequest
	if !decodeBody(rw, w, r, &req) {
		return
	}

	err := h.service.UpdateUserRatings(r.Context(), chi.URLParam(r, "userID"), toRawRatings(req.Ratings))
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}
	rw.Success(map[string]interface{}{"updated": len(req.Ratings)})
}

// CatalogResolve handles GET /api/v1/catalog/resolve?title=&year=.
// It exposes the resolution outcome so clients can see why a rating was
// not used.
func (h *Handler) CatalogResolve(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	title := q.Get("title")
	if strings.TrimSpace(title) == "" {
		rw.ValidationError("title is required", map[string]interface{}{"field": "title", "tag": "required"})
		return
	}

	year := 0
	if raw := q.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 9999 {
			rw.ValidationError("year must be an integer between 0 and 9999", map[string]interface{}{"field": "year", "value": raw})
			return
		}
		year = parsed
	}

	resp := ResolveResponse{Title: title, Year: year}
	id, match := h.service.Resolve(title, year)
	resp.Match = match.String()
	if match != catalog.MatchNone {
		if item, ok := h.service.Lookup(id); ok {
			resp.Item = &item
		}
	}

	rw.Success(resp)
}

// ModelInfo handles GET /api/v1/model.
func (h *Handler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.service.ModelInfo())
}
