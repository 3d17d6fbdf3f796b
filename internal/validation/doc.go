// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator caches struct metadata and reports field
// paths using json tag names, so a bad nested record surfaces as
// "ratings[3].title" rather than the Go field name.
//
// # Quick Start
//
//	type RatingRecord struct {
//	    Title  string   `json:"title" validate:"required,notblank,max=500"`
//	    Year   int      `json:"year" validate:"gte=0,lte=9999"`
//	    Rating *float64 `json:"rating" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Validators
//
//   - notblank: string is non-empty after trimming whitespace
//
// # Error Format
//
// Every failure maps to the VALIDATION_FAILED code. A single failure carries
// field, tag and value details; several failures carry a "fields" list.
package validation
