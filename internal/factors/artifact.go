// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package factors

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// ArtifactVersion is the only artifact layout this build understands.
const ArtifactVersion = 1

// Artifact is the on-disk JSON form of a trained model:
//
//	{"version":1,"global_mean":3.5,"regularization":0.05,
//	 "rating_scale":{"lo":0.5,"hi":5},"factors":2,
//	 "items":[{"id":1,"bias":0.1,"factor":[0.2,-0.1]}]}
type Artifact struct {
	Version        int           `json:"version"`
	GlobalMean     float64       `json:"global_mean"`
	Regularization float64       `json:"regularization"`
	RatingScale    Scale         `json:"rating_scale"`
	Factors        int           `json:"factors"`
	Items          []ItemFactors `json:"items"`
}

// LoadError reports a model artifact that is missing, malformed or
// inconsistent. It is fatal at startup.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("factors: load: %v", e.Err)
	}
	return fmt.Sprintf("factors: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load decodes and validates an artifact from r.
func Load(r io.Reader) (*Store, error) {
	var a Artifact
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("decode artifact: %w", err)}
	}

	if a.Version != ArtifactVersion {
		return nil, &LoadError{Err: fmt.Errorf("%w: unsupported artifact version %d", ErrInvalidModel, a.Version)}
	}

	store, err := New(Snapshot{
		GlobalMean:     a.GlobalMean,
		Regularization: a.Regularization,
		Scale:          a.RatingScale,
		Dim:            a.Factors,
		Items:          a.Items,
	})
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return store, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close() //nolint:errcheck // read-only file

	store, err := Load(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return store, nil
}
