// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"fmt"

	"github.com/tomtom215/reelfold/internal/factors"
)

// Transform is the linear map external = internal*Factor + Offset between the
// model's training scale and the scale users rate on.
type Transform struct {
	Factor float64 `json:"factor"`
	Offset float64 `json:"offset"`
}

// Validate requires a positive, finite factor so the map preserves order.
func (t Transform) Validate() error {
	if !finite(t.Factor) || t.Factor <= 0 {
		return fmt.Errorf("scale.factor must be positive, got %v", t.Factor)
	}
	if !finite(t.Offset) {
		return fmt.Errorf("scale.offset must be finite, got %v", t.Offset)
	}
	return nil
}

// ToExternal maps a model-scale value to the user-facing scale.
func (t Transform) ToExternal(v float64) float64 {
	return v*t.Factor + t.Offset
}

// ToInternal maps a user-facing value onto the model scale.
func (t Transform) ToInternal(v float64) float64 {
	return (v - t.Offset) / t.Factor
}

// Range returns the user-facing image [T(lo), T(hi)] of a model scale.
func (t Transform) Range(s factors.Scale) (lo, hi float64) {
	return t.ToExternal(s.Lo), t.ToExternal(s.Hi)
}
