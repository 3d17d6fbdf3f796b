// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrorCode is the API error code for every failed struct validation.
const ErrorCode = "VALIDATION_FAILED"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is one failed rule on one field.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   any
	message string
}

// Field returns the JSON path of the field that failed, e.g. "ratings[2].title".
func (e *ValidationError) Field() string { return e.field }

// Tag returns the rule that failed ("required", "max", ...).
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the rule parameter, "100" for max=100.
func (e *ValidationError) Param() string { return e.param }

// Value returns the rejected value.
func (e *ValidationError) Value() any { return e.value }

func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed rule of one request body.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual failures in declaration order.
func (ve *RequestValidationError) Errors() []ValidationError { return ve.errors }

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	return ve.joined()
}

func (ve *RequestValidationError) joined() string {
	var b strings.Builder
	for i := range ve.errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ve.errors[i].message)
	}
	return b.String()
}

// APIError is the code, message and details of an error response.
// api.APIError has the same shape; this copy keeps the packages acyclic.
type APIError struct {
	Code    string
	Message string
	Details map[string]any
}

// ToAPIError shapes the failures for the response envelope. A single
// failure is reported inline; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	out := &APIError{Code: ErrorCode, Message: "Validation failed"}

	switch len(ve.errors) {
	case 0:
	case 1:
		e := ve.errors[0]
		out.Message = e.message
		out.Details = map[string]any{"field": e.field, "tag": e.tag, "value": e.value}
	default:
		fields := make([]map[string]interface{}, 0, len(ve.errors))
		for _, e := range ve.errors {
			fields = append(fields, map[string]interface{}{
				"field":   e.field,
				"tag":     e.tag,
				"message": e.message,
			})
		}
		out.Message = ve.joined()
		out.Details = map[string]any{"fields": fields}
	}
	return out
}

// GetValidator returns the shared validator. Errors name fields by their
// json tag and the custom "notblank" rule is registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		if err := v.RegisterValidation("notblank", notBlank); err != nil {
			panic(fmt.Sprintf("validation: register notblank: %v", err))
		}
		validate = v
	})
	return validate
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateStruct runs the struct tags of s. It returns nil when s is valid.
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct.
		return &RequestValidationError{errors: []ValidationError{
			{field: "unknown", tag: "unknown", message: err.Error()},
		}}
	}

	out := &RequestValidationError{errors: make([]ValidationError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		path := fieldPath(fe)
		out.errors = append(out.errors, ValidationError{
			field:   path,
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: describe(fe, path),
		})
	}
	return out
}

// fieldPath strips the root struct name, so
// "RecommendationRequest.ratings[0].title" becomes "ratings[0].title".
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError, field string) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unitOf(fe.Kind()))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unitOf(fe.Kind()))
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

func unitOf(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}
