// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

// Package docs registers the OpenAPI 2.0 description of the HTTP API with
// swag, so http-swagger can serve it at /swagger/doc.json. Importing the
// package for its side effect is enough.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "schemes": {{ marshal .Schemes }},
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "license": {"name": "AGPL-3.0-or-later"}
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recommendations": {
            "post": {
                "summary": "Recommend movies for a set of ratings",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RecommendationRequest"}}],
                "responses": {
                    "200": {"description": "Ranked predictions", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "VALIDATION_FAILED, BAD_REQUEST or INVALID_FILTER", "schema": {"$ref": "#/definitions/Envelope"}},
                    "413": {"description": "Body larger than 1 MiB", "schema": {"$ref": "#/definitions/Envelope"}},
                    "422": {"description": "INVALID_RATING", "schema": {"$ref": "#/definitions/Envelope"}},
                    "429": {"description": "TOO_MANY_REQUESTS", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "MODEL_CORRUPT", "schema": {"$ref": "#/definitions/Envelope"}},
                    "503": {"description": "Timed out or cancelled", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/users/{userID}/ratings": {
            "put": {
                "summary": "Store ratings for a user (not implemented)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "parameters": [
                    {"in": "path", "name": "userID", "type": "string", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RatingsUpdateRequest"}}
                ],
                "responses": {
                    "400": {"description": "VALIDATION_FAILED", "schema": {"$ref": "#/definitions/Envelope"}},
                    "501": {"description": "NOT_IMPLEMENTED", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/catalog/resolve": {
            "get": {
                "summary": "Resolve a title and year to a catalog id",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "parameters": [
                    {"in": "query", "name": "title", "type": "string", "required": true},
                    {"in": "query", "name": "year", "type": "integer", "minimum": 0, "maximum": 9999}
                ],
                "responses": {
                    "200": {"description": "Match kind and item", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "VALIDATION_FAILED", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/model": {
            "get": {
                "summary": "Describe the loaded factor model",
                "produces": ["application/json"],
                "tags": ["model"],
                "responses": {"200": {"description": "Model dimensions and scale", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/health/live": {
            "get": {
                "summary": "Liveness probe",
                "produces": ["application/json"],
                "tags": ["health"],
                "responses": {"200": {"description": "Alive", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/health/ready": {
            "get": {
                "summary": "Readiness probe",
                "produces": ["application/json"],
                "tags": ["health"],
                "responses": {
                    "200": {"description": "Catalog and model loaded", "schema": {"$ref": "#/definitions/Envelope"}},
                    "503": {"description": "Not ready", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Rating": {
            "type": "object",
            "required": ["title", "rating"],
            "properties": {
                "title": {"type": "string", "maxLength": 500},
                "year": {"type": "integer", "minimum": 0, "maximum": 9999},
                "rating": {"type": "number"}
            }
        },
        "RecommendationRequest": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string", "maxLength": 128},
                "ratings": {"type": "array", "items": {"$ref": "#/definitions/Rating"}},
                "top_n": {"type": "integer", "minimum": 0},
                "filter": {"type": "string", "maxLength": 2048}
            }
        },
        "RatingsUpdateRequest": {
            "type": "object",
            "required": ["ratings"],
            "properties": {
                "ratings": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/Rating"}}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"},
                        "request_id": {"type": "string"}
                    }
                },
                "meta": {
                    "type": "object",
                    "properties": {
                        "request_id": {"type": "string"},
                        "timestamp": {"type": "string", "format": "date-time"},
                        "duration_ms": {"type": "integer"},
                        "cached": {"type": "boolean"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds the values substituted into docTemplate.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Reelfold API",
	Description:      "Movie recommendations folded in from a pretrained rating factorization.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
