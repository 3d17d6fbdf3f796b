// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler is a slog.Handler that writes through zerolog, so the
// supervisor's sutureslog events share the application log stream.
//
// Attributes added with WithAttrs are baked into a child zerolog logger.
// Open groups become a dotted key prefix ("svc.name").
type SlogHandler struct {
	logger zerolog.Logger
	prefix string
}

// NewSlogHandler wraps the global logger as it is at call time.
func NewSlogHandler() *SlogHandler {
	return NewSlogHandlerWithLogger(Logger())
}

// NewSlogHandlerWithLogger wraps logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandlerWithLogger(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// NewSlogLogger returns a *slog.Logger backed by the global zerolog logger:
//
//	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler())
}

// Enabled implements slog.Handler.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return zerologLevel(level) >= h.logger.GetLevel()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(zerologLevel(record.Level))
	if event == nil {
		return nil
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = appendAttr(event, h.prefix, attr)
		return true
	})
	event.Msg(record.Message)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	ctx := h.logger.With()
	for _, attr := range attrs {
		ctx = ctx.Fields(flattenAttr(h.prefix, attr, nil))
	}
	return &SlogHandler{logger: ctx.Logger(), prefix: h.prefix}
}

// WithGroup implements slog.Handler.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, prefix: h.prefix + name + "."}
}

func appendAttr(event *zerolog.Event, prefix string, attr slog.Attr) *zerolog.Event {
	return event.Fields(flattenAttr(prefix, attr, nil))
}

// flattenAttr resolves attr into dst, expanding groups into dotted keys.
func flattenAttr(prefix string, attr slog.Attr, dst map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, 1)
	}
	v := attr.Value.Resolve()
	key := prefix + attr.Key

	switch v.Kind() {
	case slog.KindGroup:
		// A group with an empty key is inlined.
		inner := prefix
		if attr.Key != "" {
			inner = key + "."
		}
		for _, ga := range v.Group() {
			flattenAttr(inner, ga, dst)
		}
	case slog.KindAny:
		if attr.Key != "" {
			dst[key] = v.Any()
		}
	case slog.KindString:
		dst[key] = v.String()
	case slog.KindInt64:
		dst[key] = v.Int64()
	case slog.KindUint64:
		dst[key] = v.Uint64()
	case slog.KindFloat64:
		dst[key] = v.Float64()
	case slog.KindBool:
		dst[key] = v.Bool()
	case slog.KindDuration:
		dst[key] = v.Duration()
	case slog.KindTime:
		dst[key] = v.Time()
	default:
		dst[key] = v.Any()
	}
	return dst
}

// zerologLevel maps slog levels, including custom in-between values, to the
// nearest zerolog level at or below.
func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
