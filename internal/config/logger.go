package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var ErrUnknownLogFormat = errors.New("unknown log format")

// ParseLogLevel accepts debug, info, warn and error in any case, with an optional offset like "info+2".
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}

	return level, nil
}

// NewLogger creates a slog.Logger writing text or JSON records of at least level to w.
func NewLogger(level slog.Level, format string, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case LogFormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.Join(ErrUnknownLogFormat, fmt.Errorf("format %q, want %q or %q", format, LogFormatText, LogFormatJSON))
	}
}
