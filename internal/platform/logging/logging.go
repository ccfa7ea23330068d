// Package logging builds the process logger and carries per-request loggers
// through contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "task toggled", slog.String("id", taskID))
//
// Error logs carry the operation, the task or title involved and the error
// chain as slog.Any("error", err).
//
// Every attribute passes through masq before it is written: credential
// field names are masked outright, and values that look like bearer tokens,
// JWTs or inline API keys are masked wherever they appear.
package logging

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// sensitiveHeaders are the lowercase names of request headers that carry
// credentials.
var sensitiveHeaders = []string{"authorization", "cookie", "x-api-key"}

// sensitiveFields are masked by name in addition to sensitiveHeaders.
var sensitiveFields = []string{"password", "secret", "token"}

var sensitivePrefixes = []string{"secret_", "api_key"}

var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[\w\-.~+/]+=*`),
	// JWT: three dot-separated segments of at least ten characters, so
	// version strings are left alone.
	regexp.MustCompile(`[\w-]{10,}\.[\w-]{10,}\.[\w-]{10,}`),
	regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*\S+`),
}

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (anything else means info); format "text" selects the text handler
// and anything else JSON. Debug loggers also report the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: redactor(),
	}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// IsSensitiveHeader reports whether the request header name carries
// credentials and must not be logged verbatim.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, name := range slices.Concat(sensitiveHeaders, sensitiveFields) {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
