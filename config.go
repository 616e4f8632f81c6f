package condfilter

import (
	"errors"
	"log/slog"

	"github.com/hugr-lab/condfilter/condition"
)

// Config configures a Registry.
type Config struct {
	// Types restricts the registry to a subset of condition types.
	// OPTIONAL: If empty, every supported type is registered.
	// Every entry MUST name a supported type.
	Types []condition.Type

	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil and LogLevel is nil.
	// If Logger is also provided, LogLevel is ignored (use pre-configured logger).
	Logger *slog.Logger

	// LogLevel creates a stderr text logger with the given level when Logger is nil.
	// OPTIONAL: Valid values: slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError
	LogLevel *slog.Level
}

// Standard errors returned by condfilter package.
var (
	// ErrInvalidConfig indicates Config or ConfigBuilder validation failed.
	ErrInvalidConfig = errors.New("invalid condfilter config")
)
