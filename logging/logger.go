package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the minimal logging interface for ArchPact. This allows
// hosts to provide their own logger implementation or use the built-in
// adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NegotiationLogger wraps slog.Logger adding contextual cloning helpers and
// domain convenience methods. It is cheap to copy via the With* methods.
type NegotiationLogger struct {
	logger        *slog.Logger
	level         LogLevel
	component     string
	negotiationID string
}

// LoggerConfig configures construction of a NegotiationLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// NewLogger builds a NegotiationLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *NegotiationLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return &NegotiationLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent sets the logical component (engine, reviewer, provider).
func (l *NegotiationLogger) WithComponent(c string) *NegotiationLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithNegotiation attaches the negotiation identifier to every entry.
func (l *NegotiationLogger) WithNegotiation(id string) *NegotiationLogger {
	nl := *l
	nl.negotiationID = id
	return &nl
}

// Debug logs at debug level.
func (l *NegotiationLogger) Debug(msg string, args ...any) {
	if l.level > LogLevelDebug {
		return
	}
	l.logger.Debug(msg, l.withBase(args)...)
}

// Info logs at info level.
func (l *NegotiationLogger) Info(msg string, args ...any) {
	if l.level > LogLevelInfo {
		return
	}
	l.logger.Info(msg, l.withBase(args)...)
}

// Warn logs at warn level.
func (l *NegotiationLogger) Warn(msg string, args ...any) {
	if l.level > LogLevelWarn {
		return
	}
	l.logger.Warn(msg, l.withBase(args)...)
}

// Error logs at error level.
func (l *NegotiationLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, l.withBase(args)...)
}

func (l *NegotiationLogger) withBase(args []any) []any {
	base := make([]any, 0, len(args)+4)
	if l.component != "" {
		base = append(base, "component", l.component)
	}
	if l.negotiationID != "" {
		base = append(base, "negotiation_id", l.negotiationID)
	}
	return append(base, args...)
}

// LogProviderCall records latency and outcome of one external provider call.
func (l *NegotiationLogger) LogProviderCall(provider, operation string, dur time.Duration, err error) {
	args := []any{"provider", provider, "operation", operation, "duration", dur, "success", err == nil}
	if err != nil {
		args = append(args, "error", err.Error())
		l.Warn("provider call failed", args...)
		return
	}
	l.Info("provider call completed", args...)
}

// LogRound records the outcome of one completed negotiation round.
func (l *NegotiationLogger) LogRound(round, agreements, disagreements int, converging bool) {
	l.Info("negotiation round completed",
		"round", round,
		"agreements", agreements,
		"disagreements", disagreements,
		"converging", converging,
	)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is
// disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
