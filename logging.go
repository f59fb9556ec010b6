// Package hangman wires the bitset index, set algebra, sampler, LU cache,
// game adapter, and strategy core together behind a small CLI.
package hangman

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hangman-specific context fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger from handler. A nil handler defaults to a
// text handler writing to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON-formatted log lines to
// stderr at the given minimum level.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that writes human-readable log lines to
// stderr at the given minimum level.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// WithGame tags the logger with a game identifier, useful when running
// many simulated games concurrently.
func (l *Logger) WithGame(id int) *Logger {
	return &Logger{Logger: l.Logger.With("game", id)}
}

// LogIndexBuild logs the outcome of an index build.
func (l *Logger) LogIndexBuild(ctx context.Context, words, threads int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed", "words", words, "threads", threads, "error", err)
		return
	}
	l.InfoContext(ctx, "index built", "words", words, "threads", threads)
}

// LogGuess logs a single guess decision.
func (l *Logger) LogGuess(ctx context.Context, fingerprint, guess string, candidates, sampled int, cacheHit bool) {
	l.DebugContext(ctx, "guess chosen",
		"fingerprint", fingerprint,
		"guess", guess,
		"candidates", candidates,
		"sampled", sampled,
		"cache_hit", cacheHit,
	)
}

// LogGameOver logs the final outcome of a simulated game.
func (l *Logger) LogGameOver(ctx context.Context, secret string, won bool, score float64, guesses int) {
	l.InfoContext(ctx, "game over",
		"secret", secret,
		"won", won,
		"score", score,
		"guesses", guesses,
	)
}
