package hangman

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerConstructorsDoNotPanic(t *testing.T) {
	ctx := context.Background()
	for _, l := range []*Logger{NewLogger(nil), NewJSONLogger(0), NewTextLogger(0), NoopLogger()} {
		assert.NotNil(t, l)
		l.LogIndexBuild(ctx, 10, 2, nil)
		l.LogGuess(ctx, "fp", "E", 5, 3, false)
		l.LogGameOver(ctx, "CAT", true, 4.0, 3)
	}
}

func TestWithGameAddsField(t *testing.T) {
	l := NoopLogger().WithGame(7)
	assert.NotNil(t, l)
}
