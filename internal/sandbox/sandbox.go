// Package sandbox defines the code execution gateway that runs learner submissions.
//
// A Session is a long-lived interpreter context: definitions made by one Execute call
// are visible to later calls on the same session until Reset. Unrelated callers must
// use separate sessions.
package sandbox

import (
	"context"
	"time"

	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
)

//go:generate mockgen -destination=mock/mock_sandbox.go -package=sandboxmock github.com/KirkDiggler/codequest/internal/sandbox Gateway,Session

// Language selects the interpreter behind a session
type Language string

// Supported languages
const (
	LanguagePython Language = "python"
	LanguageGo     Language = "go"
)

// Gateway executes code and captures its standard output.
//
// A submission that raises or fails to compile is a successful call with
// Success=false. A returned error means the gateway itself failed (the interpreter
// died, the context expired).
type Gateway interface {
	Execute(ctx context.Context, code string) (*entities.ExecutionResult, error)
}

// Session is a Gateway with explicit lifecycle
type Session interface {
	Gateway
	// Reset drops every definition made so far
	Reset(ctx context.Context) error
	Close() error
}

// Run executes code and folds gateway failures into a failed result, so callers see
// an unavailable or hung interpreter exactly like a crashing submission
func Run(ctx context.Context, g Gateway, code string) entities.ExecutionResult {
	res, err := g.Execute(ctx, code)
	if err != nil {
		return entities.ExecutionResult{Success: false, Error: errors.GetMessage(err)}
	}
	if res == nil {
		return entities.ExecutionResult{Success: false, Error: "no result from sandbox"}
	}
	return *res
}

type timeoutSession struct {
	Session
	timeout time.Duration
}

// WithTimeout bounds every Execute and Reset on s. A non-positive timeout returns s.
func WithTimeout(s Session, timeout time.Duration) Session {
	if timeout <= 0 {
		return s
	}
	return &timeoutSession{Session: s, timeout: timeout}
}

func (t *timeoutSession) Execute(ctx context.Context, code string) (*entities.ExecutionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	res, err := t.Session.Execute(ctx, code)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return nil, errors.DeadlineExceeded("execution timed out after " + t.timeout.String())
	}
	return res, err
}

func (t *timeoutSession) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.Session.Reset(ctx)
}
