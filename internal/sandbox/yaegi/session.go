// Package yaegi runs Go submissions in an embedded yaegi interpreter.
package yaegi

import (
	"bytes"
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
)

// DefaultAllowedPackages are the stdlib packages submissions may import
var DefaultAllowedPackages = []string{
	"bytes",
	"errors",
	"fmt",
	"math",
	"sort",
	"strconv",
	"strings",
	"unicode",
}

// Config configures a Go session
type Config struct {
	// AllowedPackages overrides DefaultAllowedPackages when set
	AllowedPackages []string
	Logger          *zap.Logger
}

// Validate fills defaults
func (c *Config) Validate() error {
	if len(c.AllowedPackages) == 0 {
		c.AllowedPackages = DefaultAllowedPackages
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Session is a sandbox.Session backed by yaegi. Every call runs in a fresh
// interpreter into which the imports and declarations of earlier successful calls are
// replayed, so definitions persist while a later submission may redeclare a name.
type Session struct {
	mu      sync.Mutex
	allowed map[string]bool
	symbols interp.Exports
	logger  *zap.Logger

	imports []string
	decls   []chunk
	closed  bool
}

// NewSession creates an empty session
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		allowed: make(map[string]bool, len(cfg.AllowedPackages)),
		logger:  cfg.Logger,
	}
	for _, p := range cfg.AllowedPackages {
		s.allowed[p] = true
	}
	s.symbols = allowedSymbols(s.allowed)
	return s, nil
}

// allowedSymbols narrows stdlib.Symbols to the whitelist. Keys are "path/name",
// e.g. "math/rand/rand".
func allowedSymbols(allowed map[string]bool) interp.Exports {
	out := interp.Exports{}
	for key, syms := range stdlib.Symbols {
		if allowed[path.Dir(key)] {
			out[key] = syms
		}
	}
	return out
}

// noSource keeps the interpreter from resolving imports against source on disk
type noSource struct{}

func (noSource) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Execute evaluates code. Forbidden imports fail the submission without evaluating it.
// The interpreter only holds whitelisted symbols, so an import the splitter misses
// still fails to resolve.
func (s *Session) Execute(ctx context.Context, code string) (*entities.ExecutionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.Unavailable("go session is closed")
	}

	chunks := splitChunks(code)

	var newImports []string
	redeclared := map[string]bool{}
	for _, c := range chunks {
		newImports = append(newImports, c.imports...)
		if c.key != "" {
			redeclared[c.key] = true
		}
	}

	if forbidden := s.forbidden(newImports); len(forbidden) > 0 {
		return &entities.ExecutionResult{
			Success: false,
			Error:   "forbidden imports: " + strings.Join(forbidden, ", "),
		}, nil
	}

	stdout := &bytes.Buffer{}
	i := interp.New(interp.Options{
		Stdout:               stdout,
		Stderr:               &bytes.Buffer{},
		SourcecodeFilesystem: noSource{},
	})
	if err := i.Use(s.symbols); err != nil {
		return nil, errors.Wrap(err, "failed to load stdlib symbols")
	}

	imports := mergeImports(s.imports, newImports)
	if len(imports) > 0 {
		if _, err := i.EvalWithContext(ctx, "import (\n\t"+strings.Join(imports, "\n\t")+"\n)"); err != nil {
			if cerr := s.checkContext(ctx); cerr != nil {
				return nil, cerr
			}
			return &entities.ExecutionResult{Success: false, Error: err.Error()}, nil
		}
	}
	s.imports = imports

	for _, d := range s.decls {
		if d.key != "" && redeclared[d.key] {
			continue
		}
		if _, err := i.EvalWithContext(ctx, d.src); err != nil {
			if cerr := s.checkContext(ctx); cerr != nil {
				return nil, cerr
			}
			s.logger.Debug("dropping declaration that no longer evaluates",
				zap.String("key", d.key), zap.Error(err))
		}
	}
	stdout.Reset()

	for _, c := range chunks {
		if c.kind == chunkImport {
			continue
		}

		if _, err := i.EvalWithContext(ctx, c.src); err != nil {
			if cerr := s.checkContext(ctx); cerr != nil {
				return nil, cerr
			}
			return &entities.ExecutionResult{
				Success: false,
				Output:  stdout.String(),
				Error:   err.Error(),
			}, nil
		}

		if c.kind == chunkDecl {
			s.remember(c)
		}
	}

	return &entities.ExecutionResult{
		Success: true,
		Output:  stdout.String(),
	}, nil
}

// checkContext converts an expired context into the gateway error
func (s *Session) checkContext(ctx context.Context) error {
	switch ctx.Err() {
	case nil:
		return nil
	case context.DeadlineExceeded:
		s.logger.Warn("go execution timed out")
		return errors.DeadlineExceeded("go execution timed out")
	default:
		return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "go execution cancelled")
	}
}

// remember records a declaration, replacing and moving to the end any earlier one of
// the same name so replay order respects dependencies
func (s *Session) remember(c chunk) {
	if c.key != "" {
		kept := s.decls[:0]
		for _, d := range s.decls {
			if d.key != c.key {
				kept = append(kept, d)
			}
		}
		s.decls = kept
	}
	s.decls = append(s.decls, c)
}

// Reset forgets every import and declaration
func (s *Session) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.imports = nil
	s.decls = nil
	return nil
}

// Close marks the session unusable
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.imports = nil
	s.decls = nil
	return nil
}

func (s *Session) forbidden(specs []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, spec := range specs {
		p := importPath(spec)
		if !s.allowed[p] && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func mergeImports(existing, added []string) []string {
	out := append([]string(nil), existing...)
	have := make(map[string]bool, len(out))
	for _, spec := range out {
		have[spec] = true
	}
	for _, spec := range added {
		if !have[spec] {
			have[spec] = true
			out = append(out, spec)
		}
	}
	return out
}
