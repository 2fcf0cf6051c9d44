// Package python runs submissions in a persistent python3 subprocess.
//
// The subprocess executes a small driver that reads one JSON request per line, runs
// the code with exec in a namespace shared across requests and answers with one JSON
// line carrying the captured stdout. Replies go out on fd 3 and echo the request id;
// the process's own stdout and stderr are discarded, so submission code writing past
// the capture can't be mistaken for a reply.
//
// The interpreter runs in isolated mode (-I) but with the host user's OS access. It
// is not a security boundary.
package python

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
)

const driver = `
import contextlib, io, json, os, sys, traceback
_requests = sys.stdin
sys.stdin = io.StringIO("")
_replies = os.fdopen(3, "w")
_ns = {"__name__": "__main__"}
for _line in _requests:
    _req = json.loads(_line)
    _reply = {"id": _req.get("id", 0), "ok": True, "output": "", "error": ""}
    if _req.get("op") == "reset":
        _ns.clear()
        _ns["__name__"] = "__main__"
    else:
        _buf = io.StringIO()
        try:
            with contextlib.redirect_stdout(_buf):
                exec(compile(_req.get("code", ""), "<submission>", "exec"), _ns)
        except BaseException as _e:
            _reply["ok"] = False
            _reply["error"] = "".join(traceback.format_exception_only(type(_e), _e)).strip()
        _reply["output"] = _buf.getvalue()
    _replies.write("\n" + json.dumps(_reply) + "\n")
    _replies.flush()
`

// DefaultBinary is the interpreter looked up on PATH when none is configured
const DefaultBinary = "python3"

type request struct {
	ID   uint64 `json:"id"`
	Op   string `json:"op"`
	Code string `json:"code,omitempty"`
}

type reply struct {
	ID     uint64 `json:"id"`
	OK     bool   `json:"ok"`
	Output string `json:"output"`
	Error  string `json:"error"`
}

// Config configures a python session
type Config struct {
	Binary string
	Logger *zap.Logger
}

// Validate fills defaults and checks the config
func (c *Config) Validate() error {
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Session is a sandbox.Session backed by one python3 process. The process starts on
// first use and is restarted after a timeout kills it. Calls are serialized.
type Session struct {
	mu     sync.Mutex
	binary string
	logger *zap.Logger

	cmd     *exec.Cmd
	stdin   io.WriteCloser
	replyFd *os.File
	replies *bufio.Reader
	nextID  uint64
}

// NewSession creates a session. The interpreter is resolved on PATH immediately so a
// missing python fails fast.
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	binary, err := exec.LookPath(cfg.Binary)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "python interpreter not found")
	}

	return &Session{
		binary: binary,
		logger: cfg.Logger,
	}, nil
}

// Execute runs code in the shared namespace
func (s *Session) Execute(ctx context.Context, code string) (*entities.ExecutionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rep, err := s.roundTrip(ctx, request{Op: "exec", Code: code})
	if err != nil {
		return nil, err
	}

	return &entities.ExecutionResult{
		Success: rep.OK,
		Output:  rep.Output,
		Error:   rep.Error,
	}, nil
}

// Reset clears the shared namespace
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil {
		return nil
	}

	_, err := s.roundTrip(ctx, request{Op: "reset"})
	return err
}

// Close stops the interpreter process
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stop()
	return nil
}

func (s *Session) roundTrip(ctx context.Context, req request) (*reply, error) {
	if err := s.ensureStarted(); err != nil {
		return nil, err
	}

	s.nextID++
	req.ID = s.nextID

	line, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}
	line = append(line, '\n')

	if _, err := s.stdin.Write(line); err != nil {
		s.stop()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "python session is gone")
	}

	type readResult struct {
		rep *reply
		err error
	}
	done := make(chan readResult, 1)
	replies := s.replies
	go func() {
		for {
			data, err := replies.ReadBytes('\n')
			if err != nil {
				done <- readResult{err: err}
				return
			}
			if len(bytes.TrimSpace(data)) == 0 {
				continue
			}
			rep := &reply{}
			if err := json.Unmarshal(data, rep); err != nil || rep.ID != req.ID {
				s.logger.Debug("discarding stray reply line", zap.Uint64("want_id", req.ID))
				continue
			}
			done <- readResult{rep: rep}
			return
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Warn("python execution cancelled, restarting interpreter", zap.Error(ctx.Err()))
		s.stop()
		<-done
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.DeadlineExceeded("python execution timed out")
		}
		return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "python execution cancelled")
	case r := <-done:
		if r.err != nil {
			s.stop()
			return nil, errors.WrapWithCode(r.err, errors.CodeUnavailable, "python session is gone")
		}
		return r.rep, nil
	}
}

func (s *Session) ensureStarted() error {
	if s.cmd != nil {
		return nil
	}

	replyR, replyW, err := os.Pipe()
	if err != nil {
		return errors.Wrap(err, "failed to open python reply pipe")
	}

	// stdout and stderr stay nil so they go to the null device
	cmd := exec.Command(s.binary, "-I", "-u", "-c", driver)
	cmd.ExtraFiles = []*os.File{replyW}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		_ = replyR.Close()
		_ = replyW.Close()
		return errors.Wrap(err, "failed to open python stdin")
	}
	if err := cmd.Start(); err != nil {
		_ = replyR.Close()
		_ = replyW.Close()
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to start python")
	}
	// the child holds its own copy of the write end
	_ = replyW.Close()

	s.logger.Debug("python session started", zap.Int("pid", cmd.Process.Pid))

	s.cmd = cmd
	s.stdin = stdin
	s.replyFd = replyR
	s.replies = bufio.NewReader(replyR)
	return nil
}

// stop kills the process and reaps it; the namespace is lost
func (s *Session) stop() {
	if s.cmd == nil {
		return
	}

	_ = s.stdin.Close()
	_ = s.cmd.Process.Kill()
	_ = s.cmd.Wait()
	// unblocks a pending reader even if a child of the submission kept fd 3 open
	_ = s.replyFd.Close()

	s.cmd = nil
	s.stdin = nil
	s.replyFd = nil
	s.replies = nil
}
