// Package shell runs external commands for the build pipeline.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTail bounds the stderr kept for error metadata.
const stderrTail = 4096

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	tracer ports.Tracer
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, tracer ports.Tracer) *Runner {
	return &Runner{
		logger: logger,
		tracer: tracer,
	}
}

// Run executes cmd, logging its output line by line. When ctx carries a
// vertex the output is copied to it as well.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	out := &lineWriter{emit: r.logger.Info}
	errw := &lineWriter{emit: r.logger.Warn}
	var stdout, stderr io.Writer = out, errw

	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(out, v.Stdout())
		stderr = io.MultiWriter(errw, v.Stderr())
	}

	tail := &tailBuffer{limit: stderrTail}
	err := r.exec(ctx, cmd, stdout, io.MultiWriter(stderr, tail))
	out.Flush()
	errw.Flush()
	if err != nil {
		if msg := strings.TrimSpace(tail.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
	}
	return err
}

// Output executes cmd and returns its standard output.
func (r *Runner) Output(ctx context.Context, cmd domain.Command) ([]byte, error) {
	var stdout bytes.Buffer
	tail := &tailBuffer{limit: stderrTail}

	if err := r.exec(ctx, cmd, &stdout, tail); err != nil {
		if msg := strings.TrimSpace(tail.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (r *Runner) exec(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	ctx, span := r.tracer.Start(ctx, cmd.Name,
		ports.WithAttribute("command", strings.Join(cmd.Argv(), " ")),
	)
	defer span.End()

	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Name
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands are built by the pipeline
	// exec.CommandContext sets Args[0] to the resolved path; keep the invoked name.
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env
	c.Stdout = io.MultiWriter(stdout, span)
	c.Stderr = io.MultiWriter(stderr, span)

	err := c.Run()
	if err == nil {
		span.SetAttribute("exit_code", 0)
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	span.SetAttribute("exit_code", exitCode)
	span.RecordError(err)

	wrapped := zerr.Wrap(err, domain.ErrCommandFailed.Error())
	wrapped = zerr.With(wrapped, "command", strings.Join(cmd.Argv(), " "))
	return zerr.With(wrapped, "exit_code", exitCode)
}

// lineWriter splits a stream into lines for the logger.
type lineWriter struct {
	mu   sync.Mutex
	buf  []byte
	emit func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emitLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits a trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emitLine(w.buf)
		w.buf = nil
	}
}

func (w *lineWriter) emitLine(line []byte) {
	s := strings.TrimRight(string(line), "\r")
	if strings.TrimSpace(s) == "" {
		return
	}
	w.emit(s)
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	buf   []byte
	limit int
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.limit; over > 0 {
		b.buf = b.buf[over:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

// resolveEnvironment applies "KEY=VALUE" overrides on top of the system environment.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	set := func(entry string) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			return
		}
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}
	for _, entry := range sysEnv {
		set(entry)
	}
	for _, entry := range overrides {
		set(entry)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the PATH of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
