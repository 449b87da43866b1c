// Package analysis launches the external static-analysis executable
// and delivers its outcome as a single tagged result. The viewer never
// inspects the analyzer's internals: success hands over the produced
// graph description text, failure hands over a human-readable message
// for the placeholder.
package analysis

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// DefaultBinary is the analyzer executable hogview looks for when no
// explicit path is configured.
const DefaultBinary = "hogscan"

// DefaultEngine is the analysis engine passed to the analyzer.
const DefaultEngine = "syn"

// Result is the tagged outcome of one run: exactly one of Text
// (graph description content) or Message (failure text) is set.
type Result struct {
	Text    string
	Message string
}

// OK reports whether the run produced graph content.
func (r Result) OK() bool { return r.Message == "" }

// Runner executes the analyzer, at most one run in flight. A second
// Start while one is running is rejected, not queued.
type Runner struct {
	// Binary overrides analyzer discovery when non-empty.
	Binary string

	// Engine selects the analysis engine. Empty means DefaultEngine.
	Engine string

	// Output is the produced graph file path. Empty is resolved to a
	// fixed file under the system temp directory on the first Start,
	// so callers can read the effective path back afterwards.
	Output string

	mu      sync.Mutex
	running bool
}

// Running reports whether a run is in flight. The caller uses this to
// disable the run trigger.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Start launches an analysis of folder and returns a channel that
// delivers exactly one Result. It fails synchronously only when a run
// is already in flight.
func (r *Runner) Start(ctx context.Context, folder string) (<-chan Result, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil, fmt.Errorf("analysis already running")
	}
	r.running = true
	if r.Output == "" {
		r.Output = filepath.Join(os.TempDir(), "hogview_output.dot")
	}
	r.mu.Unlock()

	ch := make(chan Result, 1)
	go func() {
		res := r.run(ctx, folder)

		r.mu.Lock()
		r.running = false
		r.mu.Unlock()

		ch <- res
	}()
	return ch, nil
}

// run does the whole lifecycle: locate the binary, execute it, read
// the produced output file. Every failure becomes a Message; nothing
// here panics or surfaces a bare error to the UI.
func (r *Runner) run(ctx context.Context, folder string) Result {
	bin, err := FindBinary(r.Binary)
	if err != nil {
		return Result{Message: fmt.Sprintf("Analyzer not found.\nPlease ensure '%s' is built and on your PATH.", DefaultBinary)}
	}

	engine := r.Engine
	if engine == "" {
		engine = DefaultEngine
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin,
		"--workspace", filepath.Join(folder, "Cargo.toml"),
		"--output", r.Output,
		"--engine", engine,
	)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		return Result{Message: "Analysis failed:\n" + msg}
	}

	data, err := os.ReadFile(r.Output)
	if err != nil {
		return Result{Message: "Analysis completed but no output was generated."}
	}
	return Result{Text: string(data)}
}

// FindBinary resolves the analyzer executable: an explicit path first,
// then next to the hogview binary, then a development build under
// target/release, then $PATH.
func FindBinary(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("analyzer binary %s: %w", explicit, err)
		}
		return explicit, nil
	}

	if self, err := os.Executable(); err == nil {
		side := filepath.Join(filepath.Dir(self), DefaultBinary)
		if _, err := os.Stat(side); err == nil {
			return side, nil
		}
	}

	dev := filepath.Join("target", "release", DefaultBinary)
	if _, err := os.Stat(dev); err == nil {
		return dev, nil
	}

	return exec.LookPath(DefaultBinary)
}
