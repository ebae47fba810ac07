// pkg/command/runner.go
package command

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Default timeouts for the tool classes the suite invokes.
const (
	ScanTimeout      = 15 * time.Second
	DefaultTimeout   = 30 * time.Second
	DiscoveryTimeout = 60 * time.Second
)

// Runner executes an external command line and returns whether it exited
// cleanly along with its captured stdout. Failures and timeouts surface as
// ok=false, never as an error: callers treat a failed invocation as "no
// data this cycle".
type Runner interface {
	Run(ctx context.Context, commandLine string, timeout time.Duration) (bool, string)
}

// ShellRunner runs command lines through the shell so the suite can use
// the same pipelines the underlying OS tools are documented with.
type ShellRunner struct {
	Log *logrus.Logger
}

// NewShellRunner returns a ShellRunner logging through log.
func NewShellRunner(log *logrus.Logger) *ShellRunner {
	return &ShellRunner{Log: log}
}

// Run executes commandLine with the given timeout and returns the
// whitespace-trimmed stdout. A timed-out command reports ok=false with
// output "Timeout".
func (r *ShellRunner) Run(ctx context.Context, commandLine string, timeout time.Duration) (bool, string) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "sh", "-c", commandLine)
	out, err := cmd.Output()

	if runCtx.Err() == context.DeadlineExceeded {
		r.logf(commandLine, "timeout after %s", timeout)
		return false, "Timeout"
	}
	if err != nil {
		r.logf(commandLine, "%v", err)
		return false, strings.TrimSpace(string(out))
	}

	return true, strings.TrimSpace(string(out))
}

func (r *ShellRunner) logf(commandLine, format string, args ...interface{}) {
	if r.Log == nil {
		return
	}
	name := commandLine
	if fields := strings.Fields(commandLine); len(fields) > 0 {
		name = fields[0]
	}
	r.Log.WithField("command", name).Debugf(format, args...)
}
