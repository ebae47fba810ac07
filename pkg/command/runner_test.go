package command

import (
	"context"
	"testing"
	"time"
)

func TestShellRunnerCapturesOutput(t *testing.T) {
	runner := NewShellRunner(nil)

	ok, out := runner.Run(context.Background(), "echo hello", DefaultTimeout)
	if !ok || out != "hello" {
		t.Fatalf("Run() = (%v, %q), want (true, \"hello\")", ok, out)
	}
}

func TestShellRunnerReportsFailure(t *testing.T) {
	runner := NewShellRunner(nil)

	if ok, _ := runner.Run(context.Background(), "exit 3", DefaultTimeout); ok {
		t.Fatal("expected a failing command to report ok=false")
	}
}

func TestShellRunnerTimeout(t *testing.T) {
	runner := NewShellRunner(nil)

	start := time.Now()
	ok, out := runner.Run(context.Background(), "sleep 5", 100*time.Millisecond)
	if ok || out != "Timeout" {
		t.Fatalf("Run() = (%v, %q), want (false, \"Timeout\")", ok, out)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("timeout did not cut the command off")
	}
}
