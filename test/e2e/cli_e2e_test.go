package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/fibkm into a temporary directory. go test runs
// with the package directory as working directory, so the module root is
// two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	binName := "fibkm"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fibkm")
	cmd.Dir = filepath.Join("..", "..")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fibkm: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary end to end: output streams and exit
// codes.
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	tests := []struct {
		name       string
		args       []string
		env        []string
		wantStdout string // substring
		wantStderr string // substring
		wantCode   int
	}{
		{name: "Fibonacci", args: []string{"--fib", "10"}, wantStdout: "10 miles = 89 km (using Fibonacci)"},
		{name: "Fibonacci Shorthand", args: []string{"-f", "1"}, wantStdout: "1 miles = 1 km (using Fibonacci)"},
		{name: "Fibonacci Too Large", args: []string{"-f", "94"}, wantStderr: "Maximum supported value is 93 miles", wantCode: 1},
		{name: "Fibonacci Not Positive", args: []string{"-f", "0"}, wantStderr: "Must be positive integer", wantCode: 1},
		{name: "Basic", args: []string{"--basic", "21"}, wantStdout: "21.00 miles = 33.80 km"},
		{name: "Basic Invalid", args: []string{"-b", "ten"}, wantStderr: "Must be non-negative number", wantCode: 1},
		{name: "Fib And Basic", args: []string{"-f", "3", "-b", "3"}, wantStderr: "Cannot use both --fib and --basic options simultaneously", wantCode: 1},
		{name: "Positional Skip", args: []string{"1", "oops", "2"}, wantStdout: "2.00 miles = 3.22 km", wantStderr: "Invalid distance value 'oops'. Skipping."},
		{name: "Method", args: []string{"-m", "binet", "100"}, wantStdout: "(using Golden Ratio (Binet))"},
		{name: "Unknown Method", args: []string{"-m", "magic", "1"}, wantStderr: "unrecognized method", wantCode: 1},
		{name: "Unknown Flag", args: []string{"--frobnicate"}, wantStderr: "flag provided but not defined", wantCode: 1},
		{name: "Compare", args: []string{"--compare", "50"}, wantStdout: "Fibonacci Table Lookup"},
		{name: "Sweep", args: []string{"--sweep", "--to", "200"}, wantStdout: "Error sweep"},
		{name: "JSON", args: []string{"--json", "-b", "1"}, wantStdout: `"kilometers": 1.609344`},
		{name: "Quiet", args: []string{"-q", "10"}, wantStdout: "16.09"},
		{name: "Help", args: []string{"--help"}, wantStdout: "usage"},
		{name: "No Arguments", args: nil, wantStdout: "Distance converter"},
		{name: "Version Flag", args: []string{"--version"}, wantStdout: "fibkm"},
		{name: "Completion", args: []string{"--completion", "zsh"}, wantStdout: "#compdef fibkm"},
		{name: "Environment Method", args: []string{"10"}, env: []string{"FIBKM_METHOD=interpolate"}, wantStdout: "(using Fibonacci Interpolation)"},
		{name: "Flag Beats Environment", args: []string{"-p", "1", "10"}, env: []string{"FIBKM_PRECISION=5"}, wantStdout: "10.0 miles = 16.1 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Env = append(cmd.Env, tt.env...)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			err := cmd.Run()

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", code, tt.wantCode, stdout.String(), stderr.String())
			}

			if tt.wantStdout != "" && !strings.Contains(strings.ToLower(stdout.String()), strings.ToLower(tt.wantStdout)) {
				t.Errorf("Stdout missing expected string.\nExpected: %q\nGot:\n%s", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("Stderr missing expected string.\nExpected: %q\nGot:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}
