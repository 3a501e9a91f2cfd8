package audio

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

type dummyCmd struct {
	stdout []byte
	err    error
}

func (c dummyCmd) Output() ([]byte, error) {
	return c.stdout, c.err
}

// newDummyCmdExec writes every invocation as one line into buf and answers
// with the dummyCmd registered for the binary name. Unknown binaries succeed
// with empty output.
func newDummyCmdExec(buf *bytes.Buffer, cmds map[string]dummyCmd) func(context.Context, string, ...string) dummyCmd {
	return func(_ context.Context, cmd string, args ...string) dummyCmd {
		buf.WriteString(strings.Join(append([]string{cmd}, args...), " ") + "\n")
		return cmds[cmd]
	}
}

func exitErr(stderr string) error {
	return &exec.ExitError{Stderr: []byte(stderr)}
}

func TestRun(t *testing.T) {
	notFound := &exec.Error{Name: "ffmpeg", Err: exec.ErrNotFound}

	tests := []struct {
		name         string
		cmd          dummyCmd
		wantExitCode int
		wantStdout   string
		wantStderr   string
		wantErr      error
	}{
		{
			name:       "success",
			cmd:        dummyCmd{stdout: []byte("out")},
			wantStdout: "out",
		},
		{
			name:         "non-zero exit",
			cmd:          dummyCmd{err: exitErr("broken pipe")},
			wantExitCode: -1,
			wantStderr:   "broken pipe",
		},
		{
			name:    "binary missing",
			cmd:     dummyCmd{err: notFound},
			wantErr: exec.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			execCmdCtx := ToExecCmdCtx(newDummyCmdExec(buf, map[string]dummyCmd{"ffmpeg": tt.cmd}))

			res, err := run(t.Context(), execCmdCtx, "ffmpeg", []string{"-version"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("run() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if res.exitCode != tt.wantExitCode {
				t.Fatalf("exitCode = %d, want %d", res.exitCode, tt.wantExitCode)
			}
			if string(res.stdout) != tt.wantStdout {
				t.Fatalf("stdout = %q, want %q", res.stdout, tt.wantStdout)
			}
			if string(res.stderr) != tt.wantStderr {
				t.Fatalf("stderr = %q, want %q", res.stderr, tt.wantStderr)
			}
			if got := buf.String(); got != "ffmpeg -version\n" {
				t.Fatalf("executed %q", got)
			}
		})
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("Invalid data found\n"), "Invalid data found"},
		{[]byte("bad \xff byte"), "bad � byte"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := decodeText(tt.in); got != tt.want {
			t.Fatalf("decodeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
