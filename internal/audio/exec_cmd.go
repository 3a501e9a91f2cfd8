package audio

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

type ExecCmdCtx = func(ctx context.Context, name string, args ...string) Cmd

// Cmd is satisfied by *exec.Cmd. Output returns stdout; for a non-zero exit
// the error is an *exec.ExitError carrying the captured stderr.
type Cmd interface {
	Output() ([]byte, error)
}

// ToExecCmdCtx is needed because Go does not automatically convert return types
// to interfaces in function assignments, even if the return type does implement the interface.
// See https://stackoverflow.com/questions/57735694/duck-typing-go-functions
func ToExecCmdCtx[c Cmd](fn func(context.Context, string, ...string) c) ExecCmdCtx {
	return func(ctx context.Context, name string, arg ...string) Cmd {
		return fn(ctx, name, arg...)
	}
}

type runResult struct {
	exitCode int
	stdout   []byte
	stderr   []byte
}

// run executes name once and waits for it. A non-zero exit is reported
// through runResult, not as an error. The error is only set when the
// process could not be run at all, e.g. the binary is missing.
func run(ctx context.Context, execCmdCtx ExecCmdCtx, name string, args []string) (*runResult, error) {
	slog.Debug("execute", "cmd", strings.Join(append([]string{name}, redactArgs(args)...), " "))

	out, err := execCmdCtx(ctx, name, args...).Output()
	if err == nil {
		return &runResult{stdout: out}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Killed by a signal reports -1.
		return &runResult{exitCode: exitErr.ExitCode(), stdout: out, stderr: exitErr.Stderr}, nil
	}
	return nil, err
}

// decodeText decodes tool output as UTF-8. Invalid bytes become U+FFFD.
func decodeText(b []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().String(string(b))
	if err != nil {
		decoded = strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return strings.TrimRight(decoded, "\n")
}
