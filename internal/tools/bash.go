package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// threadSafeBuffer provides a thread-safe wrapper around bytes.Buffer
type threadSafeBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

// Write implements io.Writer interface
func (b *threadSafeBuffer) Write(p []byte) (n int, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

// String returns the contents of the buffer as a string
func (b *threadSafeBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}

// runBash executes command through a POSIX shell interpreter in workdir,
// capturing stdout and stderr separately. A non-zero exit status is not an
// error; the result is stdout if non-empty, else stderr, else a literal
// "(empty output)" marker.
func runBash(ctx context.Context, command, workdir string) (string, error) {
	outBuf := &threadSafeBuffer{}
	errBuf := &threadSafeBuffer{}

	runner, err := interp.New(
		interp.Dir(expandUser(workdir)),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, outBuf, errBuf),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create shell runner: %w", err)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return "", fmt.Errorf("failed to parse bash command: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if !errors.As(err, &exitStatus) {
			return "", err
		}
	}

	if stdout := outBuf.String(); stdout != "" {
		return stdout, nil
	}
	if stderr := errBuf.String(); stderr != "" {
		return stderr, nil
	}
	return "(empty output)", nil
}
