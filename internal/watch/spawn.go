package watch

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Process is a started regeneration.
type Process interface {
	// Wait blocks until exit. A non-zero exit is reported through code with
	// a nil error; err is reserved for failures to wait at all.
	Wait() (code int, err error)
}

// Spawner starts launchers.
type Spawner interface {
	Start(l Launcher, dir string) (Process, error)
}

// ExecSpawner runs launchers as child processes. Nil streams default to the
// parent's standard streams. No timeout or cancellation is applied.
type ExecSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Start launches l in dir.
func (s ExecSpawner) Start(l Launcher, dir string) (Process, error) {
	cmd := exec.Command(l.Bin, l.Args...)
	cmd.Dir = dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
