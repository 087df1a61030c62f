package opener

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ManouchehrRasoulli/notefs/pkg/model"
)

type Opener struct {
	command string
	logger  *log.Logger
}

// DefaultCommand returns the file manager opener of the running platform.
func DefaultCommand() string {
	switch runtime.GOOS {
	case "windows":
		return "explorer"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}

// NewOpener uses command to open directories, the platform default when empty.
func NewOpener(command string, logger *log.Logger) *Opener {
	if command == "" {
		command = DefaultCommand()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Opener{
		command: command,
		logger:  logger,
	}
}

// target returns the directory to show for path, regular files open their
// parent directory.
func target(path string) string {
	fi, err := os.Stat(path)
	if err == nil && fi.Mode().IsRegular() {
		return filepath.Dir(path)
	}
	return path
}

// Open
// spawn the file manager on path without waiting for it to exit.
func (o *Opener) Open(path string) error {
	dir := target(path)
	cmd := exec.Command(o.command, dir)

	if err := cmd.Start(); err != nil {
		o.logger.Printf("ERROR opener :: got error %v on spawning %s %s\n", err, o.command, dir)
		return errors.Join(model.ErrSpawnFailed, fmt.Errorf("%s %s: %w", o.command, dir, err))
	}

	o.logger.Printf("opener :: spawned %s %s (pid %d)\n", o.command, dir, cmd.Process.Pid)
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
