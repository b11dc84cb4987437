package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener opens resource URLs in an external program
type Opener struct {
	command string   // configured command, empty for system default
	args    []string // extra arguments placed before the URL
	logger  *slog.Logger

	// start runs the prepared command without waiting for it
	start func(cmd *exec.Cmd) error
}

// NewOpener creates an Opener. An empty command uses the platform handler.
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: command,
		args:    args,
		logger:  logger,
		start:   (*exec.Cmd).Start,
	}
}

// Open launches target. Only absolute http(s) URLs are accepted.
func (o *Opener) Open(target string) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", target)
	}

	cmd := o.buildCommand(target)
	o.logger.Info("opening url", "command", cmd.Path, "args", cmd.Args[1:])

	if err := o.start(cmd); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

func (o *Opener) buildCommand(target string) *exec.Cmd {
	// Tier 1: user configured a specific program
	if o.command != "" {
		args := append(append([]string{}, o.args...), target)
		return exec.Command(o.command, args...)
	}

	// Tier 2: system default handler
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target)
	default:
		// Linux and other Unix-like systems
		return exec.Command("xdg-open", target)
	}
}
