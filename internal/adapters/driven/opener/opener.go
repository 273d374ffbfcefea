// Package opener hands URLs to the platform's default handler.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.URLOpener = (*System)(nil)

// System opens URLs with open, xdg-open or rundll32.
type System struct {
	goos  string
	start func(cmd *exec.Cmd) error
}

// New returns an opener for the running platform.
func New() *System {
	return &System{
		goos:  runtime.GOOS,
		start: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Open launches the handler without waiting for it.
func (s *System) Open(url string) error {
	cmd, err := s.command(url)
	if err != nil {
		return err
	}
	return s.start(cmd)
}

func (s *System) command(url string) (*exec.Cmd, error) {
	switch s.goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", s.goos)
	}
}
