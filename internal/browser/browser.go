// Package browser opens URLs with the desktop's default handler.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

var ErrUnsupportedURL = errors.New("only http and https links can be opened")

// Open launches the platform opener for u and returns once it has started.
func Open(u string) error {
	cmd, err := command(runtime.GOOS, u)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

func command(goos, u string) (*exec.Cmd, error) {
	parsed, err := url.Parse(u)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrUnsupportedURL
	}
	switch goos {
	case "darwin":
		return exec.Command("open", u), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", u), nil
	default:
		return exec.Command("xdg-open", u), nil
	}
}
