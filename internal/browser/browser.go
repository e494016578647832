// ABOUTME: Opens article links in the user's default browser
// ABOUTME: Validates the URL and launches a detached opener process with no inherited stdio

package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener opens URLs with the platform browser.
type Opener struct {
	// command overrides the platform lookup, for tests
	command func(name string, args ...string) *exec.Cmd
}

// Open validates urlStr and opens it in a new browser context.
func (o Opener) Open(urlStr string) error {
	parsed, err := Validate(urlStr)
	if err != nil {
		return err
	}

	name, args, err := platformCommand(runtime.GOOS, parsed.String())
	if err != nil {
		return err
	}

	newCmd := exec.Command
	if o.command != nil {
		newCmd = o.command
	}
	cmd := newCmd(name, args...)
	// The browser must not inherit our terminal
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	// Reap the process asynchronously to prevent zombie processes
	go cmd.Wait()

	return nil
}

// Validate checks that urlStr is an absolute http or https URL.
func Validate(urlStr string) (*url.URL, error) {
	if urlStr == "" {
		return nil, fmt.Errorf("article has no link")
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("article has malformed link: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("article link must be http or https, got: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("article link has no host")
	}
	return parsed, nil
}

// platformCommand returns the opener command for goos
func platformCommand(goos, urlStr string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{urlStr}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{urlStr}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", urlStr}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
