// ABOUTME: Tests for the browser opener
// ABOUTME: Replaces the launcher with a harmless command so no real browser starts

package browser

import (
	"os/exec"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://example.com/a", wantErr: false},
		{name: "http", url: "http://example.com/a?x=1", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "javascript", url: "javascript:alert(1)", wantErr: true},
		{name: "file", url: "file:///etc/passwd", wantErr: true},
		{name: "no host", url: "https:///path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestPlatformCommand(t *testing.T) {
	name, args, err := platformCommand("linux", "https://example.com")
	if err != nil || name != "xdg-open" || len(args) != 1 || args[0] != "https://example.com" {
		t.Errorf("unexpected linux command: %s %v %v", name, args, err)
	}

	name, args, err = platformCommand("windows", "https://example.com")
	if err != nil || name != "rundll32" || args[len(args)-1] != "https://example.com" {
		t.Errorf("unexpected windows command: %s %v %v", name, args, err)
	}

	if _, _, err := platformCommand("plan9", "https://example.com"); err == nil {
		t.Error("expected error for unsupported platform")
	}
}

func TestOpen_LaunchesWithExactURL(t *testing.T) {
	var gotArgs []string
	o := Opener{command: func(name string, args ...string) *exec.Cmd {
		gotArgs = args
		return exec.Command("true")
	}}

	if err := o.Open("https://example.com/a"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] != "https://example.com/a" {
		t.Errorf("expected exact URL passed to launcher, got %v", gotArgs)
	}
}

func TestOpen_RejectsBadURL(t *testing.T) {
	called := false
	o := Opener{command: func(name string, args ...string) *exec.Cmd {
		called = true
		return exec.Command("true")
	}}

	if err := o.Open("javascript:alert(1)"); err == nil {
		t.Error("expected error for non-http URL")
	}
	if called {
		t.Error("expected launcher not to run for invalid URL")
	}
}
