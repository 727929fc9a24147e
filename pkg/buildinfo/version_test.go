package buildinfo

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got, want := UserAgent(), "decode/v1.2.3"; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}

func TestTemplate(t *testing.T) {
	old := Commit
	t.Cleanup(func() { Commit = old })

	Commit = "abc123"
	if got := Template(); !strings.Contains(got, "commit abc123") {
		t.Errorf("Template() = %q, want commit", got)
	}
	if !strings.HasPrefix(Template(), "{{.Name}} ") {
		t.Error("Template() should start with the command name placeholder")
	}
}
