package adapter

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenerUsesConfiguredCommand(t *testing.T) {
	var started *exec.Cmd
	o := NewOpener("firefox", []string{"--new-tab"}, NullLogger())
	o.start = func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}

	require.NoError(t, o.Open("https://swapi.dev/api/people/1/"))
	require.NotNil(t, started)
	assert.Equal(t, "firefox", filepath.Base(started.Args[0]))
	assert.Equal(t, []string{"--new-tab", "https://swapi.dev/api/people/1/"}, started.Args[1:])
}

func TestOpenerSystemDefault(t *testing.T) {
	var started *exec.Cmd
	o := NewOpener("", nil, NullLogger())
	o.start = func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}

	require.NoError(t, o.Open("https://swapi.dev/api/people/1/"))
	require.NotNil(t, started)
	assert.Equal(t, "https://swapi.dev/api/people/1/", started.Args[len(started.Args)-1])
}

func TestOpenerRejectsNonHTTP(t *testing.T) {
	o := NewOpener("", nil, NullLogger())
	o.start = func(cmd *exec.Cmd) error {
		t.Fatal("command must not start")
		return nil
	}

	for _, target := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "/people/1"} {
		assert.Error(t, o.Open(target), target)
	}
}

func TestOpenerWrapsStartError(t *testing.T) {
	o := NewOpener("missing-browser", nil, NullLogger())
	o.start = func(cmd *exec.Cmd) error { return errors.New("executable not found") }

	err := o.Open("https://swapi.dev/api/people/1/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executable not found")
}
