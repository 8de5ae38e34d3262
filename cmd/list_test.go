package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"podpanel/internal/containerizer"
	"podpanel/internal/tui/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	result containerizer.Result
	argv   []string
}

func (s *stubRunner) ListArgs() []string        { return []string{"podman", "ps", "-a"} }
func (s *stubRunner) StartArgs(string) []string { return nil }
func (s *stubRunner) StopArgs(string) []string  { return nil }
func (s *stubRunner) ExecArgs(string) []string  { return nil }

func (s *stubRunner) Run(_ context.Context, argv []string) containerizer.Result {
	s.argv = argv
	return s.result
}

func TestPrintRoster(t *testing.T) {
	runner := &stubRunner{result: containerizer.Result{Stdout: []byte("web running\ndb exited\nlonely\n")}}
	var out bytes.Buffer

	require.NoError(t, printRoster(context.Background(), &out, runner))
	assert.Equal(t, []string{"podman", "ps", "-a"}, runner.argv)
	assert.Equal(t, "web running\ndb exited\n"+view.NoContainerPlaceholder+"\n", out.String())
}

func TestPrintRosterEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printRoster(context.Background(), &out, &stubRunner{}))
	assert.Empty(t, out.String())
}

func TestPrintRosterFailure(t *testing.T) {
	runner := &stubRunner{result: containerizer.Result{
		ExitCode: 125,
		Stderr:   []byte("Error: cannot connect\n"),
		Err:      errors.New("exit status 125"),
	}}
	var out bytes.Buffer

	err := printRoster(context.Background(), &out, runner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot connect")
	assert.Empty(t, out.String())
}
