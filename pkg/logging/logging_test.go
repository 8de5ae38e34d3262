package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestTUIModeSendsEntriesAboveFilter(t *testing.T) {
	var mirror bytes.Buffer
	ch := InitForTUI(LevelInfo, &mirror)
	defer CloseTUIChannel()

	Debug("Test", "hidden %d", 1)
	Warn("Test", "visible %d", 2)
	Error("Test", errors.New("boom"), "failed")

	require.Len(t, ch, 2)
	first := <-ch
	assert.Equal(t, LevelWarn, first.Level)
	assert.Equal(t, "Test", first.Subsystem)
	assert.Equal(t, "visible 2", first.Message)

	second := <-ch
	assert.Equal(t, LevelError, second.Level)
	assert.Contains(t, second.Line(), "-- Error: boom")

	assert.Contains(t, mirror.String(), "[WARN] [Test] visible 2")
	assert.NotContains(t, mirror.String(), "hidden")
	// One formatted line per entry, nothing from a structured handler.
	assert.Equal(t, 2, strings.Count(mirror.String(), "\n"))
	assert.NotContains(t, mirror.String(), "level=")
}

func TestTUIModeDropsWhenChannelFull(t *testing.T) {
	ch := InitForTUI(LevelDebug, nil)
	defer CloseTUIChannel()

	for i := 0; i < tuiChannelBufferSize+5; i++ {
		Info("Flood", "entry %d", i)
	}
	assert.Len(t, ch, tuiChannelBufferSize)
	assert.Equal(t, uint64(5), Dropped())
}

func TestCLIModeWritesText(t *testing.T) {
	var out bytes.Buffer
	InitForCLI(LevelInfo, &out)

	Info("Runtime", "listed %d containers", 3)
	Debug("Runtime", "not shown")

	text := out.String()
	assert.True(t, strings.Contains(text, "listed 3 containers"), "got %q", text)
	assert.Contains(t, text, "subsystem=Runtime")
	assert.NotContains(t, text, "not shown")
}
