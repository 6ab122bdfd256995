package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopBeforeStartIsNoOp(t *testing.T) {
	s := NewSpinner("Transcribing audio: ")
	assert.NotPanics(t, s.Stop)
	assert.NotPanics(t, s.Stop)
}

func TestNoFramesAfterStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("working")
	s.out = &buf

	s.Start()
	time.Sleep(350 * time.Millisecond)
	s.Stop()

	written := buf.Len()
	assert.Greater(t, written, 0, "spinner should have rendered at least one frame")

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, written, buf.Len(), "no writes may happen after Stop returns")
}

func TestStopIsIdempotentAfterStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("working")
	s.out = &buf

	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
	assert.NotPanics(t, s.Stop)
	assert.NotPanics(t, s.Stop)
}

func TestRendersBrailleCycleGlyphs(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("working")
	s.out = &buf

	s.Start()
	time.Sleep(1200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	distinct := 0
	for _, glyph := range []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"} {
		if strings.Contains(out, glyph) {
			distinct++
		}
	}
	assert.GreaterOrEqual(t, distinct, 5, "expected the 10-frame braille cycle to render")

	for _, glyph := range []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"} {
		assert.NotContains(t, out, glyph, "wrong animation set rendered")
	}
}

func TestSpinnerCanRestartAfterStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("working")
	s.out = &buf

	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
	afterFirst := buf.Len()

	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
	assert.Greater(t, buf.Len(), afterFirst, "restarted spinner should render again")
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("working")
	s.out = &buf

	s.Start()
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	written := buf.Len()
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, written, buf.Len())
}
