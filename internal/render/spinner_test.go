package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerFrames(t *testing.T) {
	assert.Len(t, SpinnerFrames, 10)
	assert.Equal(t, "⠋", SpinnerFrames[0])
}

func TestNewSpinner(t *testing.T) {
	var buf bytes.Buffer
	spinner := NewSpinner(&buf)

	assert.NotNil(t, spinner)
	assert.Equal(t, &buf, spinner.writer)
	assert.Empty(t, spinner.message)
	assert.False(t, spinner.running)
}

func TestSpinnerSetMessage(t *testing.T) {
	var buf bytes.Buffer
	spinner := NewSpinner(&buf)

	spinner.SetMessage("Loading...")
	assert.Equal(t, "Loading...", spinner.message)

	spinner.SetMessage("Thinking...")
	assert.Equal(t, "Thinking...", spinner.message)
}

func TestSpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer
	spinner := NewSpinner(&buf)
	spinner.SetMessage("Thinking...")

	stop := spinner.Start(context.Background())

	// Give the spinner time to render at least one frame
	time.Sleep(100 * time.Millisecond)

	// Stop blocks until the goroutine has cleared the line, so the
	// buffer is safe to read afterwards
	stop()

	output := buf.String()
	assert.Contains(t, output, "Thinking...")
	assert.Contains(t, output, "\r\033[K")
	// The final write clears the line for whatever prints next
	assert.True(t, strings.HasSuffix(output, "\r\033[K"))
}
