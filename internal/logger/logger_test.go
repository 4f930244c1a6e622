package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")

	assert.Empty(t, buf.String())
}

func TestLogger_VerbosePrintsWithPrefixes(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("a %s", "b")
	Info("c")
	Warn("d")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] a b\n")
	assert.Contains(t, out, "[INFO] c\n")
	assert.Contains(t, out, "[WARN] d\n")
}
