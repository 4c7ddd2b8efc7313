package logging

import (
	"bytes"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swap replaces L with a buffer-backed logger for the duration of the test.
func swap(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	t.Cleanup(func() { L = prev })

	return &buf
}

func TestHelpers_WriteToBuffer(t *testing.T) {
	buf := swap(t)
	L.SetLevel(clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		assert.Contains(t, out, want)
	}
}

func TestSetLevel(t *testing.T) {
	buf := swap(t)

	require.NoError(t, SetLevel("warn"))
	Infof("quiet")
	Warnf("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")

	require.Error(t, SetLevel("chatty"))
}
