package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorLogger_Printcf(t *testing.T) {
	var buf bytes.Buffer
	c := NewColorLogger(log.New(&buf, "", 0))

	SetEnabled(false)
	c.Printcf(ColorGreen, "watcher %s started", "abc")
	require.Equal(t, "watcher abc started\n", buf.String())

	buf.Reset()
	SetEnabled(true)
	defer SetEnabled(false)
	c.Printc(ColorRed, "failed")
	require.Contains(t, buf.String(), "failed")
	require.Contains(t, buf.String(), "\x1b[31m")
}
