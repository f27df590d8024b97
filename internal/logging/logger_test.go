package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ConsoleThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := newWriterLogger("world", &buf, INFO)

	l.Debug("не должно попасть %d", 1)
	l.Info("тик %d", 42)
	l.Error("ошибка")

	out := buf.String()
	assert.NotContains(t, out, "не должно попасть")
	assert.Contains(t, out, "[INFO] [world] тик 42")
	assert.Contains(t, out, "[ERROR] [world] ошибка")
}

func TestLogger_FileOutput(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger("render", Options{Dir: dir, ConsoleLevel: ERROR, FileLevel: DEBUG})
	require.NoError(t, err)

	l.Debug("слот %d", 3)
	l.Trace("не пишется")
	require.NoError(t, l.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "render_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [render] слот 3")
	assert.NotContains(t, string(data), "не пишется")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, INFO, lvl)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerManager_ReusesComponentLogger(t *testing.T) {
	lm := newManager(DefaultOptions())

	a := lm.MustGetLogger("engine")
	b := lm.MustGetLogger("engine")
	assert.Same(t, a, b)
	assert.Equal(t, []string{"engine"}, lm.ListComponents())

	require.NoError(t, lm.SetLogLevel("engine", WARN, ERROR))
	assert.False(t, a.Enabled(INFO))
	assert.Error(t, lm.SetLogLevel("missing", INFO, INFO))

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}

func TestLoggerManager_SetOptionsRelevelsExisting(t *testing.T) {
	lm := newManager(DefaultOptions())
	l := lm.MustGetLogger("world")
	assert.False(t, l.Enabled(DEBUG))

	opts := DefaultOptions()
	opts.ConsoleLevel = TRACE
	lm.SetOptions(opts)
	assert.True(t, l.Enabled(TRACE), "порог уже созданного логгера должен обновиться")
	assert.True(t, lm.MustGetLogger("render").Enabled(DEBUG))
}
