package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/internal/logging"
)

func TestInit_JSONWithComponent(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logging.Init(slog.LevelInfo, "json", &buf)
	logging.New("replay").Debug("hidden")
	logging.New("replay").Info("step", "index", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "replay", rec["component"])
	assert.Equal(t, "step", rec["msg"])
	assert.EqualValues(t, 3, rec["index"])
}

func TestParseLevel(t *testing.T) {
	l, err := logging.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}
