package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "covquest", configBaseName)
	assert.Equal(t, "covquest.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "paths.exclude_segments", excludeSegmentsConfigKey)
	assert.Equal(t, "history.max_authored", maxAuthoredConfigKey)
	assert.Equal(t, "history.max_visited", maxVisitedConfigKey)
	assert.Equal(t, "coverage.report_root", reportRootConfigKey)
	assert.Equal(t, "coverage.layout", layoutConfigKey)
	assert.Equal(t, "challenge.count", countConfigKey)
	assert.Equal(t, "output.format", formatConfigKey)
	assert.Equal(t, "scan.parallel", parallelConfigKey)
	assert.Equal(t, "COVQUEST", envPrefix)
	assert.Equal(t, ".covquest.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "covquest.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)

	slog.Debug("history walk finished", "visited", 3)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "history walk finished")
	assert.Contains(t, string(data), "visited=3")
}
