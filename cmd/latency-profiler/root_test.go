package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/queue-latency-profiler/internal/harness"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func smallRun(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LATENCY_MESSAGES", "2000")
	t.Setenv("LATENCY_CAPACITY", "64")
	t.Setenv("LATENCY_SEND_DELAY", "0s")
	t.Setenv("LATENCY_PACER", "spin")
	t.Setenv("LATENCY_OUTPUT_DIR", dir)
	t.Setenv("LATENCY_LOG_LEVEL", "error")
	return dir
}

func readSamples(t *testing.T, path string) []int64 {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	out := make([]int64, 0, len(lines))
	for _, l := range lines {
		v, err := strconv.ParseInt(l, 10, 64)
		require.NoError(t, err, "line %q", l)
		out = append(out, v)
	}
	return out
}

func TestRoot_Modes(t *testing.T) {
	testCases := []struct {
		mode string
		name string
	}{
		{"lockfree", "Lock-Free Queue"},
		{"mutex", "Mutex Queue"},
	}

	for _, tc := range testCases {
		t.Run(tc.mode, func(t *testing.T) {
			dir := smallRun(t)

			out, err := execute(t, tc.mode)
			require.NoError(t, err)
			assert.Contains(t, out, "Running "+tc.name+" benchmark with 2000 messages...")
			assert.Contains(t, out, "["+tc.name+" Results]")
			assert.Contains(t, out, "Total: 2000")

			samples := readSamples(t, filepath.Join(dir, tc.name+"_latencies.txt"))
			assert.Len(t, samples, 2000)
			assert.True(t, slices.IsSorted(samples))
			assert.GreaterOrEqual(t, samples[0], int64(0))

			assert.FileExists(t, filepath.Join(dir, tc.name+"_metrics.prom"))
		})
	}
}

func TestRoot_MetricsTextfileDisabled(t *testing.T) {
	dir := smallRun(t)
	t.Setenv("LATENCY_METRICS_TEXTFILE", "false")

	_, err := execute(t, "lockfree")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "Lock-Free Queue_metrics.prom"))
}

func TestRoot_MissingMode(t *testing.T) {
	_, err := execute(t)
	assert.ErrorIs(t, err, errUsage)
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, err := execute(t, "mutex", "lockfree")
	assert.ErrorIs(t, err, errUsage)
}

func TestRoot_UnknownMode(t *testing.T) {
	out, err := execute(t, "channel")
	assert.ErrorIs(t, err, harness.ErrUnknownMode)
	assert.Empty(t, out, "nothing runs for an unknown mode")
}

func TestRoot_InvalidConfig(t *testing.T) {
	smallRun(t)
	t.Setenv("LATENCY_CAPACITY", "1")

	_, err := execute(t, "lockfree")
	assert.Error(t, err)
}
