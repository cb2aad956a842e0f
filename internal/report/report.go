// Package report writes the results of a profiler run.
//
// Three outputs are produced from a harness.Result:
//   - <QueueName>_latencies.txt: one sorted nanosecond sample per line
//   - a human-readable summary block on the console
//   - <QueueName>_metrics.prom: Prometheus text exposition of the run
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/randomizedcoder/queue-latency-profiler/internal/harness"
)

// File name suffixes appended to the queue name.
const (
	LatenciesSuffix = "_latencies.txt"
	MetricsSuffix   = "_metrics.prom"
)

// LatenciesPath returns where the raw samples of queue name are written.
func LatenciesPath(dir, name string) string {
	return filepath.Join(dir, name+LatenciesSuffix)
}

// MetricsPath returns where the metrics textfile of queue name is written.
func MetricsPath(dir, name string) string {
	return filepath.Join(dir, name+MetricsSuffix)
}

// WriteSamples writes one decimal sample per line, in the given order,
// with no header.
func WriteSamples(w io.Writer, samples []int64) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	buf := make([]byte, 0, 24)
	for _, s := range samples {
		buf = strconv.AppendInt(buf[:0], s, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSamplesFile writes res.Samples to LatenciesPath(dir, res.Name)
// and returns the path.
func WriteSamplesFile(dir string, res *harness.Result) (string, error) {
	path := LatenciesPath(dir, res.Name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSamples(f, res.Samples); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// PrintSummary writes the console summary block for res.
func PrintSummary(w io.Writer, res *harness.Result) error {
	s := res.Summary
	_, err := fmt.Fprintf(w,
		"\n[%s Results]\nAverage Latency: %.1f ns\nP50: %d ns\nP99: %d ns\nTotal: %d\n\n",
		res.Name, s.Mean, s.P50, s.P99, s.Count)
	return err
}
