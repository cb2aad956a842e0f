// Package combined provides benchmarks that drive the queues through the
// full producer/consumer pipeline.
//
// These benchmarks are more representative than the per-operation queue
// benchmarks: they include the timestamping, the busy-wait retry loops and
// cross-core hand-off, and report latency percentiles alongside ns/op.
package combined
