// Command latency-profiler measures enqueue-to-dequeue latency through a
// lock-free SPSC ring buffer or a mutex-guarded queue.
//
// Usage:
//
//	go run ./cmd/latency-profiler lockfree
//	go run ./cmd/latency-profiler mutex
//
// Run parameters default to 1,000,000 messages, a 1024-slot ring and a 1µs
// send delay. Override them with latency-profiler.yaml or LATENCY_*
// environment variables, e.g. LATENCY_MESSAGES=10000.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
