// Package parallel splits independent work items across goroutines.
//
// Gradient evaluations are single-threaded by construction, so parallelism
// comes from evaluating many points at once. ForWorker hands every goroutine
// a stable worker index, which callers use to pick per-worker state such as a
// private tape.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4, // A gradient evaluation is far heavier than a loop body.
	}
}

// Workers returns the number of distinct worker indices ForWorker may pass.
func (c Config) Workers() int {
	if !c.Enabled || c.NumWorkers < 1 {
		return 1
	}
	return c.NumWorkers
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForWorker(n, func(_, i int) { f(i) }, cfg)
}

// ForWorker executes f(worker, i) for i in [0, n).
//
// worker is in [0, cfg.Workers()) and no two goroutines ever run with the same
// worker index at the same time, so f may use it to index per-worker state
// without locking.
func ForWorker(n int, f func(worker, i int), cfg Config) {
	workers := cfg.Workers()
	if workers == 1 || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(0, i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	for w, start := 0, 0; start < n; w, start = w+1, start+chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(w, s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(w, i)
			}
		}(w, start, end)
	}
	wg.Wait()
}
