// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"runtime"
	"sync"
)

// workers returns the pool size for n tracks.
func (c Config) workers(n int) int {
	w := c.Concurrency
	if w <= 0 {
		w = runtime.NumCPU()
	}
	return max(1, min(w, n))
}

// RunBatch measures every track and returns one slot per reference, in the
// order given. It returns once all workers are done. Failed tracks do not
// stop the others.
func (a *Analyzer) RunBatch(refs []string, cfg Config) Table {
	table := newTable(refs)
	if len(refs) == 0 {
		return table
	}

	jobs := make(chan int, len(refs))
	for i := range refs {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range cfg.workers(len(refs)) {
		wg.Go(func() {
			for i := range jobs {
				a.process(i, refs[i], cfg, table)
			}
		})
	}
	wg.Wait()

	return table
}
