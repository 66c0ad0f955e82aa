// ============================================================================
// mw2parquet Worker Pool - bounded job-queue drain
// ============================================================================
//
// Package: internal/worker
// File: pool.go
//
// N identical workers drain a pre-loaded, pre-closed Queue, where N is
// the smaller of the configured thread count and the number of jobs. The
// driver goroutine itself runs one worker in-line, so a single-job or
// --threads 1 run never spawns a goroutine at all.
//
// Failure isolation: Process must not panic across jobs; a worker that
// fails one job logs through its Result and moves on to the next
// Dequeue. Nothing here retries or times out a job — per-job cancellation
// is out of scope.
// ============================================================================

package worker

import (
	"runtime"
	"sync"
	"time"
)

// Process executes one Job and reports how many rows it wrote, or the
// error that caused it to abandon the job.
type Process func(Job) (rows int, err error)

// Run drains jobs through process using up to threads concurrent
// workers (0 means hardware concurrency, capped at len(jobs)), and
// returns one Result per job, in completion order (not job order).
func Run(jobs []Job, threads int, process Process) []Result {
	n := threads
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > len(jobs) {
		n = len(jobs)
	}
	if n < 1 {
		n = 1
	}

	q := NewQueue()
	for _, j := range jobs {
		q.Enqueue(j)
	}
	q.Close()

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(jobs))
	)

	runWorker := func() {
		for {
			job, ok := q.Dequeue()
			if !ok {
				return
			}
			start := time.Now()
			rows, err := process(job)
			res := Result{Job: job, Rows: rows, Err: err, Duration: time.Since(start)}

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}
	}

	var wg sync.WaitGroup
	for i := 1; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runWorker()
		}()
	}

	runWorker() // the driver itself is worker 0, run in-line

	wg.Wait()
	return results
}
