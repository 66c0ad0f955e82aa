package worker

import "time"

// Job is one (source, destination) conversion unit. Created by the
// driver before the pool starts; consumed exactly once by one worker.
type Job struct {
	Src string
	Dst string
}

// Result is what a completed (or abandoned) Job produced.
type Result struct {
	Job      Job
	Rows     int
	Err      error
	Duration time.Duration
}
