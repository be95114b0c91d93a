// Package worker provides a worker pool for converting several trial
// files in parallel. Each conversion is independent and internally
// sequential; the pool only fans out whole files.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job identifies one trial file to convert.
type Job struct {
	Path  string
	Index int // Original argument position, for ordered reporting
}

// Result is the outcome of converting one trial file.
type Result struct {
	Job         Job
	OutputPath  string   // Where the PGN was written
	Diagnostics []string // Conversion warnings, in order
	Err         error
}

// ConvertFunc converts one file and reports the outcome.
type ConvertFunc func(job Job) Result

// Pool runs file conversions on a fixed set of worker goroutines.
type Pool struct {
	numWorkers int
	jobs       chan Job
	results    chan Result
	convert    ConvertFunc
	wg         sync.WaitGroup
	stopFlag   int32
}

// NewPool creates a pool with the given number of workers and channel
// buffer size.
func NewPool(numWorkers, bufferSize int, convert ConvertFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan Job, bufferSize),
		results:    make(chan Result, bufferSize),
		convert:    convert,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker converts jobs from the channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without converting
		}
		p.results <- p.convert(job)
	}
}

// Submit queues a file for conversion. This may block if the job channel
// buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop signals workers to stop picking up new jobs. Jobs already queued
// are drained but not converted.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish.
// After Close returns, the result channel is closed as well.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of conversion outcomes.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
