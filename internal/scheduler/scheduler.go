// Package scheduler spreads the bundles of one directory across a fixed set
// of workers.
//
// Work is split into contiguous chunks up front; there is no work stealing.
// Each worker processes its chunk strictly in order, a failing item never
// stops its worker, and Run returns only after every worker has finished.
package scheduler

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrPanic marks an item whose process function panicked.
var ErrPanic = errors.New("panic while processing item")

// Chunk is the half-open index range [Start, End) assigned to one worker.
type Chunk struct {
	Worker int
	Start  int
	End    int
}

// Len returns the number of items in the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// Partition splits n items across workers. With w = max(1, workers) and
// c = max(1, n/w), the first chunk takes c plus the remainder n-c*w (when
// positive) and every other chunk takes c. Chunks are contiguous, in input
// order, and only non-empty chunks are returned.
func Partition(n, workers int) []Chunk {
	w := max(1, workers)
	c := max(1, n/w)
	first := c + max(0, n-c*w)

	var chunks []Chunk
	start := 0
	for i := 0; i < w && start < n; i++ {
		size := c
		if i == 0 {
			size = first
		}
		end := min(n, start+size)
		chunks = append(chunks, Chunk{Worker: i, Start: start, End: end})
		start = end
	}
	return chunks
}

// WorkerReport is the tally of a single worker.
type WorkerReport struct {
	Chunk
	Processed int
	Failed    int
}

// Report collects the per-worker tallies of one Run, ordered by worker.
type Report struct {
	Workers []WorkerReport
}

// Processed returns the number of items that completed without error.
func (r Report) Processed() int {
	n := 0
	for _, w := range r.Workers {
		n += w.Processed
	}
	return n
}

// Failed returns the number of items whose process function returned an
// error or panicked.
func (r Report) Failed() int {
	n := 0
	for _, w := range r.Workers {
		n += w.Failed
	}
	return n
}

// Option configures Run.
type Option[T any] func(*options[T])

type options[T any] struct {
	onError func(T, error)
}

// OnError registers fn to be called with every failed item. It is called from
// the worker goroutine that owns the item, so it must be safe for concurrent
// use.
func OnError[T any](fn func(T, error)) Option[T] {
	return func(o *options[T]) { o.onError = fn }
}

// Run processes items with up to workers goroutines and blocks until all of
// them are done. Failures are isolated to the item that produced them.
func Run[T any](items []T, workers int, process func(T) error, opts ...Option[T]) Report {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	chunks := Partition(len(items), workers)
	report := Report{Workers: make([]WorkerReport, len(chunks))}

	var g errgroup.Group
	for i, c := range chunks {
		g.Go(func() error {
			wr := WorkerReport{Chunk: c}
			for _, item := range items[c.Start:c.End] {
				if err := safeProcess(process, item); err != nil {
					wr.Failed++
					if o.onError != nil {
						o.onError(item, err)
					}
					continue
				}
				wr.Processed++
			}
			// Each worker owns its own slot until Wait returns.
			report.Workers[i] = wr
			return nil
		})
	}
	_ = g.Wait()

	return report
}

func safeProcess[T any](process func(T) error, item T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return process(item)
}
