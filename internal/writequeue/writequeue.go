// Package writequeue serializes storage mutations per entity table.
//
// Every repository mutation is a read-modify-write of a whole table; two such
// operations in flight for the same table can silently clobber each other.
// The queue keeps one worker goroutine per table and runs jobs for that table
// strictly one at a time, which preserves last-write-wins behavior for a
// single caller while preventing interleaved corruption when calls overlap.
package writequeue

import "sync"

const jobChannelCapacity = 16

type job struct {
	fn   func()
	done chan struct{}
}

// Queue dispatches jobs to per-table serial workers. Workers are created
// lazily on first use of a table name.
type Queue struct {
	tables chan map[string]chan job
	wg     sync.WaitGroup
}

// New returns a queue with no workers yet.
func New() *Queue {
	tables := make(chan map[string]chan job, 1)
	tables <- map[string]chan job{}

	return &Queue{tables: tables}
}

// Do runs fn on the serial worker for the given table and blocks until it has
// finished. Jobs for the same table never overlap; jobs for different tables
// may. There is no cancellation: once fn starts it runs to completion.
func (q *Queue) Do(table string, fn func()) {
	registry := <-q.tables
	ch, ok := registry[table]
	if !ok {
		ch = make(chan job, jobChannelCapacity)
		registry[table] = ch
		q.wg.Add(1)
		go q.worker(ch)
	}
	q.tables <- registry

	j := job{
		fn:   fn,
		done: make(chan struct{}),
	}
	ch <- j
	<-j.done
}

func (q *Queue) worker(ch chan job) {
	defer q.wg.Done()

	for j := range ch {
		j.fn()
		close(j.done)
	}
}

// Close stops all workers after the jobs already enqueued have finished.
// Do must not be called after Close.
func (q *Queue) Close() {
	registry := <-q.tables
	for _, ch := range registry {
		close(ch)
	}
	q.tables <- map[string]chan job{}

	q.wg.Wait()
}
