// Package workpool runs batches of tasks on a fixed set of goroutines.
//
// Each worker owns a queue and steals from its peers when the queue runs
// dry, so a batch of uneven tasks still finishes close to together.
package workpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size work-stealing goroutine pool.
//
// A Pool is safe for concurrent use. Run may be called from several
// goroutines at once; their tasks share the same workers.
type Pool struct {
	queues []chan func()
	done   chan struct{}
	wg     sync.WaitGroup
	open   atomic.Bool
}

// New starts a pool with n workers. If n is 0 or negative, GOMAXPROCS is
// used.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(n*4, 8)

	p := &Pool{
		queues: make([]chan func(), n),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	p.open.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.loop(i)
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.queues)
}

func (p *Pool) loop(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case fn := <-own:
			fn()
			continue
		default:
		}
		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}
		select {
		case fn := <-own:
			fn()
		case <-p.done:
			for {
				select {
				case fn := <-own:
					fn()
				default:
					return
				}
			}
		}
	}
}

// steal takes one task from any other worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := 1; i < len(p.queues); i++ {
		select {
		case fn := <-p.queues[(id+i)%len(p.queues)]:
			return fn
		default:
		}
	}
	return nil
}

// Run distributes tasks round-robin across the workers and blocks until all
// of them have returned. If a task panics, the remaining tasks still run and
// Run re-panics with the first recovered value.
//
// Run on a closed pool executes nothing.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 || !p.open.Load() {
		return
	}

	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		recovered any
	)
	wg.Add(len(tasks))
	for i, task := range tasks {
		wrapped := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { recovered = r })
				}
			}()
			task()
		}
		select {
		case p.queues[i%len(p.queues)] <- wrapped:
		case <-p.done:
			wg.Done()
		}
	}
	wg.Wait()

	if recovered != nil {
		panic(recovered)
	}
}

// Close stops the workers after the queued tasks drain.
// Close is safe to call more than once.
func (p *Pool) Close() {
	if !p.open.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
