package workpool

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewSize(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		p := New(tt.n)
		if got := p.Size(); got != tt.want {
			t.Errorf("New(%d).Size() = %d, want %d", tt.n, got, tt.want)
		}
		p.Close()
	}
}

func TestRun(t *testing.T) {
	p := New(4)
	defer p.Close()

	var n atomic.Int64
	tasks := make([]func(), 500)
	for i := range tasks {
		tasks[i] = func() { n.Add(1) }
	}
	p.Run(tasks)

	if got := n.Load(); got != 500 {
		t.Errorf("ran %d tasks, want 500", got)
	}
}

func TestRunEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()
	p.Run(nil)
}

func TestRunStealsUnevenWork(t *testing.T) {
	p := New(4)
	defer p.Close()

	// Every slow task lands on worker 0; the rest must be stolen.
	var n atomic.Int64
	tasks := make([]func(), 16)
	for i := range tasks {
		if i%4 == 0 {
			tasks[i] = func() { time.Sleep(5 * time.Millisecond); n.Add(1) }
		} else {
			tasks[i] = func() { n.Add(1) }
		}
	}

	done := make(chan struct{})
	go func() {
		p.Run(tasks)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
	}
	if got := n.Load(); got != 16 {
		t.Errorf("ran %d tasks, want 16", got)
	}
}

func TestRunConcurrentCallers(t *testing.T) {
	p := New(3)
	defer p.Close()

	var n atomic.Int64
	done := make(chan struct{})
	for range 4 {
		go func() {
			tasks := make([]func(), 50)
			for i := range tasks {
				tasks[i] = func() { n.Add(1) }
			}
			p.Run(tasks)
			done <- struct{}{}
		}()
	}
	for range 4 {
		<-done
	}
	if got := n.Load(); got != 200 {
		t.Errorf("ran %d tasks, want 200", got)
	}
}

func TestRunRepanics(t *testing.T) {
	p := New(2)
	defer p.Close()

	var n atomic.Int64
	tasks := []func(){
		func() { n.Add(1) },
		func() { panic("boom") },
		func() { n.Add(1) },
	}

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recover() = %v, want boom", r)
		}
		if got := n.Load(); got != 2 {
			t.Errorf("ran %d non-panicking tasks, want 2", got)
		}
	}()
	p.Run(tasks)
	t.Error("Run() did not panic")
}

func TestClose(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()

	ran := false
	p.Run([]func(){func() { ran = true }})
	if ran {
		t.Error("Run() after Close executed a task")
	}
}

func TestCloseNoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()
	for range 10 {
		p := New(4)
		p.Run([]func(){func() {}})
		p.Close()
	}
	time.Sleep(10 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines = %d after closing pools, started with %d", after, before)
	}
}

func BenchmarkRun(b *testing.B) {
	p := New(0)
	defer p.Close()
	tasks := make([]func(), 256)
	for i := range tasks {
		tasks[i] = func() {}
	}
	b.ResetTimer()
	for b.Loop() {
		p.Run(tasks)
	}
}
