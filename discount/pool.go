package discount

import "sync"

// workerPool runs submitted tasks on a fixed number of goroutines.
type workerPool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// newWorkerPool starts workers goroutines; workers < 1 is treated as 1.
func newWorkerPool(workers int) *workerPool {
	if workers < 1 {
		workers = 1
	}
	p := &workerPool{tasks: make(chan func(), workers*2)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit queues a task, blocking while the buffer is full.
func (p *workerPool) Submit(task func()) {
	p.tasks <- task
}

// Wait closes the queue and blocks until every queued task has run.
func (p *workerPool) Wait() {
	p.once.Do(func() { close(p.tasks) })
	p.wg.Wait()
}
