package census

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// workItem is one pending directory expansion: the index of the root it
// belongs to and the directory's path. An item is owned exclusively by the
// worker that dequeued it until the expansion completes; subdirectories it
// discovers become new items whose ownership transfers through the queue.
type workItem struct {
	root int
	path string
}

// workQueue is a blocking FIFO of pending expansions with built-in
// termination detection. outstanding tracks items that are queued or still
// being expanded; once it reaches zero no new work can ever appear, so
// blocked consumers are released and report the queue as drained.
type workQueue struct {
	mu          sync.Mutex
	cond        *sync.Cond
	items       []workItem
	outstanding int
}

func newWorkQueue() *workQueue {
	queue := &workQueue{}
	queue.cond = sync.NewCond(&queue.mu)

	return queue
}

// push enqueues an item and accounts for it in the outstanding count.
func (q *workQueue) push(item workItem) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.outstanding++
	q.mu.Unlock()

	q.cond.Signal()
}

// pop dequeues the next item, blocking while the queue is empty but work is
// still outstanding. It returns false once the queue has permanently drained.
func (q *workQueue) pop() (workItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && q.outstanding > 0 {
		q.cond.Wait()
	}

	if len(q.items) == 0 {
		return workItem{}, false
	}

	item := q.items[0]
	q.items = q.items[1:]

	return item, true
}

// done marks one dequeued item as fully expanded. Any subdirectories it
// produced were pushed before this call, so an outstanding count of zero
// means the whole walk is complete.
func (q *workQueue) done() {
	q.mu.Lock()
	q.outstanding--
	drained := q.outstanding == 0
	q.mu.Unlock()

	if drained {
		q.cond.Broadcast()
	}
}

// ParallelWalk traverses all roots with a fixed pool of workers sharing one
// work queue and returns one completed Counter per root, in root order.
//
// Totals are identical to walking each root sequentially; only the order in
// which directories are visited differs. Unlike the sequential walker, a
// directory that cannot be opened (a root included) is skipped rather than
// fatal, so one bad subtree cannot void a multi-root batch.
func ParallelWalk(roots []string, opts Options) []*Counter {
	counters := make([]*Counter, len(roots))
	for i, root := range roots {
		counters[i] = NewCounter(root, opts.Size)
	}

	queue := newWorkQueue()
	for i, root := range roots {
		queue.push(workItem{root: i, path: root})
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	stop := startProgress(counters, opts)
	defer stop()

	log := opts.logger()

	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				item, ok := queue.pop()
				if !ok {
					return
				}

				expand(queue, item, counters[item.root], opts, log)
				queue.done()
			}
		}()
	}

	wg.Wait()

	return counters
}

// expand enumerates one directory, counts its entries into the owning root's
// counter, and queues discovered subdirectories as new work items for the
// same root.
func expand(queue *workQueue, item workItem, counter *Counter, opts Options, log logger) {
	entries, err := os.ReadDir(item.path)
	if err != nil {
		log.warnf("skipping directory: %v", err)

		return
	}

	for _, dirEntry := range entries {
		if !opts.All && hidden(dirEntry.Name()) {
			continue
		}

		entry, countable, err := classify(filepath.Join(item.path, dirEntry.Name()), dirEntry, opts.Size)
		if err != nil {
			log.warnf("skipping entry: %v", err)

			continue
		}

		if !countable {
			continue
		}

		countEntry(counter, entry, opts)

		if entry.Kind == KindDir {
			queue.push(workItem{root: item.root, path: entry.Path})
		}
	}
}

// startProgress invokes the progress hook on each tick until the returned
// stop function is called. The hook sees running totals summed across all
// counters.
func startProgress(counters []*Counter, opts Options) (stop func()) {
	if opts.Progress == nil {
		return func() {}
	}

	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	quit := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				var files, bytes int64

				for _, counter := range counters {
					files += counter.Files()
					bytes += counter.Size()
				}

				opts.Progress(files, bytes)
			case <-quit:
				return
			}
		}
	}()

	return func() {
		close(quit)
		<-finished
	}
}
