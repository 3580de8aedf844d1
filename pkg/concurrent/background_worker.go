package concurrent

import "sync"

type JobFunc[T any, G any] func(job T) G

// BackgroundWorker fans a stream of jobs out over a fixed pool of goroutines and
// emits one result per job. Index builds use it to process vocabulary partitions
// in parallel and merge the partial maps afterwards.
type BackgroundWorker[T any, G any] struct {
	workers   int
	jobC      chan T
	resultC   chan G
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T, G]
}

func NewBackgroundWorker[T any, G any](workers, buffer int, jobFunc JobFunc[T, G]) *BackgroundWorker[T, G] {
	return &BackgroundWorker[T, G]{
		workers: workers,
		jobC:    make(chan T, buffer),
		resultC: make(chan G, buffer),
		jobFunc: jobFunc,
	}
}

func (bw *BackgroundWorker[T, G]) TriggerProcessing(jobData T) {
	bw.jobC <- jobData
}

func (bw *BackgroundWorker[T, G]) Results() <-chan G {
	return bw.resultC
}

func (bw *BackgroundWorker[T, G]) Start() {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for jobData := range bw.jobC {
				bw.resultC <- bw.jobFunc(jobData)
			}
		}()
	}
}

// Close stops accepting jobs, waits for in-flight jobs to finish, then closes
// the results channel.
func (bw *BackgroundWorker[T, G]) Close() {
	close(bw.jobC)
	bw.waitGroup.Wait()
	close(bw.resultC)
}
