// Package worker provides concurrency primitives for parallel scene extraction.
package worker

// Semaphore provides a counting semaphore for controlling concurrency.
// It limits how many ffmpeg cut processes run at once.
type Semaphore struct {
	permits chan struct{}
}

// NewSemaphore creates a new semaphore with the given number of permits.
func NewSemaphore(count int) *Semaphore {
	if count <= 0 {
		count = 1
	}
	s := &Semaphore{
		permits: make(chan struct{}, count),
	}
	for i := 0; i < count; i++ {
		s.permits <- struct{}{}
	}
	return s
}

// Release returns a permit to the semaphore.
func (s *Semaphore) Release() {
	select {
	case s.permits <- struct{}{}:
	default:
	}
}

// Chan returns the underlying permit channel for use with select.
// This allows context-aware acquisition of permits.
func (s *Semaphore) Chan() <-chan struct{} {
	return s.permits
}

// Result contains the outcome of extracting a single scene.
type Result struct {
	SceneIdx   int
	OutputFile string
	Size       uint64
	Error      error
}
