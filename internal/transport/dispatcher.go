package transport

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// Dispatcher copies frames from one source to multiple subscribers. When a
// subscriber's buffer is full, frames are dropped to prevent blocking the
// pipeline. Dropped frames are logged and counted for monitoring.
type Dispatcher struct {
	source       <-chan models.Frame
	subscribers  []chan models.Frame
	bufferSize   int
	mu           sync.Mutex
	droppedTotal int64 // atomic counter for total dropped frames
}

func NewDispatcher(source <-chan models.Frame, bufferSize int) *Dispatcher {
	return &Dispatcher{
		source:      source,
		subscribers: make([]chan models.Frame, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe returns a channel that receives copies of all source frames.
// Subscribers should be added before calling Run() to receive everything.
func (d *Dispatcher) Subscribe() <-chan models.Frame {
	ch := make(chan models.Frame, d.bufferSize)
	d.mu.Lock()
	d.subscribers = append(d.subscribers, ch)
	d.mu.Unlock()
	return ch
}

// GetSubscriberCount returns the current number of active subscribers.
func (d *Dispatcher) GetSubscriberCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subscribers)
}

// GetDroppedCount returns the total number of frames dropped because a
// subscriber buffer was full. Thread-safe.
func (d *Dispatcher) GetDroppedCount() int64 {
	return atomic.LoadInt64(&d.droppedTotal)
}

// Run blocks until ctx is cancelled or the source closes.
func (d *Dispatcher) Run(ctx context.Context) {
	defer d.closeSubscribers()

	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-d.source:
			if !ok {
				return
			}
			d.dispatch(frame, ctx)
		}
	}
}

func (d *Dispatcher) dispatch(frame models.Frame, ctx context.Context) {
	d.mu.Lock()
	subs := d.subscribers // Copy slice reference to minimize lock time
	d.mu.Unlock()

	dropped := 0
	for _, sub := range subs {
		select {
		case sub <- frame:
		case <-ctx.Done():
			return
		default:
			// Buffer full - drop frame to keep the pipeline moving
			dropped++
			atomic.AddInt64(&d.droppedTotal, 1)
		}
	}

	if dropped > 0 {
		log.Printf("Dispatcher: dropped frame %s for %d subscriber(s) (buffer full)", frame.FrameID, dropped)
	}
}

func (d *Dispatcher) closeSubscribers() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, sub := range d.subscribers {
		close(sub)
	}
}
