package caption

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/captionkit/display"
	"github.com/kbukum/captionkit/errors"
	"github.com/kbukum/captionkit/logger"
	"github.com/kbukum/captionkit/observability"
)

// closeTimeout bounds how long close waits for a sink that ignores
// cancellation.
const closeTimeout = 2 * time.Second

// outbox delivers a session's updates to the sink on its own goroutine.
// A queued non-final update is replaced by whatever comes after it; when the
// queue is full the oldest update is dropped.
type outbox struct {
	sink    display.Sink
	size    int
	log     *logger.Logger
	metrics *observability.Metrics

	mu     sync.Mutex
	queue  []display.Update
	closed bool

	notify chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	closeTimeout time.Duration
}

func newOutbox(sink display.Sink, size int, log *logger.Logger, metrics *observability.Metrics) *outbox {
	if size < 1 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	o := &outbox{
		sink:    sink,
		size:    size,
		log:     log,
		metrics: metrics,
		notify:  make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),

		closeTimeout: closeTimeout,
	}
	go o.run()
	return o
}

func (o *outbox) push(u display.Update) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	if n := len(o.queue); n > 0 && !o.queue[n-1].Final {
		o.queue[n-1] = u
	} else {
		if n >= o.size {
			dropped := o.queue[0]
			o.queue = o.queue[1:]
			o.log.Warn("sink is behind, dropping caption update", logger.Fields(
				"update_id", dropped.ID,
				"final", dropped.Final,
				"queued", n,
			))
			o.metrics.RecordDropped(o.ctx)
		}
		o.queue = append(o.queue, u)
	}
	o.mu.Unlock()

	select {
	case o.notify <- struct{}{}:
	default:
	}
}

func (o *outbox) pop() (display.Update, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || len(o.queue) == 0 {
		return display.Update{}, false
	}
	u := o.queue[0]
	o.queue = o.queue[1:]
	return u, true
}

func (o *outbox) run() {
	defer close(o.done)
	for {
		select {
		case <-o.ctx.Done():
			return
		case <-o.notify:
		}
		for {
			u, ok := o.pop()
			if !ok {
				break
			}
			o.deliver(u)
		}
	}
}

func (o *outbox) deliver(u display.Update) {
	o.metrics.RecordUpdate(o.ctx, u.Final)
	if err := o.sink.Show(o.ctx, u); err != nil {
		if o.ctx.Err() != nil {
			return
		}
		appErr := errors.Sink(err)
		o.metrics.RecordSinkError(o.ctx)
		o.log.Warn("display sink failed", logger.Fields(
			"update_id", u.ID,
			"final", u.Final,
			"code", string(appErr.Code),
			"retryable", appErr.Retryable,
			logger.FieldError, err.Error(),
		))
	}
}

// close discards queued updates and waits for an in-flight Show to return.
// The sink sees a canceled context; a Show still running after closeTimeout
// is abandoned and its result ignored.
func (o *outbox) close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.queue = nil
	o.mu.Unlock()

	o.cancel()
	timer := time.NewTimer(o.closeTimeout)
	defer timer.Stop()
	select {
	case <-o.done:
	case <-timer.C:
		o.log.Warn("display sink ignored cancellation, abandoning delivery", logger.Fields(
			"timeout", o.closeTimeout.String(),
		))
	}
}
