package ringio

import "github.com/haivivi/ringio/pkg/ring"

// pendingWrite is one outstanding Write call not yet fully flushed.
// data stays caller-owned; it must remain valid until done fires.
type pendingWrite struct {
	data     []byte
	buffered int // bytes copied into the store so far
	flushed  int // bytes confirmed accepted by the sink so far
	done     func(n int)
}

// AsyncWriter accepts overlapping write requests against a
// non-blocking AsyncSink. Each request buffers what fits into the
// store and queues the rest; a single drain loop feeds the sink and
// completes each request's callback once its bytes have been fully
// flushed, in strict FIFO order. At most one physical sink write is in
// flight per instance at any time.
//
// The sink is bound at construction since the drain loop may run long
// after the Write calls that fed it. Not safe for concurrent use; all
// callbacks run on the caller's event loop.
type AsyncWriter struct {
	ring     *ring.Store
	sink     AsyncSink
	pending  []*pendingWrite
	draining bool
}

// NewAsyncWriter creates an AsyncWriter with the given store capacity
// that drains to sink.
func NewAsyncWriter(capacity int, sink AsyncSink) *AsyncWriter {
	return &AsyncWriter{ring: ring.NewStore(capacity), sink: sink}
}

// Pending returns the number of write requests not yet completed.
func (w *AsyncWriter) Pending() int { return len(w.pending) }

// Write queues data for the sink and invokes done with the number of
// bytes actually flushed once the request completes. That number is
// len(data) unless the sink reports exhaustion first, in which case
// every pending request completes early with its partial count.
//
// data must stay valid and unmodified until done fires. Write may be
// called again before an earlier request completes; requests complete
// in the order they were issued.
func (w *AsyncWriter) Write(data []byte, done func(n int)) {
	if len(data) == 0 {
		done(0)
		return
	}
	w.pending = append(w.pending, &pendingWrite{data: data, done: done})
	// Ring byte order must always equal queue order, so any earlier
	// request's unbuffered bytes go in before the new data does.
	w.topUp()
	if w.draining {
		// The running drain loop picks up the new bytes.
		return
	}
	w.draining = true
	w.issue()
}

// issue starts the next physical sink write for the contiguous
// occupied region of the store.
func (w *AsyncWriter) issue() {
	w.sink(w.ring.OccupiedSpan(), w.onDrain)
}

// onDrain is the drain loop continuation. n is what the sink actually
// accepted this round.
func (w *AsyncWriter) onDrain(n int) {
	if n == 0 {
		// Sink exhausted: complete everything still queued with what
		// was flushed so far. A short write, not an error.
		pending := w.pending
		w.pending = nil
		w.draining = false
		w.ring.Reset()
		for _, req := range pending {
			req.done(req.flushed)
		}
		return
	}

	w.ring.CommitOut(n)

	// Distribute the flushed credit front-to-back; completion order is
	// exactly issue order.
	credit := n
	for credit > 0 && len(w.pending) > 0 {
		req := w.pending[0]
		take := min(credit, len(req.data)-req.flushed)
		req.flushed += take
		credit -= take
		if req.flushed == len(req.data) {
			w.pending = w.pending[1:]
			req.done(len(req.data))
		}
	}

	if len(w.pending) == 0 {
		w.draining = false
		return
	}

	w.topUp()
	w.issue()
}

// topUp copies queued-but-unbuffered request bytes into the store,
// front-to-back. A request is drawn from only once every earlier one is
// fully buffered, which keeps the store's byte order equal to the
// queue's request order.
func (w *AsyncWriter) topUp() {
	for _, req := range w.pending {
		free := w.ring.Free()
		if free == 0 {
			return
		}
		take := min(free, len(req.data)-req.buffered)
		w.ring.CopyIn(req.data[req.buffered : req.buffered+take])
		req.buffered += take
	}
}
