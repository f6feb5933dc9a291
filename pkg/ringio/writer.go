package ringio

import "github.com/haivivi/ringio/pkg/ring"

// Writer is a synchronous lazy writer. Writes accumulate in its store
// and reach the Sink only when the store fills up or on an explicit
// Flush, batching many small logical writes into few physical ones.
//
// The Sink is bound at construction because Close flushes through it.
// Not safe for concurrent use.
type Writer struct {
	ring *ring.Store
	sink Sink
}

// NewWriter creates a Writer with the given store capacity that
// flushes to sink.
func NewWriter(capacity int, sink Sink) *Writer {
	return &Writer{ring: ring.NewStore(capacity), sink: sink}
}

// Buffered returns the number of bytes held in the store.
func (w *Writer) Buffered() int { return w.ring.Occupied() }

// Write buffers data, flushing to the sink whenever the store fills up
// mid-write. It returns the number of bytes accepted, which is less
// than len(data) only when a flush fails to make progress — the sink
// is exhausted and whatever could not be buffered is dropped.
func (w *Writer) Write(data []byte) int {
	written := 0
	for {
		n := min(len(data)-written, w.ring.Free())
		w.ring.CopyIn(data[written : written+n])
		written += n
		if written == len(data) {
			return written
		}
		if w.Flush() == 0 {
			return written
		}
	}
}

// Flush writes the buffered bytes to the sink: one call when the
// occupied region is contiguous, up to two when it wraps (the second
// only if the sink accepted the whole first segment). The store
// advances by what the sink actually accepted. Flushing an empty
// store is a no-op returning 0.
func (w *Writer) Flush() int {
	if w.ring.Empty() {
		return 0
	}
	span := w.ring.OccupiedSpan()
	n := w.sink(span)
	w.ring.CommitOut(n)
	if n == len(span) && !w.ring.Empty() {
		span = w.ring.OccupiedSpan()
		m := w.sink(span)
		w.ring.CommitOut(m)
		n += m
	}
	return n
}

// Close flushes any remaining buffered bytes so they are not silently
// dropped on teardown. Bytes the sink refuses at this point are gone;
// that is the exhaustion contract, not an error.
func (w *Writer) Close() error {
	w.Flush()
	return nil
}
