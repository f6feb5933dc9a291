package ringio

import "github.com/haivivi/ringio/pkg/ring"

// AsyncReader turns one logical read into a chain of sub-reads against
// a non-blocking AsyncSource. Each sub-read's continuation either
// completes the logical read or issues exactly the next sub-read, so a
// channel instance never has more than one physical read in flight.
//
// The completion callback may fire synchronously inside Read when the
// buffered bytes alone satisfy the request; otherwise it fires from
// the source's continuation. A new Read must only be issued after the
// previous one's callback has fired — typically by calling Read again
// from inside the callback, forming an asynchronous read loop that
// terminates when the callback reports fewer bytes than requested.
//
// Not safe for concurrent use.
type AsyncReader struct {
	ring *ring.Store
}

// NewAsyncReader creates an AsyncReader with the given store capacity.
func NewAsyncReader(capacity int) *AsyncReader {
	return &AsyncReader{ring: ring.NewStore(capacity)}
}

// Buffered returns the number of bytes held in the store.
func (r *AsyncReader) Buffered() int { return r.ring.Occupied() }

// Read delivers up to len(out) bytes into out and invokes done with
// the number delivered. Buffered bytes are consumed first; the source
// is involved only for the shortfall. done receiving less than
// len(out) means the source is exhausted.
func (r *AsyncReader) Read(out []byte, src AsyncSource, done func(n int)) {
	n := min(r.ring.Occupied(), len(out))
	r.ring.CopyOut(out[:n])
	if n == len(out) {
		done(n)
		return
	}
	r.issue(out, n, src, done)
}

// issue starts the next sub-read into the contiguous free region of
// the store. A free region split across the ring boundary is filled
// over two rounds, since the source needs contiguous memory.
func (r *AsyncReader) issue(out []byte, delivered int, src AsyncSource, done func(n int)) {
	span := r.ring.FreeSpan()
	src(span, func(n int) {
		r.onFill(out, delivered, n, src, done)
	})
}

// onFill is the continuation for one sub-read. n is what the source
// actually produced this round.
func (r *AsyncReader) onFill(out []byte, delivered, n int, src AsyncSource, done func(n int)) {
	if n == 0 {
		// Source exhausted: terminal for this logical read.
		done(delivered)
		return
	}
	r.ring.CommitIn(n)
	c := min(len(out)-delivered, r.ring.Occupied())
	r.ring.CopyOut(out[delivered : delivered+c])
	delivered += c
	if delivered == len(out) {
		done(delivered)
		return
	}
	r.issue(out, delivered, src, done)
}
