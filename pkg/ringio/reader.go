package ringio

import "github.com/haivivi/ringio/pkg/ring"

// Reader is a synchronous pull reader. It satisfies logical reads from
// its store first and refills from a caller-supplied Source only when
// the buffered bytes run out, batching many small logical reads into
// few large physical ones.
//
// Not safe for concurrent use.
type Reader struct {
	ring *ring.Store
}

// NewReader creates a Reader with the given store capacity in bytes.
func NewReader(capacity int) *Reader {
	return &Reader{ring: ring.NewStore(capacity)}
}

// Buffered returns the number of bytes held in the store.
func (r *Reader) Buffered() int { return r.ring.Occupied() }

// Read delivers up to len(out) bytes into out, refilling from src as
// needed. It returns the number of bytes delivered, which is less than
// len(out) only when src reports exhaustion first.
func (r *Reader) Read(out []byte, src Source) int {
	delivered := min(r.ring.Occupied(), len(out))
	r.ring.CopyOut(out[:delivered])
	for delivered < len(out) {
		if r.fill(src) == 0 {
			break
		}
		n := min(r.ring.Occupied(), len(out)-delivered)
		r.ring.CopyOut(out[delivered : delivered+n])
		delivered += n
	}
	return delivered
}

// ReadUntil delivers bytes up to and including the first occurrence of
// delim, refilling from src as needed. The second result reports
// whether delim was found; when false, src was exhausted first and the
// returned slice holds everything read up to that point.
func (r *Reader) ReadUntil(src Source, delim byte) ([]byte, bool) {
	return r.ReadUntilFunc(src, func(b byte) bool { return b == delim })
}

// ReadUntilFunc is like ReadUntil but terminates at the first byte
// satisfying stop. Already-buffered bytes are scanned before any
// physical read happens.
func (r *Reader) ReadUntilFunc(src Source, stop func(byte) bool) ([]byte, bool) {
	if r.ring.Occupied() == 0 && r.fill(src) == 0 {
		return nil, false
	}
	if off := r.ring.IndexFunc(stop); off >= 0 {
		out := make([]byte, off+1)
		r.ring.CopyOut(out)
		return out, true
	}
	var out []byte
	for {
		// No terminator in the store: drain it all and refill.
		chunk := make([]byte, r.ring.Occupied())
		r.ring.CopyOut(chunk)
		out = append(out, chunk...)
		if r.fill(src) == 0 {
			return out, false
		}
		if off := r.ring.IndexFunc(stop); off >= 0 {
			tail := make([]byte, off+1)
			r.ring.CopyOut(tail)
			return append(out, tail...), true
		}
	}
}

// fill pulls from src into the free region of the store. The memory
// handed to src must be contiguous, so a free region split across the
// ring boundary takes two calls: the second happens only if the first
// produced everything asked of it.
func (r *Reader) fill(src Source) int {
	if r.ring.Free() == 0 {
		return 0
	}
	span := r.ring.FreeSpan()
	n := src(span)
	r.ring.CommitIn(n)
	if n == len(span) && r.ring.Free() > 0 {
		span = r.ring.FreeSpan()
		m := src(span)
		r.ring.CommitIn(m)
		n += m
	}
	return n
}
