// Package ring implements a fixed-capacity circular byte store.
//
// A Store tracks its contents with two offsets (tail for the next byte
// out, head for the next byte in) plus a last-operation tag that
// disambiguates the tail == head state: after a fill it means "full",
// after a drain it means "empty". Without the tag the state is
// structurally ambiguous between 0 and Cap() occupied bytes.
//
// A Store is not safe for concurrent use. It is meant to be owned by a
// single channel (see package ringio) and mutated only by that owner.
package ring

// lastOp records which kind of mutation touched the store last.
type lastOp uint8

const (
	opNone lastOp = iota
	opFill
	opDrain
)

// Store is a fixed-capacity circular byte buffer.
//
// The zero value is not usable; construct with NewStore.
type Store struct {
	buf  []byte
	tail int // next byte to be removed
	head int // next byte to be inserted
	last lastOp
}

// NewStore creates a Store with the given capacity in bytes.
// A capacity below 1 is coerced to 1; a zero-capacity store is never
// rejected, only bumped.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{buf: make([]byte, capacity)}
}

// Cap returns the fixed capacity in bytes.
func (s *Store) Cap() int { return len(s.buf) }

// Occupied returns the number of buffered bytes.
func (s *Store) Occupied() int {
	if s.tail == s.head {
		if s.last == opFill {
			return len(s.buf)
		}
		return 0
	}
	if s.tail < s.head {
		return s.head - s.tail
	}
	return len(s.buf) - (s.tail - s.head)
}

// Free returns the number of bytes that can be buffered before the
// store is full.
func (s *Store) Free() int { return len(s.buf) - s.Occupied() }

// Empty reports whether no bytes are buffered.
func (s *Store) Empty() bool { return s.Occupied() == 0 }

// Full reports whether no free space remains.
func (s *Store) Full() bool { return s.Free() == 0 }

// CopyOut removes the next len(dst) buffered bytes into dst, oldest
// first. The caller must ensure len(dst) <= Occupied(). A zero-length
// dst is a no-op.
func (s *Store) CopyOut(dst []byte) {
	n := len(dst)
	if n == 0 {
		return
	}
	if s.tail < s.head || n <= len(s.buf)-s.tail {
		// Contiguous span, single copy.
		copy(dst, s.buf[s.tail:s.tail+n])
		s.tail = (s.tail + n) % len(s.buf)
	} else {
		// Span crosses the capacity boundary, two copies.
		l1 := len(s.buf) - s.tail
		copy(dst, s.buf[s.tail:])
		copy(dst[l1:], s.buf[:n-l1])
		s.tail = n - l1
	}
	s.last = opDrain
	if s.Occupied() == 0 {
		// Keep offsets at zero whenever the store drains completely so
		// wraparound arithmetic starts from a clean slate.
		s.tail, s.head = 0, 0
	}
}

// CopyIn appends all of src to the buffered bytes. The caller must
// ensure len(src) <= Free(). A zero-length src is a no-op.
func (s *Store) CopyIn(src []byte) {
	n := len(src)
	if n == 0 {
		return
	}
	if s.head < s.tail || n <= len(s.buf)-s.head {
		copy(s.buf[s.head:], src)
		s.head = (s.head + n) % len(s.buf)
	} else {
		l1 := len(s.buf) - s.head
		copy(s.buf[s.head:], src[:l1])
		copy(s.buf, src[l1:])
		s.head = n - l1
	}
	s.last = opFill
}

// FreeSpan returns the contiguous run of free bytes starting at head.
// When the free region wraps past the end of the store the returned
// slice covers only the head-to-end part; the remainder becomes
// reachable after CommitIn. The slice aliases the store's memory and is
// invalidated by any mutation.
func (s *Store) FreeSpan() []byte {
	n := min(s.Free(), len(s.buf)-s.head)
	return s.buf[s.head : s.head+n]
}

// CommitIn records that n bytes were written into FreeSpan by an
// external producer, advancing head. n must not exceed the length of
// the span returned by FreeSpan. CommitIn(0) is a no-op.
func (s *Store) CommitIn(n int) {
	if n == 0 {
		return
	}
	s.head = (s.head + n) % len(s.buf)
	s.last = opFill
}

// OccupiedSpan returns the contiguous run of buffered bytes starting at
// tail. When the occupied region wraps, the returned slice covers only
// the tail-to-end part. The slice aliases the store's memory.
func (s *Store) OccupiedSpan() []byte {
	n := min(s.Occupied(), len(s.buf)-s.tail)
	return s.buf[s.tail : s.tail+n]
}

// CommitOut records that n bytes from OccupiedSpan were consumed by an
// external consumer, advancing tail. n must not exceed the length of
// the span returned by OccupiedSpan. CommitOut(0) is a no-op.
func (s *Store) CommitOut(n int) {
	if n == 0 {
		return
	}
	s.tail = (s.tail + n) % len(s.buf)
	s.last = opDrain
	if s.Occupied() == 0 {
		s.tail, s.head = 0, 0
	}
}

// IndexByte scans the buffered bytes from oldest to newest and returns
// the offset (counted from tail) of the first occurrence of c, or -1 if
// c is not buffered. No bytes are consumed.
func (s *Store) IndexByte(c byte) int {
	return s.IndexFunc(func(b byte) bool { return b == c })
}

// IndexFunc is like IndexByte but matches the first byte satisfying f.
func (s *Store) IndexFunc(f func(byte) bool) int {
	occ := s.Occupied()
	for off := 0; off < occ; off++ {
		if f(s.buf[(s.tail+off)%len(s.buf)]) {
			return off
		}
	}
	return -1
}

// Reset discards all buffered bytes.
func (s *Store) Reset() {
	s.tail, s.head = 0, 0
	s.last = opNone
}
