package ringio

import "io"

// Source is a synchronous byte source. It fills dst (always contiguous
// memory), returning how many bytes it produced, in [0, len(dst)].
//
// Returning 0 signals permanent exhaustion: the channel will never call
// this Source again. A Source with no data momentarily available must
// block until it has some, or until it knows no more will ever arrive;
// it must not return 0 as a transient "try again later".
type Source func(dst []byte) int

// Sink is a synchronous byte sink. It consumes bytes from src,
// returning how many it accepted. Returning 0 signals the sink will
// accept no more, ever.
type Sink func(src []byte) int

// AsyncSource is a non-blocking byte source. It must invoke done
// exactly once per call — synchronously or later — with the number of
// bytes produced into dst. 0 signals permanent exhaustion.
type AsyncSource func(dst []byte, done func(n int))

// AsyncSink is a non-blocking byte sink with the same one-shot
// callback contract. 0 means the sink will accept no more.
type AsyncSink func(src []byte, done func(n int))

// ReaderSource adapts an io.Reader to the Source contract. Any error,
// io.EOF included, is reported as exhaustion from then on.
func ReaderSource(r io.Reader) Source {
	done := false
	return func(dst []byte) int {
		if done {
			return 0
		}
		for {
			n, err := r.Read(dst)
			if err != nil {
				done = true
				return n
			}
			if n > 0 {
				return n
			}
		}
	}
}

// WriterSink adapts an io.Writer to the Sink contract. Any error is
// reported as exhaustion from then on.
func WriterSink(w io.Writer) Sink {
	done := false
	return func(src []byte) int {
		if done {
			return 0
		}
		n, err := w.Write(src)
		if err != nil {
			done = true
		}
		return n
	}
}
