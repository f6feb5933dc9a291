// Package ringio provides buffered channels between logically-sized
// reads/writes and byte-oriented I/O primitives.
//
// Each channel owns a fixed-capacity circular store (package ring) and
// turns logical operations — "read n bytes", "read until a delimiter",
// "write this slice" — into as few calls against the underlying
// primitive as the store's capacity allows.
//
// Four channel types are provided:
//   - Reader: synchronous pull reader (Read, ReadUntil, ReadUntilFunc)
//   - Writer: synchronous lazy writer (Write, Flush, Close)
//   - AsyncReader: callback-chained reader over an AsyncSource
//   - AsyncWriter: callback-chained writer with a FIFO pending queue
//     over an AsyncSink
//
// The scheduling model is single-threaded and cooperative: there is no
// locking anywhere in this package. A channel instance must never have
// two logical operations active at once; a new call may only be issued
// after the previous call's completion callback has fired. Completion
// callbacks fire in the order their calls were issued. Caller-supplied
// slices must stay valid and unmodified until the corresponding
// completion fires.
//
// The only abnormal signal is exhaustion: a source or sink returning 0
// bytes. It is surfaced as a short result, never as an error, and is
// permanent — no channel retries a primitive that reported 0.
package ringio
