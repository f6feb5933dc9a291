// Package wsio adapts a gorilla/websocket connection to the ringio
// source/sink contracts, so the buffered channels can read and write a
// websocket as a plain byte stream.
//
// Message boundaries are invisible to the channels: a Source
// concatenates incoming message payloads, and each Sink call emits one
// binary message. Any connection error — a clean close included — is
// reported as exhaustion (0 bytes) from then on, matching the
// contracts in package ringio.
package wsio

import (
	"io"

	"github.com/gorilla/websocket"

	"github.com/haivivi/ringio/pkg/ringio"
)

// NewSource returns a Source streaming the payloads of messages
// received on conn. The Source blocks until the connection yields data
// and returns 0 permanently after any read error.
func NewSource(conn *websocket.Conn) ringio.Source {
	var cur io.Reader
	closed := false
	return func(dst []byte) int {
		if closed {
			return 0
		}
		for {
			if cur == nil {
				_, r, err := conn.NextReader()
				if err != nil {
					closed = true
					return 0
				}
				cur = r
			}
			n, err := cur.Read(dst)
			if n > 0 {
				if err != nil {
					cur = nil // message fully consumed
				}
				return n
			}
			if err != nil {
				cur = nil // empty tail of the current message
			}
		}
	}
}

// NewSink returns a Sink that writes each call's bytes as one binary
// message on conn. It returns 0 permanently after any write error.
func NewSink(conn *websocket.Conn) ringio.Sink {
	closed := false
	return func(src []byte) int {
		if closed {
			return 0
		}
		if err := conn.WriteMessage(websocket.BinaryMessage, src); err != nil {
			closed = true
			return 0
		}
		return len(src)
	}
}

// NewAsyncSource wraps NewSource for the asynchronous contract. The
// blocking read runs on its own goroutine and the one-shot completion
// is delivered through dispatch, which should hand the callback to the
// caller's event loop. A nil dispatch invokes callbacks directly on
// the reading goroutine.
func NewAsyncSource(conn *websocket.Conn, dispatch func(func())) ringio.AsyncSource {
	src := NewSource(conn)
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return func(dst []byte, done func(n int)) {
		go func() {
			n := src(dst)
			dispatch(func() { done(n) })
		}()
	}
}

// NewAsyncSink wraps NewSink for the asynchronous contract, with the
// same dispatch semantics as NewAsyncSource.
func NewAsyncSink(conn *websocket.Conn, dispatch func(func())) ringio.AsyncSink {
	sink := NewSink(conn)
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return func(src []byte, done func(n int)) {
		go func() {
			n := sink(src)
			dispatch(func() { done(n) })
		}()
	}
}
