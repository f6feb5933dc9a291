package ringio

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

// writeFrames posts one task that issues a Write per '|'-separated
// message, back-to-back, without waiting for completions.
func writeFrames(q *taskLoop, w *AsyncWriter, input string, onDone func(msg string, n int)) {
	q.post(func() {
		for _, msg := range strings.Split(strings.TrimSuffix(input, "|"), "|") {
			data := []byte(msg)
			m := msg
			w.Write(data, func(n int) { onDone(m, n) })
		}
	})
	q.run()
}

// Overlapping writes must drain in issue order whatever the capacity:
// larger than the whole stream, smaller than any single message, or in
// between.
func TestAsyncWriterSerial(t *testing.T) {
	const input = "HelloWorld|ByeWorld|HaleLujah|JaiShriRam|"
	const want = "HelloWorldByeWorldHaleLujahJaiShriRam"

	for _, capacity := range []int{200, 1, 12} {
		t.Run("capacity="+strconv.Itoa(capacity), func(t *testing.T) {
			q := &taskLoop{}
			var out []byte
			var calls int
			w := NewAsyncWriter(capacity, collectSink(q, &out, &calls))

			var completed []string
			writeFrames(q, w, input, func(msg string, n int) {
				if n != len(msg) {
					t.Errorf("msg %q completed with n=%d", msg, n)
				}
				completed = append(completed, msg)
			})

			if !bytes.Equal(out, []byte(want)) {
				t.Errorf("out=%q", out)
			}
			wantOrder := []string{"HelloWorld", "ByeWorld", "HaleLujah", "JaiShriRam"}
			if len(completed) != len(wantOrder) {
				t.Fatalf("completed=%q", completed)
			}
			for i := range wantOrder {
				if completed[i] != wantOrder[i] {
					t.Errorf("completed[%d]=%q", i, completed[i])
				}
			}
			if w.Pending() != 0 {
				t.Errorf("pending=%d", w.Pending())
			}
		})
	}
}

// Two writes issued before either completes, into a store too small
// for both: the first callback fires strictly before the second, and
// the sink observes the bytes in issue order.
func TestAsyncWriterFIFO(t *testing.T) {
	q := &taskLoop{}
	var out []byte
	var calls int
	w := NewAsyncWriter(8, collectSink(q, &out, &calls))

	var order []string
	w.Write([]byte("Hello"), func(n int) { order = append(order, "hello:"+strconv.Itoa(n)) })
	w.Write([]byte("World"), func(n int) { order = append(order, "world:"+strconv.Itoa(n)) })
	q.run()

	if !bytes.Equal(out, []byte("HelloWorld")) {
		t.Errorf("out=%q", out)
	}
	if len(order) != 2 || order[0] != "hello:5" || order[1] != "world:5" {
		t.Errorf("order=%v", order)
	}
}

// A sink that accepts one round and then reports exhaustion: every
// pending request completes with however much of it was flushed, and
// the queue empties.
func TestAsyncWriterSinkExhaustion(t *testing.T) {
	q := &taskLoop{}
	var out []byte
	rounds := 0
	sink := AsyncSink(func(src []byte, done func(n int)) {
		q.post(func() {
			n := 0
			if rounds == 0 {
				n = len(src)
				out = append(out, src...)
			}
			rounds++
			q.post(func() { done(n) })
		})
	})

	w := NewAsyncWriter(4, sink)
	results := map[string]int{"a": -1, "b": -1}
	w.Write([]byte("HelloWorld"), func(n int) { results["a"] = n })
	w.Write([]byte("Bye"), func(n int) { results["b"] = n })
	q.run()

	// First round flushed the 4 buffered bytes of the first request.
	if results["a"] != 4 {
		t.Errorf("a=%d", results["a"])
	}
	if results["b"] != 0 {
		t.Errorf("b=%d", results["b"])
	}
	if w.Pending() != 0 {
		t.Errorf("pending=%d", w.Pending())
	}
	if !bytes.Equal(out, []byte("Hell")) {
		t.Errorf("out=%q", out)
	}
}

func TestAsyncWriterZeroLength(t *testing.T) {
	q := &taskLoop{}
	var out []byte
	var calls int
	w := NewAsyncWriter(4, collectSink(q, &out, &calls))

	got := -1
	w.Write(nil, func(n int) { got = n })
	q.run()

	if got != 0 {
		t.Errorf("n=%d", got)
	}
	if calls != 0 {
		t.Errorf("calls=%d, zero-length write must not touch the sink", calls)
	}
}

// A callback issues a new write while an earlier request still has
// unbuffered bytes. The earlier request's bytes must reach the sink
// first and each completion must report its own bytes, even though the
// reentrant write arrives at a moment when the store has free space.
func TestAsyncWriterReentrantBehindPending(t *testing.T) {
	q := &taskLoop{}
	var out []byte
	var calls int
	w := NewAsyncWriter(4, collectSink(q, &out, &calls))

	var order []string
	record := func(msg string) func(int) {
		return func(n int) { order = append(order, msg+":"+strconv.Itoa(n)) }
	}
	q.post(func() {
		w.Write([]byte("AAAA"), func(n int) {
			order = append(order, "a:"+strconv.Itoa(n))
			w.Write([]byte("CCCC"), record("c"))
		})
		w.Write([]byte("BBBB"), record("b"))
	})
	q.run()

	if !bytes.Equal(out, []byte("AAAABBBBCCCC")) {
		t.Errorf("out=%q", out)
	}
	want := []string{"a:4", "b:4", "c:4"}
	if len(order) != len(want) {
		t.Fatalf("order=%v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d]=%q", i, order[i])
		}
	}
	if w.Pending() != 0 {
		t.Errorf("pending=%d", w.Pending())
	}
}

// A completion callback may immediately issue the next write; the new
// bytes ride the drain loop that is already running.
func TestAsyncWriterReentrantWrite(t *testing.T) {
	q := &taskLoop{}
	var out []byte
	var calls int
	w := NewAsyncWriter(4, collectSink(q, &out, &calls))

	var second int
	w.Write([]byte("first"), func(n int) {
		w.Write([]byte("second"), func(n int) { second = n })
	})
	q.run()

	if second != 6 {
		t.Errorf("second=%d", second)
	}
	if !bytes.Equal(out, []byte("firstsecond")) {
		t.Errorf("out=%q", out)
	}
}
