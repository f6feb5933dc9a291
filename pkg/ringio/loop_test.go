package ringio

// taskLoop is a deterministic single-goroutine stand-in for the
// caller's event loop: tasks run strictly in post order, and posting
// from inside a task is allowed.
type taskLoop struct {
	tasks []func()
}

func (q *taskLoop) post(f func()) {
	q.tasks = append(q.tasks, f)
}

// run executes tasks until the queue is empty.
func (q *taskLoop) run() {
	for len(q.tasks) > 0 {
		f := q.tasks[0]
		q.tasks = q.tasks[1:]
		f()
	}
}

// streamSource returns an AsyncSource producing data as a byte stream.
// Every physical call, the terminal zero-byte one included, increments
// *calls. Reads and completions are dispatched through the loop, so
// callbacks never fire inside the issuing call.
func streamSource(q *taskLoop, data []byte, calls *int) AsyncSource {
	pos := 0
	return func(dst []byte, done func(n int)) {
		q.post(func() {
			n := copy(dst, data[pos:])
			pos += n
			*calls++
			q.post(func() { done(n) })
		})
	}
}

// collectSink returns an AsyncSink appending everything to *out.
func collectSink(q *taskLoop, out *[]byte, calls *int) AsyncSink {
	return func(src []byte, done func(n int)) {
		q.post(func() {
			*out = append(*out, src...)
			*calls++
			n := len(src)
			q.post(func() { done(n) })
		})
	}
}

// syncStream returns a Source producing data as a byte stream,
// counting physical calls.
func syncStream(data []byte, calls *int) Source {
	pos := 0
	return func(dst []byte) int {
		*calls++
		n := copy(dst, data[pos:])
		pos += n
		return n
	}
}
