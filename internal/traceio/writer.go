// Package traceio provides the evaluator's optional -trace sink.
//
// Grounded on github.com/jcorbin/gothird's internal/logio.Writer: partial
// writes are buffered and only flushed, one complete line at a time,
// through a Logf-shaped function — which lets the evaluator just
// fmt.Fprintf into a Writer without caring whether tracing is a *log.Logger,
// os.Stderr, or a test buffer.
package traceio

import (
	"bytes"
	"sync"
)

// Writer adapts a printf-style Logf function into an io.Writer.
type Writer struct {
	Logf func(format string, args ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p and flushes any completed lines through Logf.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf.Write(p)
	w.flushLines(false)
	return len(p), nil
}

// Sync flushes any remaining partial line through Logf.
func (w *Writer) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flushLines(true)
	return nil
}

func (w *Writer) flushLines(all bool) {
	for w.buf.Len() > 0 {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i >= 0 {
			w.Logf("%s", w.buf.Next(i))
			w.buf.Next(1)
		} else if all {
			w.Logf("%s", w.buf.Next(w.buf.Len()))
		} else {
			break
		}
	}
}
