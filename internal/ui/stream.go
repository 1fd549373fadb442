package ui

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// LabelWriter tags each line written through it with a stream label,
// so interleaved subprocess output stays attributable to its command.
// Safe for concurrent use by the subprocess's stdout and stderr pipes.
type LabelWriter struct {
	mu    sync.Mutex
	out   io.Writer
	label string
	buf   []byte
}

// NewLabelWriter creates a writer that prefixes every line with
// "[label] ".
func NewLabelWriter(out io.Writer, label string) *LabelWriter {
	return &LabelWriter{out: out, label: label}
}

// Write buffers partial lines and emits complete ones with the label
// prefix. It always reports the full input length as consumed.
func (w *LabelWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		line := w.buf[:i]
		w.buf = w.buf[i+1:]
		if _, err := fmt.Fprintf(w.out, "[%s] %s\n", w.label, line); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

// Flush emits any buffered partial line. Call once after the subprocess
// exits.
func (w *LabelWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w.out, "[%s] %s\n", w.label, w.buf)
	w.buf = nil
	return err
}
