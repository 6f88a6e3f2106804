package wrappers

import (
	"io"
	"sync/atomic"
)

// WriterWrapper is the output counterpart of ReaderWrapper
type WriterWrapper struct {
	closed  atomic.Bool
	wrapped io.Writer
}

func NewWriterWrapper(wraps io.Writer) *WriterWrapper {
	return &WriterWrapper{wrapped: wraps}
}

func (w *WriterWrapper) Close() error {
	w.closed.Store(true)
	return nil
}

func (w *WriterWrapper) Write(p []byte) (n int, err error) {
	if w.closed.Load() {
		return 0, ErrClosed
	}
	return w.wrapped.Write(p)
}
