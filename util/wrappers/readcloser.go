package wrappers

import (
	"errors"
	"io"
	"sync/atomic"
)

var ErrClosed = errors.New("closed")

// ReaderWrapper lets a repl close its input without closing the wrapped
// reader, e.g. stdin. Reads after Close fail with ErrClosed.
type ReaderWrapper struct {
	closed  atomic.Bool
	wrapped io.Reader
}

func NewReaderWrapper(wraps io.Reader) *ReaderWrapper {
	return &ReaderWrapper{wrapped: wraps}
}

// Close implements repl.ReadCloser.
func (r *ReaderWrapper) Close() error {
	r.closed.Store(true)
	return nil
}

// Read implements repl.ReadCloser.
func (r *ReaderWrapper) Read(p []byte) (n int, err error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	return r.wrapped.Read(p)
}
