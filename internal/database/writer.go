package database

import (
	"context"
	"errors"
	"sync"

	"github.com/ggorockee/cityexplorer/internal/logger"
)

// ErrWriterClosed is reported for writes submitted after Close.
var ErrWriterClosed = errors.New("cache writer closed")

// WriteFunc performs one cache write.
type WriteFunc func(ctx context.Context) error

// Writer runs cache writes in the background so responses never wait on them.
// Failures are logged, counted and passed to OnError.
type Writer struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool

	// OnError is called with the table name and the write error.
	OnError func(table string, err error)
}

func NewWriter() *Writer {
	return &Writer{}
}

// Go starts fn in its own goroutine with a background context,
// so a finished request does not cancel its write.
func (w *Writer) Go(table string, fn WriteFunc) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.report(table, ErrWriterClosed)
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		if err := fn(context.Background()); err != nil {
			w.report(table, err)
			return
		}
		cacheWritesTotal.WithLabelValues(table, "success").Inc()
	}()
}

func (w *Writer) report(table string, err error) {
	cacheWritesTotal.WithLabelValues(table, "error").Inc()
	logger.GetLogger("database.writer").Errorw("cache write failed", "table", table, "error", err)
	if w.OnError != nil {
		w.OnError(table, err)
	}
}

// Wait blocks until every submitted write has finished.
func (w *Writer) Wait() {
	w.wg.Wait()
}

// Close stops accepting writes and drains the in-flight ones.
func (w *Writer) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.wg.Wait()
}
