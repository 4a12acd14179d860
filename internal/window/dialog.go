package window

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/pubsub"
)

// Future is the pending result of a dialog. It resolves exactly once.
type Future[R any] struct {
	done  chan struct{}
	once  sync.Once
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// Resolved returns a future already resolved with v.
func Resolved[R any](v R) *Future[R] {
	f := newFuture[R]()
	f.resolve(v, nil)
	return f
}

// resolve settles the future. Later calls are ignored and return false.
func (f *Future[R]) resolve(v R, err error) bool {
	settled := false
	f.once.Do(func() {
		f.value = v
		f.err = err
		close(f.done)
		settled = true
	})
	return settled
}

// Done is closed once the result is available.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the dialog result is available or ctx is done.
// Cancelling ctx abandons the wait only; the dialog stays open.
func (f *Future[R]) Await(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Value returns the result without blocking. ok is false while the dialog
// is still pending. A presentation failure yields the zero value.
func (f *Future[R]) Value() (v R, ok bool) {
	select {
	case <-f.done:
		return f.value, true
	default:
		return v, false
	}
}

// Err returns the presentation failure, if any, once resolved.
func (f *Future[R]) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// ShowDialog shows the window registered under key and returns a future for
// its typed result.
//
// With a main window the dialog is shown modally over it and the future
// resolves when the dialog closes: to its DialogResult when the window is a
// ResultProvider[R], otherwise to the zero value. Without a main window the
// dialog is shown modeless and the future resolves to the zero value at once.
// Lookup and construction failures also resolve to the zero value.
func ShowDialog[R any](ctx context.Context, c *Controller, key string, viewModel any) *Future[R] {
	_, span := c.tracer.Start(ctx, "window.dialog")
	defer span.End()
	span.SetAttributes(attribute.String("window.key", key))

	var zero R
	fut := newFuture[R]()

	h, err := c.factory.Create(key, viewModel)
	if err != nil {
		log.ErrorErr(log.CatDialog, "Dialog construction failed", err, "key", key)
		span.RecordError(err)
		span.SetAttributes(attribute.String("window.outcome", "not_created"))
		fut.resolve(zero, nil)
		return fut
	}

	// Set before showing; the close hook reads it after the window closed.
	var modal bool
	var hook sync.Once
	h.Window.OnClosed(func() {
		hook.Do(func() {
			result := zero
			if rp, ok := h.Window.(ResultProvider[R]); ok {
				result = rp.DialogResult()
			}
			c.publish(pubsub.ClosedEvent, h, modal, true)
			if fut.resolve(result, nil) {
				log.Debug(log.CatDialog, "Dialog resolved", "key", key, "id", h.ID)
				c.publish(pubsub.ResolvedEvent, h, modal, true)
			}
		})
	})

	owner := c.mainWindow()
	if owner == nil {
		if err := h.Window.Show(); err != nil {
			perr := &PresentationError{Key: key, Err: err}
			c.reportPresentation(span, perr)
			fut.resolve(zero, perr)
			return fut
		}
		log.Warn(log.CatDialog, "No main window, dialog shown modeless and resolved to default", "key", key)
		span.SetAttributes(attribute.String("window.outcome", "shown_detached"))
		c.publish(pubsub.ShownEvent, h, false, true)
		fut.resolve(zero, nil)
		return fut
	}

	modal = true
	if err := h.Window.ShowModal(owner); err != nil {
		perr := &PresentationError{Key: key, Modal: true, Err: err}
		c.reportPresentation(span, perr)
		fut.resolve(zero, perr)
		return fut
	}
	span.SetAttributes(attribute.String("window.outcome", "shown_modal"))
	c.publish(pubsub.ShownEvent, h, true, true)
	return fut
}
