package window

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/pubsub"
)

// Event describes a lifecycle transition published by the Controller.
type Event struct {
	ID     uuid.UUID
	Key    string
	Name   string
	Modal  bool
	Dialog bool
}

// Controller presents windows and dialogs. It is owned by the application
// shell and handed to whatever needs presentation services.
type Controller struct {
	factory *Factory
	session Session
	cache   *Cache
	events  *pubsub.Broker[Event]
	tracer  trace.Tracer
}

// Option configures a Controller.
type Option func(*Controller)

// WithCache supplies the instance cache, e.g. to inspect it in tests.
func WithCache(cache *Cache) Option {
	return func(c *Controller) { c.cache = cache }
}

// WithTracer wraps controller operations in spans from t.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// NewController creates a controller presenting windows from factory over
// session's main window.
func NewController(factory *Factory, session Session, opts ...Option) *Controller {
	c := &Controller{
		factory: factory,
		session: session,
		events:  pubsub.NewBroker[Event](),
		tracer:  noop.NewTracerProvider().Tracer("window"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewCache()
	}
	return c
}

// Cache returns the instance cache of tracked windows.
func (c *Controller) Cache() *Cache { return c.cache }

// Factory returns the controller's window factory.
func (c *Controller) Factory() *Factory { return c.factory }

// Events returns the broker carrying shown/closed/resolved events.
func (c *Controller) Events() *pubsub.Broker[Event] { return c.events }

// Close releases the event broker.
func (c *Controller) Close() {
	c.events.Close()
}

// ShowWindow creates the window registered under key, tracks it, and shows
// it. With modal set and a main window present it is shown modally over the
// main window; otherwise it is shown modeless.
//
// Showing a key that is already open replaces the tracked entry without
// closing the earlier window. Unknown keys and failed construction are
// logged and return nil; toolkit failures while presenting are returned as
// *PresentationError.
func (c *Controller) ShowWindow(ctx context.Context, key string, viewModel any, modal bool) error {
	_, span := c.tracer.Start(ctx, "window.show")
	defer span.End()
	span.SetAttributes(attribute.String("window.key", key), attribute.Bool("window.modal", modal))

	h, err := c.factory.Create(key, viewModel)
	if err != nil {
		log.ErrorErr(log.CatWindow, "Window construction failed", err, "key", key)
		span.RecordError(err)
		span.SetAttributes(attribute.String("window.outcome", "not_created"))
		return nil
	}

	if prev, ok := c.cache.Get(h.Name); ok {
		log.Debug(log.CatWindow, "Replacing tracked window", "name", h.Name, "previous", prev.ID)
	}
	c.cache.Put(h.Name, h)
	h.Window.OnClosed(func() {
		if c.cache.RemoveIf(h.Name, h) {
			log.Debug(log.CatWindow, "Window closed, evicted", "name", h.Name, "id", h.ID)
		}
		c.publish(pubsub.ClosedEvent, h, false, false)
	})

	owner := c.mainWindow()
	modal = modal && owner != nil
	if modal {
		err = h.Window.ShowModal(owner)
	} else {
		err = h.Window.Show()
	}
	if err != nil {
		c.cache.RemoveIf(h.Name, h)
		perr := &PresentationError{Key: key, Modal: modal, Err: err}
		c.reportPresentation(span, perr)
		return perr
	}

	log.Info(log.CatWindow, "Window shown", "name", h.Name, "modal", modal, "id", h.ID)
	span.SetAttributes(attribute.String("window.outcome", "shown"))
	c.publish(pubsub.ShownEvent, h, modal, false)
	return nil
}

// CloseWindow closes the tracked window shown under key. Keys that were never
// shown, or are already closed, are ignored.
func (c *Controller) CloseWindow(ctx context.Context, key string) {
	_, span := c.tracer.Start(ctx, "window.close")
	defer span.End()

	name := c.factory.QualifiedName(key)
	span.SetAttributes(attribute.String("window.name", name))

	h, ok := c.cache.Take(name)
	if !ok {
		span.SetAttributes(attribute.Bool("window.tracked", false))
		return
	}
	h.Window.Close()
	log.Info(log.CatWindow, "Window closed by key", "name", name, "id", h.ID)
}

func (c *Controller) mainWindow() Window {
	if c.session == nil {
		return nil
	}
	return c.session.MainWindow()
}

func (c *Controller) reportPresentation(span trace.Span, err *PresentationError) {
	log.ErrorErr(log.CatWindow, "Presenting window failed", err.Err, "key", err.Key, "modal", err.Modal)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (c *Controller) publish(t pubsub.EventType, h *Handle, modal, dialog bool) {
	c.events.Publish(t, Event{
		ID:     h.ID,
		Key:    h.Key,
		Name:   h.Name,
		Modal:  modal,
		Dialog: dialog,
	})
}
