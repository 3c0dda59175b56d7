package dashboard

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var ErrNotLoaded = errors.New("record is not in the loaded list")

// Options are shared by every view.
type Options struct {
	Notifier  Notifier
	Confirmer Confirmer
	Log       *logrus.Logger
	// Deduplicate sends one Idempotency-Key per draft so a repeated submit
	// of the same draft is replayed by the server instead of inserted twice.
	Deduplicate bool
}

func (o Options) normalize() Options {
	if o.Log == nil {
		o.Log = logrus.New()
		o.Log.SetOutput(io.Discard)
	}
	if o.Notifier == nil {
		o.Notifier = NewLogNotifier(o.Log)
	}
	if o.Confirmer == nil {
		o.Confirmer = declineAll{}
	}
	return o
}

// listState is the cached list of a view together with its search query.
type listState[T any] struct {
	cache  *Cache[T]
	fields Fields[T]

	mu    sync.RWMutex
	query string
}

func newListState[T any](fetch FetchFunc[T], fields Fields[T], onError func(error)) *listState[T] {
	return &listState[T]{
		cache:  NewCache(fetch, onError),
		fields: fields,
	}
}

// Items returns the whole cached list.
func (l *listState[T]) Items() []T {
	return l.cache.Items()
}

// Search sets the query used by Visible.
func (l *listState[T]) Search(query string) {
	l.mu.Lock()
	l.query = query
	l.mu.Unlock()
}

func (l *listState[T]) Query() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.query
}

// Visible is the cached list narrowed by the current query.
func (l *listState[T]) Visible() []T {
	return Filter(l.cache.Items(), l.Query(), l.fields)
}

func (l *listState[T]) Refresh(ctx context.Context) error {
	return l.cache.Refresh(ctx)
}

func findByID[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

type deleteMessages struct {
	prompt  string
	deleted string
	failed  string
}

func deleteConfirmed(ctx context.Context, opts Options, api Deleter, refresh func(context.Context) error, id string, msgs deleteMessages) (bool, error) {
	if !opts.Confirmer.Confirm(ctx, msgs.prompt) {
		return false, nil
	}
	if err := api.Delete(ctx, id); err != nil {
		opts.Notifier.Failure(msgs.failed, err)
		return true, err
	}
	opts.Notifier.Success(msgs.deleted)
	_ = refresh(ctx)
	return true, nil
}

type statusMessages struct {
	updated string
	failed  string
}

func changeStatus(ctx context.Context, opts Options, api StatusSetter, refresh func(context.Context) error, id, status string, msgs statusMessages) error {
	if err := api.SetStatus(ctx, id, status); err != nil {
		opts.Notifier.Failure(msgs.failed, err)
		return err
	}
	opts.Notifier.Success(msgs.updated)
	_ = refresh(ctx)
	return nil
}

func notifyFetch(opts Options, message string) func(error) {
	return func(err error) {
		opts.Notifier.Failure(message, err)
	}
}

// Reference lists are only logged on failure; the form still opens and
// unresolved names come out empty.
func logFetch(opts Options, message string) func(error) {
	return func(err error) {
		opts.Log.WithError(err).Warn(message)
	}
}
