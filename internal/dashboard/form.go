package dashboard

import (
	"context"
	"errors"
	"sync"

	"go-hospital-admin/internal/apiclient"

	"github.com/google/uuid"
)

// State is the lifecycle position of a form.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

var ErrFormClosed = errors.New("form is not open")

// SubmitFunc issues the single mutating call for a draft. target is empty
// when creating and holds the record id when updating.
type SubmitFunc[D any] func(ctx context.Context, target string, draft D) error

type formMessages struct {
	created string
	updated string
	failed  string
}

// Form holds one draft and drives it through idle, editing and submitting.
type Form[D any] struct {
	mu     sync.Mutex
	state  State
	target string
	draft  D
	key    string

	blank    func() D
	submit   SubmitFunc[D]
	refresh  func(ctx context.Context) error
	notifier Notifier
	messages formMessages
	dedupe   bool
}

func newForm[D any](blank func() D, submit SubmitFunc[D], refresh func(ctx context.Context) error, notifier Notifier, messages formMessages, dedupe bool) *Form[D] {
	return &Form[D]{
		draft:    blank(),
		blank:    blank,
		submit:   submit,
		refresh:  refresh,
		notifier: notifier,
		messages: messages,
		dedupe:   dedupe,
	}
}

// Open starts a create draft from empty defaults.
func (f *Form[D]) Open() {
	f.open("", f.blank())
}

func (f *Form[D]) open(target string, draft D) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = StateEditing
	f.target = target
	f.draft = draft
	f.key = ""
	if f.dedupe {
		f.key = uuid.NewString()
	}
}

// Close discards the draft.
func (f *Form[D]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form[D]) reset() {
	f.state = StateIdle
	f.target = ""
	f.draft = f.blank()
	f.key = ""
}

// Edit mutates the draft in place. It fails unless the form is open.
func (f *Form[D]) Edit(fn func(draft *D)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateIdle {
		return ErrFormClosed
	}
	fn(&f.draft)
	return nil
}

func (f *Form[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Target is the id being updated, or "" for a create draft.
func (f *Form[D]) Target() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target
}

func (f *Form[D]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit sends a snapshot of the draft. A submit while another is in flight
// issues a second call. On success the form closes and the list is
// refreshed; on failure the draft is kept and nothing is refreshed.
func (f *Form[D]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateIdle {
		f.mu.Unlock()
		return ErrFormClosed
	}
	target, draft, key := f.target, f.draft, f.key
	f.state = StateSubmitting
	f.mu.Unlock()

	if key != "" {
		ctx = apiclient.WithIdempotencyKey(ctx, key)
	}

	if err := f.submit(ctx, target, draft); err != nil {
		f.mu.Lock()
		if f.state == StateSubmitting {
			f.state = StateEditing
		}
		f.mu.Unlock()
		f.notifier.Failure(f.messages.failed, err)
		return err
	}

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()

	if target == "" {
		f.notifier.Success(f.messages.created)
	} else {
		f.notifier.Success(f.messages.updated)
	}

	// A failed refresh is reported by the cache and leaves the old list visible.
	_ = f.refresh(ctx)
	return nil
}
