package drafts

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Mode tells whether a form creates a new record or edits an existing one
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// State of a form
type State int

const (
	StateEmpty State = iota
	StateRestored
	StateEditing
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateRestored:
		return "restored"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrSubmitInProgress is returned when a submit is attempted while another one runs
	ErrSubmitInProgress = errors.New("submit already in progress")

	// ErrSubmitted is returned when a form is used after a successful submit
	ErrSubmitted = errors.New("form already submitted")
)

// Form holds the current values of a create or edit form.
// In create mode every change is written to the draft; edit mode never
// reads or writes the draft.
type Form[T any] struct {
	draft *Draft[T]
	value T
	mode  Mode
	state State
	mu    sync.Mutex
}

// NewCreateForm opens a create form, restoring a stored draft over blank
func NewCreateForm[T any](ctx context.Context, draft *Draft[T], blank T) *Form[T] {
	value, restored := draft.Restore(ctx, blank)

	state := StateEmpty
	if restored {
		state = StateRestored
	}

	return &Form[T]{draft: draft, value: value, mode: ModeCreate, state: state}
}

// NewEditForm opens an edit form preloaded with the stored record
func NewEditForm[T any](value T) *Form[T] {
	return &Form[T]{value: value, mode: ModeEdit, state: StateRestored}
}

// Mode returns the form mode
func (f *Form[T]) Mode() Mode {
	return f.mode
}

// State returns the current state
func (f *Form[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Value returns a copy of the current values
func (f *Form[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Change applies mutate to the values and autosaves the draft in create mode
func (f *Form[T]) Change(ctx context.Context, mutate func(v *T)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return ErrSubmitInProgress
	}
	if f.state == StateSubmitted {
		return ErrSubmitted
	}

	mutate(&f.value)
	f.state = StateEditing

	if f.mode == ModeCreate {
		if err := f.draft.Save(ctx, f.value); err != nil {
			return fmt.Errorf("failed to autosave draft: %w", err)
		}
	}

	return nil
}

// Submit runs fn with the current values. Success clears the draft in
// create mode; failure keeps the draft untouched and returns to editing.
func (f *Form[T]) Submit(ctx context.Context, fn func(ctx context.Context, v T) error) error {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return ErrSubmitInProgress
	case StateSubmitted:
		f.mu.Unlock()
		return ErrSubmitted
	}
	f.state = StateSubmitting
	value := f.value
	f.mu.Unlock()

	err := fn(ctx, value)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateEditing
		return err
	}

	f.state = StateSubmitted
	if f.mode == ModeCreate {
		if err := f.draft.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
	}

	return nil
}
