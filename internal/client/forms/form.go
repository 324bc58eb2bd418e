// Package forms provides a reusable state machine for form data: field
// values, per-field validation errors, and the dirty/loading flags every
// create/edit surface needs. It is the single implementation behind the
// login, register, profile and note editors.
package forms

import (
	"context"
	"errors"
)

// FieldGeneral keys submission-level errors that belong to no single field.
const FieldGeneral = "general"

// ErrInvalid is returned by Submit when local validation produced errors.
// The field errors themselves are on the form.
var ErrInvalid = errors.New("validation failed")

// Validator inspects the form data and returns a field -> message map.
// An empty map means the data is acceptable.
type Validator[T any] func(data T) map[string]string

// SubmitFunc performs the actual submission.
type SubmitFunc[T any] func(ctx context.Context, data T) error

type Option[T any] func(*Form[T])

func WithValidator[T any](v Validator[T]) Option[T] {
	return func(f *Form[T]) { f.validate = v }
}

func WithSubmit[T any](fn SubmitFunc[T]) Option[T] {
	return func(f *Form[T]) { f.submit = fn }
}

// Form holds the state of one form instance. It is not safe for concurrent
// use; like the rest of the UI state it lives on the event loop.
type Form[T any] struct {
	initial T
	data    T
	errors  map[string]string
	loading bool
	dirty   bool

	validate Validator[T]
	submit   SubmitFunc[T]
}

func New[T any](initial T, opts ...Option[T]) *Form[T] {
	f := &Form[T]{
		initial: initial,
		data:    initial,
		errors:  map[string]string{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Data returns the current form data.
func (f *Form[T]) Data() T { return f.data }

// SetField mutates one named field: marks the form dirty and clears any
// existing error for that field, leaving other fields' errors alone.
func (f *Form[T]) SetField(name string, apply func(data *T)) {
	apply(&f.data)
	f.dirty = true
	delete(f.errors, name)
}

// SetErrors replaces the whole error map (used after a server-side
// validation failure).
func (f *Form[T]) SetErrors(errs map[string]string) {
	f.errors = make(map[string]string, len(errs))
	for k, v := range errs {
		f.errors[k] = v
	}
}

// ClearErrors drops all errors.
func (f *Form[T]) ClearErrors() { f.errors = map[string]string{} }

// Error returns the message for one field, "" if none.
func (f *Form[T]) Error(name string) string { return f.errors[name] }

// GeneralError returns the submission-level error message, "" if none.
func (f *Form[T]) GeneralError() string { return f.errors[FieldGeneral] }

// Errors returns a copy of the error map.
func (f *Form[T]) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form[T]) IsDirty() bool   { return f.dirty }
func (f *Form[T]) IsLoading() bool { return f.loading }

// Reset restores the initial data and clears errors and both flags.
func (f *Form[T]) Reset() {
	f.data = f.initial
	f.errors = map[string]string{}
	f.loading = false
	f.dirty = false
}

// Submit runs the validator synchronously first; if it reports errors they
// are installed on the form, the submit action is never invoked, and
// ErrInvalid is returned. Otherwise the submit action runs with the loading
// flag set. A failing action leaves its message under FieldGeneral and the
// error is still returned so the caller can react (e.g. keep a dialog open).
// The loading flag is cleared on every path.
func (f *Form[T]) Submit(ctx context.Context) error {
	if f.validate != nil {
		if errs := f.validate(f.data); len(errs) > 0 {
			f.SetErrors(errs)
			return ErrInvalid
		}
	}
	if f.submit == nil {
		return nil
	}

	f.loading = true
	f.errors = map[string]string{}

	err := f.submit(ctx, f.data)
	f.loading = false
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "request failed"
		}
		f.errors[FieldGeneral] = msg
		return err
	}
	return nil
}
