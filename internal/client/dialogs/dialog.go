// Package dialogs provides the open/close/payload state holder behind modal
// style editors. Pure state: no validation, no I/O.
package dialogs

// Dialog tracks whether a modal surface is showing and the payload it was
// opened with. The payload is non-nil only while the dialog is open;
// closing always clears it. Not safe for concurrent use.
type Dialog[T any] struct {
	open    bool
	data    *T
	initial *T
}

func New[T any]() *Dialog[T] { return &Dialog[T]{} }

// NewWithInitial sets a default payload used when Open is called without one.
func NewWithInitial[T any](initial T) *Dialog[T] {
	return &Dialog[T]{initial: &initial}
}

// Open shows the dialog. A nil data falls back to the configured initial
// payload (a fresh copy each time), or no payload at all.
func (d *Dialog[T]) Open(data *T) {
	d.open = true
	if data != nil {
		d.data = data
		return
	}
	if d.initial != nil {
		cp := *d.initial
		d.data = &cp
		return
	}
	d.data = nil
}

// Close hides the dialog and drops the payload.
func (d *Dialog[T]) Close() {
	d.open = false
	d.data = nil
}

// SetData replaces the payload without changing visibility.
func (d *Dialog[T]) SetData(data *T) { d.data = data }

func (d *Dialog[T]) IsOpen() bool { return d.open }

// Data returns the current payload; nil when closed.
func (d *Dialog[T]) Data() *T { return d.data }
