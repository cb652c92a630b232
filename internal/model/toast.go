// Package model defines the core data structures for toaster.
package model

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind classifies a toast for styling purposes.
type Kind string

// The closed set of toast kinds. Anything else renders as info.
const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// ParseKind normalizes an arbitrary kind value. Unrecognized or empty
// values map to KindInfo.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSuccess:
		return KindSuccess
	case KindError:
		return KindError
	default:
		return KindInfo
	}
}

// Valid reports whether k is a member of the closed kind set.
func (k Kind) Valid() bool {
	switch k {
	case KindInfo, KindSuccess, KindError:
		return true
	}
	return false
}

// DefaultDuration is the toast lifetime used when the caller does not
// choose one.
const DefaultDuration = 3200 * time.Millisecond

// CountdownToken is the message placeholder substituted with the
// remaining whole-second count on every countdown render.
const CountdownToken = "{s}"

// State tracks a toast through its lifecycle. StateRemoved is terminal.
type State int

const (
	StateCreated State = iota
	StateDisplayed
	StateCountingDown
	StateRemoved
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateDisplayed:
		return "displayed"
	case StateCountingDown:
		return "counting-down"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Action pairs an action control label with its callback. Both must be
// present for the control to be shown.
type Action struct {
	Label string
	Fn    func()
}

// Enabled reports whether the action control should be attached.
func (a Action) Enabled() bool {
	return a.Label != "" && a.Fn != nil
}

// Toast represents one transient notification.
type Toast struct {
	ID        string
	Message   string
	Kind      Kind
	Duration  time.Duration
	Countdown int // remaining-seconds countdown; 0 disables
	Action    Action
	State     State
	CreatedAt time.Time
}

// Validation errors.
var (
	ErrEmptyID         = errors.New("toast id cannot be empty")
	ErrInvalidKind     = errors.New("kind must be info, success, or error")
	ErrInvalidDuration = errors.New("duration must be greater than 0")
)

// New creates a Toast with a fresh ULID, a normalized kind, and the
// default lifetime. The caller adjusts duration, countdown, and action
// before handing it to the surface.
func New(message string, kind Kind) *Toast {
	return &Toast{
		ID:        ulid.Make().String(),
		Message:   message,
		Kind:      ParseKind(string(kind)),
		Duration:  DefaultDuration,
		State:     StateCreated,
		CreatedAt: time.Now(),
	}
}

// Validate checks that the toast has all required fields.
func (t *Toast) Validate() error {
	if t.ID == "" {
		return ErrEmptyID
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if t.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// HasCountdown reports whether the toast carries a live countdown.
func (t *Toast) HasCountdown() bool {
	return t.Countdown > 0
}

// HasAction reports whether the toast carries an action control.
func (t *Toast) HasAction() bool {
	return t.Action.Enabled()
}

// RenderText returns the display text for the given remaining
// whole-second count. If the message contains the countdown token, the
// first occurrence is replaced with the count; otherwise the count is
// appended as " (Ns)". Toasts without a countdown render verbatim.
func (t *Toast) RenderText(remaining int) string {
	if !t.HasCountdown() {
		return t.Message
	}
	n := strconv.Itoa(remaining)
	if strings.Contains(t.Message, CountdownToken) {
		return strings.Replace(t.Message, CountdownToken, n, 1)
	}
	return t.Message + " (" + n + "s)"
}

// Age returns how long the toast has been alive.
func (t *Toast) Age() time.Duration {
	return time.Since(t.CreatedAt)
}
