// Package clock supplies local-time defaults for input forms.
//
// Rather than reaching for time.Now at every call site, callers hold a
// Context and ask it for formatted values. Tests construct a Context
// pinned to a fixed instant with At.
package clock

import (
	"time"
)

// Layouts for form field prefill. These match the values HTML-style
// datetime and date inputs expect.
const (
	LayoutDateTime = "2006-01-02T15:04"
	LayoutDate     = "2006-01-02"
)

// Context resolves the current local time. The zero value is not
// usable; obtain one via NewContext or At.
type Context struct {
	now func() time.Time
}

// NewContext returns a Context backed by the system clock.
func NewContext() *Context {
	return &Context{now: time.Now}
}

// At returns a Context pinned to a fixed instant, for tests.
func At(t time.Time) *Context {
	return &Context{now: func() time.Time { return t }}
}

// Now returns the current local time.
func (c *Context) Now() time.Time {
	return c.now().Local()
}

// NowLocal returns the current local time formatted for a
// datetime-local input.
func (c *Context) NowLocal() string {
	return c.Now().Format(LayoutDateTime)
}

// Today returns the current local date formatted for a date input.
func (c *Context) Today() string {
	return c.Now().Format(LayoutDate)
}

// FieldType selects which default a Field receives.
type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldDateTime
)

// Field describes one form input for default prefill.
type Field struct {
	Type      FieldType
	Value     string
	Max       string // optional upper bound; applied when the default exceeds it
	NoDefault bool   // opt out of prefill entirely
}

// ApplyDefaults fills empty date and datetime fields with the current
// local value. Fields that already hold a value, are plain text, or
// opted out are left alone. When a field carries a Max below the
// default, the default is clamped to it.
func (c *Context) ApplyDefaults(fields []*Field) {
	for _, f := range fields {
		if f == nil || f.NoDefault || f.Value != "" {
			continue
		}
		var v string
		switch f.Type {
		case FieldDate:
			v = c.Today()
		case FieldDateTime:
			v = c.NowLocal()
		default:
			continue
		}
		if f.Max != "" && v > f.Max {
			v = f.Max
		}
		f.Value = v
	}
}
