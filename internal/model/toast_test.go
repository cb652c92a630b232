package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"info", KindInfo},
		{"success", KindSuccess},
		{"error", KindError},
		{"SUCCESS", KindSuccess},
		{" error ", KindError},
		{"warning", KindInfo}, // outside the closed set
		{"", KindInfo},
		{"banana", KindInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKind(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	toast := New("hello", "warning")
	require.NotNil(t, toast)

	assert.NotEmpty(t, toast.ID)
	assert.Equal(t, "hello", toast.Message)
	assert.Equal(t, KindInfo, toast.Kind) // unrecognized kind degrades to info
	assert.Equal(t, DefaultDuration, toast.Duration)
	assert.Equal(t, StateCreated, toast.State)
	assert.False(t, toast.HasCountdown())
	assert.False(t, toast.HasAction())
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New("a", KindInfo)
	b := New("b", KindInfo)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestToast_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Toast)
		wantErr error
	}{
		{
			name:    "valid toast",
			modify:  func(t *Toast) {},
			wantErr: nil,
		},
		{
			name: "empty id",
			modify: func(t *Toast) {
				t.ID = ""
			},
			wantErr: ErrEmptyID,
		},
		{
			name: "invalid kind",
			modify: func(t *Toast) {
				t.Kind = Kind("warning")
			},
			wantErr: ErrInvalidKind,
		},
		{
			name: "zero duration",
			modify: func(t *Toast) {
				t.Duration = 0
			},
			wantErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toast := New("msg", KindInfo)
			tt.modify(toast)
			err := toast.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToast_RenderText(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		countdown int
		remaining int
		want      string
	}{
		{
			name:      "token replaced",
			message:   "Saving in {s}",
			countdown: 3,
			remaining: 3,
			want:      "Saving in 3",
		},
		{
			name:      "only first token replaced",
			message:   "{s} then {s}",
			countdown: 5,
			remaining: 4,
			want:      "4 then {s}",
		},
		{
			name:      "no token appends seconds",
			message:   "Undo delete",
			countdown: 10,
			remaining: 7,
			want:      "Undo delete (7s)",
		},
		{
			name:      "no countdown renders verbatim",
			message:   "Done {s}",
			countdown: 0,
			remaining: 0,
			want:      "Done {s}",
		},
		{
			name:      "empty message",
			message:   "",
			countdown: 2,
			remaining: 2,
			want:      " (2s)",
		},
		{
			name:      "zero remaining",
			message:   "Closing in {s}",
			countdown: 1,
			remaining: 0,
			want:      "Closing in 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toast := New(tt.message, KindInfo)
			toast.Countdown = tt.countdown
			assert.Equal(t, tt.want, toast.RenderText(tt.remaining))
		})
	}
}

func TestAction_Enabled(t *testing.T) {
	assert.False(t, Action{}.Enabled())
	assert.False(t, Action{Label: "Undo"}.Enabled())
	assert.False(t, Action{Fn: func() {}}.Enabled())
	assert.True(t, Action{Label: "Undo", Fn: func() {}}.Enabled())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "displayed", StateDisplayed.String())
	assert.Equal(t, "counting-down", StateCountingDown.String())
	assert.Equal(t, "removed", StateRemoved.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestToast_Age(t *testing.T) {
	toast := New("msg", KindInfo)
	toast.CreatedAt = time.Now().Add(-time.Minute)
	assert.GreaterOrEqual(t, toast.Age(), time.Minute)
}
