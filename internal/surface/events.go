package surface

// EventType indicates the type of surface change.
type EventType int

const (
	// EventShown indicates a toast was appended to the surface.
	EventShown EventType = iota
	// EventTick indicates a countdown toast re-rendered.
	EventTick
	// EventRemoved indicates a toast left the surface.
	EventRemoved
)

// RemoveReason explains why a toast was removed.
type RemoveReason int

const (
	// ReasonExpired means the removal timer elapsed.
	ReasonExpired RemoveReason = iota
	// ReasonAction means the action control was activated.
	ReasonAction
	// ReasonDismissed means the toast was closed externally (CloseAll).
	ReasonDismissed
)

// String returns the human-readable reason name.
func (r RemoveReason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonAction:
		return "action"
	case ReasonDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Event signals a surface content change.
type Event struct {
	Type      EventType
	ToastID   string
	Text      string       // rendered text at event time
	Remaining int          // countdown seconds left, 0 when none
	Reason    RemoveReason // set for EventRemoved
}

// Subscribe returns a channel of surface events. The channel is buffered;
// slow subscribers drop events rather than block the surface. It is
// closed when the surface stops.
func (s *Surface) Subscribe() <-chan Event {
	ch := make(chan Event, 64)

	s.subMu.Lock()
	defer s.subMu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// publish delivers an event to all subscribers without blocking.
func (s *Surface) publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}
