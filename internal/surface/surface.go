// Package surface implements the shared presentation surface that owns
// all live toasts. Every mutation is serialized through a single
// event-loop goroutine; timers post commands into the loop instead of
// touching state directly, so no toast ever sees concurrent writes.
package surface

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/pmeadley/toaster/internal/config"
	"github.com/pmeadley/toaster/internal/model"
)

// Options configures a single Show call. The zero value is valid: the
// configured default duration applies, no countdown, no action.
type Options struct {
	// Duration is the lifetime before automatic removal. Values <= 0
	// fall back to the surface's default.
	Duration time.Duration

	// CountdownSeconds enables a per-second live countdown when
	// positive. Fractional values round up for the first render.
	CountdownSeconds float64

	// ActionLabel and OnAction attach an action control. Both must be
	// set; a label without a callback (or vice versa) is ignored.
	ActionLabel string
	OnAction    func()
}

// Handle identifies a shown toast and lets the caller activate its
// action control programmatically.
type Handle struct {
	id      string
	surface *Surface
}

// ID returns the toast's ULID.
func (h *Handle) ID() string {
	return h.id
}

// Invoke activates the toast's action control, exactly as a user
// activation would. It is a no-op if the toast has no action or has
// already been removed.
func (h *Handle) Invoke() {
	h.surface.Invoke(h.id)
}

// toastState is the loop-owned state of one live toast.
type toastState struct {
	toast     *model.Toast
	remaining int           // countdown seconds left to display
	text      string        // current rendered text
	stop      chan struct{} // closes the countdown ticker; nil when none runs
	acted     bool
}

// Surface owns the ordered set of live toasts.
type Surface struct {
	logger          *slog.Logger
	defaultDuration time.Duration
	tick            time.Duration // countdown tick interval; one second outside tests

	cmdCh  chan func()
	stopCh chan struct{}
	doneCh chan struct{}

	// Owned by the event loop
	toasts []*toastState
	byID   map[string]*toastState

	subMu       sync.Mutex
	subscribers []chan Event
	closed      bool
}

// New creates a Surface. Call Start before showing toasts.
func New(cfg *config.SurfaceConfig, logger *slog.Logger) *Surface {
	if logger == nil {
		logger = slog.Default()
	}

	defaultDuration := model.DefaultDuration
	if cfg != nil && cfg.DefaultDuration.Duration() > 0 {
		defaultDuration = cfg.DefaultDuration.Duration()
	}

	return &Surface{
		logger:          logger,
		defaultDuration: defaultDuration,
		tick:            time.Second,
		cmdCh:           make(chan func(), 128),
		stopCh:          make(chan struct{}),
		doneCh:          make(chan struct{}),
		byID:            make(map[string]*toastState),
	}
}

// Start launches the event loop.
func (s *Surface) Start() {
	go s.run()
	s.logger.Debug("surface started", "default_duration", s.defaultDuration)
}

// Stop terminates the event loop and every countdown ticker. Live
// toasts are dropped without removal events.
func (s *Surface) Stop() {
	close(s.stopCh)
	<-s.doneCh

	s.subMu.Lock()
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
	s.closed = true
	s.subMu.Unlock()

	s.logger.Debug("surface stopped")
}

// run is the event loop. All toast mutations happen here.
func (s *Surface) run() {
	defer close(s.doneCh)
	for {
		select {
		case cmd := <-s.cmdCh:
			cmd()
		case <-s.stopCh:
			for _, st := range s.toasts {
				s.stopCountdown(st)
			}
			return
		}
	}
}

// post schedules a command on the event loop. Commands posted after
// Stop are silently dropped.
func (s *Surface) post(cmd func()) {
	select {
	case s.cmdCh <- cmd:
	case <-s.stopCh:
	}
}

// Show appends one toast to the surface and returns immediately after
// scheduling its timers. Toasts appear in call order. Malformed options
// degrade to defaults; nothing is signaled to the caller.
func (s *Surface) Show(message string, kind model.Kind, opts Options) *Handle {
	t := model.New(message, kind)

	if opts.Duration > 0 {
		t.Duration = opts.Duration
	} else {
		t.Duration = s.defaultDuration
	}
	if opts.CountdownSeconds > 0 {
		t.Countdown = int(math.Ceil(opts.CountdownSeconds))
	}
	if opts.ActionLabel != "" && opts.OnAction != nil {
		t.Action = model.Action{Label: opts.ActionLabel, Fn: opts.OnAction}
	}

	s.post(func() { s.add(t) })

	return &Handle{id: t.ID, surface: s}
}

// Invoke activates the action control of the identified toast.
func (s *Surface) Invoke(id string) {
	s.post(func() { s.invokeAction(id) })
}

// CloseAll removes every live toast with a dismissed reason.
func (s *Surface) CloseAll() {
	s.post(func() {
		for len(s.toasts) > 0 {
			s.remove(s.toasts[0], ReasonDismissed)
		}
	})
}

// add inserts the toast, renders its initial text, and schedules its
// timers. Runs on the event loop.
func (s *Surface) add(t *model.Toast) {
	st := &toastState{toast: t}
	t.State = model.StateDisplayed

	if t.HasCountdown() {
		// Initial render shows the starting value, before any tick
		t.State = model.StateCountingDown
		st.remaining = t.Countdown
		st.text = t.RenderText(st.remaining)
		st.stop = make(chan struct{})
		go s.runCountdown(t.ID, st.stop)
	} else {
		st.text = t.Message
	}

	s.toasts = append(s.toasts, st)
	s.byID[t.ID] = st

	// The removal timer is independent of the countdown. It is never
	// cancelled: an early action-removal leaves it to fire and no-op.
	id := t.ID
	time.AfterFunc(t.Duration, func() {
		s.post(func() { s.expire(id) })
	})

	s.publish(Event{Type: EventShown, ToastID: t.ID, Text: st.text, Remaining: st.remaining})

	s.logger.Debug("showed toast",
		"id", t.ID,
		"kind", t.Kind,
		"duration", t.Duration,
		"countdown", t.Countdown,
		"active", len(s.toasts),
	)
}

// runCountdown posts one tick per interval until stopped.
func (s *Surface) runCountdown(id string, stop chan struct{}) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.post(func() { s.tickToast(id) })
		case <-stop:
			return
		case <-s.stopCh:
			return
		}
	}
}

// tickToast decrements the countdown and re-renders in place. Reaching
// zero stops the ticker but never removes the toast; removal belongs to
// the duration timer or the action. Runs on the event loop.
func (s *Surface) tickToast(id string) {
	st, ok := s.byID[id]
	if !ok || st.stop == nil {
		// Removed, or the countdown already finished; a late tick no-ops
		return
	}

	st.remaining--
	st.text = st.toast.RenderText(st.remaining)
	s.publish(Event{Type: EventTick, ToastID: id, Text: st.text, Remaining: st.remaining})

	if st.remaining <= 0 {
		s.stopCountdown(st)
		st.toast.State = model.StateDisplayed
	}
}

// expire handles the removal timer firing. The toast may already be
// gone if the action removed it early; that is a deliberate no-op.
func (s *Surface) expire(id string) {
	st, ok := s.byID[id]
	if !ok {
		s.logger.Debug("expiry for already-removed toast", "id", id)
		return
	}
	s.remove(st, ReasonExpired)
}

// invokeAction cancels the countdown, runs the callback exactly once,
// and removes the toast immediately. The removal timer keeps running
// and later no-ops. Runs on the event loop.
func (s *Surface) invokeAction(id string) {
	st, ok := s.byID[id]
	if !ok || !st.toast.HasAction() || st.acted {
		return
	}
	st.acted = true

	fn := st.toast.Action.Fn
	s.remove(st, ReasonAction)

	// Invoked on the loop so callback-driven Show calls stay ordered
	// after this removal
	fn()
}

// remove takes the toast off the surface. Always cancels the countdown
// ticker so no orphaned timer mutates a removed toast. Runs on the
// event loop.
func (s *Surface) remove(st *toastState, reason RemoveReason) {
	s.stopCountdown(st)
	st.toast.State = model.StateRemoved

	delete(s.byID, st.toast.ID)
	for i, other := range s.toasts {
		if other == st {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			break
		}
	}

	s.publish(Event{Type: EventRemoved, ToastID: st.toast.ID, Text: st.text, Reason: reason})

	s.logger.Debug("removed toast",
		"id", st.toast.ID,
		"reason", reason,
		"active", len(s.toasts),
	)
}

// stopCountdown cancels a running countdown ticker, if any.
func (s *Surface) stopCountdown(st *toastState) {
	if st.stop != nil {
		close(st.stop)
		st.stop = nil
	}
}

// ToastView is a read-only snapshot of one live toast.
type ToastView struct {
	ID          string
	Text        string
	Kind        model.Kind
	State       model.State
	Remaining   int
	ActionLabel string
}

// Snapshot returns the live toasts in insertion order.
func (s *Surface) Snapshot() []ToastView {
	reply := make(chan []ToastView, 1)
	s.post(func() {
		views := make([]ToastView, 0, len(s.toasts))
		for _, st := range s.toasts {
			views = append(views, ToastView{
				ID:          st.toast.ID,
				Text:        st.text,
				Kind:        st.toast.Kind,
				State:       st.toast.State,
				Remaining:   st.remaining,
				ActionLabel: st.toast.Action.Label,
			})
		}
		reply <- views
	})

	select {
	case views := <-reply:
		return views
	case <-s.doneCh:
		return nil
	}
}

// ActiveCount returns the number of live toasts.
func (s *Surface) ActiveCount() int {
	return len(s.Snapshot())
}
