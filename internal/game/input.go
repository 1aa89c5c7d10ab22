package game

// Key is a recognized control key
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyStart
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyStart:
		return "start"
	}
	return "unknown"
}

// Event is a key press or release
type Event struct {
	Key     Key
	Pressed bool
}

// Latch queues key events and folds them into the session at the start of
// each tick
type Latch struct {
	queue []Event
}

func NewLatch() *Latch {
	return &Latch{}
}

// Push enqueues an event for the next Apply
func (l *Latch) Push(ev Event) {
	l.queue = append(l.queue, ev)
}

// Pending returns the number of queued events
func (l *Latch) Pending() int {
	return len(l.queue)
}

// Apply drains the queue into the session's intents and phase
func (l *Latch) Apply(s *Session) {
	for _, ev := range l.queue {
		switch ev.Key {
		case KeyUp:
			s.MoveUp = ev.Pressed
		case KeyDown:
			s.MoveDown = ev.Pressed
		case KeyStart:
			// Edge-triggered: only the press that finds the session Idle
			// starts play.
			if ev.Pressed && s.Phase == PhaseIdle {
				s.Phase = PhaseRunning
			}
		}
	}
	l.queue = l.queue[:0]
}
