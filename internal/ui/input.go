package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/game"
)

// DefaultHoldTicks is how long a direction stays held after the last key
// repeat (~133ms at 60Hz). Terminals report presses only, so releases are
// inferred from the repeat stream going quiet.
const DefaultHoldTicks = 8

// KeyToControl maps a key event to a game control key
func KeyToControl(key tcell.Key, r rune) (game.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.KeyUp, true
		case 's', 'S':
			return game.KeyDown, true
		case ' ':
			return game.KeyStart, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// KeyHold turns a press-only key stream into press/release events
type KeyHold struct {
	timeout int
	ticks   map[game.Key]int
}

func NewKeyHold(timeout int) *KeyHold {
	if timeout < 1 {
		timeout = DefaultHoldTicks
	}
	return &KeyHold{
		timeout: timeout,
		ticks:   make(map[game.Key]int),
	}
}

// Press records a key press and returns the events it produces. Pressing a
// direction releases the opposite one. Start is a one-shot press.
func (h *KeyHold) Press(k game.Key) []game.Event {
	if k == game.KeyStart {
		return []game.Event{{Key: game.KeyStart, Pressed: true}}
	}

	var events []game.Event
	if other := opposite(k); h.ticks[other] > 0 {
		delete(h.ticks, other)
		events = append(events, game.Event{Key: other, Pressed: false})
	}

	// Repeats of a held key only refresh the timeout
	if h.ticks[k] == 0 {
		events = append(events, game.Event{Key: k, Pressed: true})
	}
	h.ticks[k] = h.timeout
	return events
}

// Tick counts down held keys and returns releases for the ones that expired
func (h *KeyHold) Tick() []game.Event {
	var events []game.Event
	for _, k := range []game.Key{game.KeyUp, game.KeyDown} {
		if h.ticks[k] == 0 {
			continue
		}
		h.ticks[k]--
		if h.ticks[k] == 0 {
			delete(h.ticks, k)
			events = append(events, game.Event{Key: k, Pressed: false})
		}
	}
	return events
}

// Held reports whether a direction is currently held
func (h *KeyHold) Held(k game.Key) bool {
	return h.ticks[k] > 0
}

func opposite(k game.Key) game.Key {
	if k == game.KeyUp {
		return game.KeyDown
	}
	return game.KeyUp
}
