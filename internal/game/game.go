package game

// Game ties the session to its latch, opponent and audio sink and runs the
// per-tick pipeline. It is not safe for concurrent use; the host loop owns it.
type Game struct {
	Session  *Session
	latch    *Latch
	opponent *Opponent
	cues     CuePlayer
	tick     int
}

// New creates a game in the Idle phase. A nil cues discards audio.
func New(rules Rules, rng Rand, cues CuePlayer) *Game {
	if cues == nil {
		cues = NopCues{}
	}
	return &Game{
		Session:  NewSession(rules),
		latch:    NewLatch(),
		opponent: NewOpponent(rng),
		cues:     cues,
	}
}

// Push queues a key event for the next tick
func (g *Game) Push(ev Event) {
	g.latch.Push(ev)
}

// Tick runs one frame: drain input, step physics, move the opponent
func (g *Game) Tick() {
	g.tick++
	g.latch.Apply(g.Session)
	Step(g.Session, g.cues)
	g.opponent.Step(g.Session)
}

// Advance runs n ticks
func (g *Game) Advance(n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

// Ticks returns the number of ticks run so far
func (g *Game) Ticks() int {
	return g.tick
}

// Snapshot returns the render view of the current state
func (g *Game) Snapshot() Snapshot {
	snap := g.Session.Snapshot()
	snap.Tick = g.tick
	return snap
}
