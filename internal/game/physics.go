package game

// Cue selects an audio cue
type Cue int

const (
	CueHit Cue = iota
	CueMiss
)

func (c Cue) String() string {
	if c == CueHit {
		return "hit"
	}
	return "miss"
}

// CuePlayer plays audio cues. Playback is fire-and-forget: Play must not
// block and reports nothing back.
type CuePlayer interface {
	Play(c Cue)
}

// Step advances the session by one tick. The human paddle is live while Idle
// or Running; the ball only moves while Running. Over freezes everything.
func Step(s *Session, cues CuePlayer) {
	if s.Phase == PhaseOver {
		return
	}

	// Up wins when both directions are held
	if s.MoveUp {
		s.Player.MoveUp()
	} else if s.MoveDown {
		s.Player.MoveDown(s.Rules.BoardHeight)
	}

	if s.Phase != PhaseRunning {
		return
	}

	b := s.Ball
	b.Move()

	// No positional correction: a fast ball may overshoot for several ticks
	if b.Bottom() > s.Rules.BoardHeight || b.Top() < 0 {
		b.BounceVertical()
	}

	width := s.Rules.BoardWidth
	if b.Right() > width-s.Computer.Width && s.Computer.ContainsY(b.Y) {
		b.BounceHorizontal()
		cues.Play(CueHit)
	} else if b.Right() > width {
		s.ComputerScore++
		cues.Play(CueMiss)
		Reset(s)
		return
	}

	if b.Left() < s.Player.Width && s.Player.ContainsY(b.Y) {
		b.BounceHorizontal()
		cues.Play(CueHit)
	} else if b.Left() < 0 {
		s.PlayerScore++
		cues.Play(CueMiss)
		Reset(s)
	}
}

// Reset runs after a point. If either score reached the winning threshold
// the session is over and everything stays where it is; otherwise the ball
// is served back from the center and the session waits for the next start.
func Reset(s *Session) {
	if s.IsGameOver() {
		s.Phase = PhaseOver
		return
	}

	s.Ball.Serve(s.Rules.BoardWidth/2, s.Rules.BoardHeight/2, s.Rules.BallSpeedY)
	s.Phase = PhaseIdle
}

// NopCues discards every cue
type NopCues struct{}

func (NopCues) Play(Cue) {}
