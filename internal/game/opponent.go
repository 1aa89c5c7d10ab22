package game

// Rand is the jitter source. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Opponent drives the computer paddle toward the ball with a small random
// dead zone so it does not track perfectly.
type Opponent struct {
	rng Rand
}

func NewOpponent(rng Rand) *Opponent {
	return &Opponent{rng: rng}
}

// Step moves the computer paddle one tick. It runs in every phase.
func (o *Opponent) Step(s *Session) {
	jitter := o.rng.Float64() * s.Rules.JitterRange
	p := s.Computer
	center := p.CenterY()

	if center < s.Ball.Y-jitter {
		p.Y += p.Speed
	} else if center > s.Ball.Y+jitter {
		p.Y -= p.Speed
	}

	if s.Rules.ClampOpponent {
		p.Clamp(s.Rules.BoardHeight)
	}
}
