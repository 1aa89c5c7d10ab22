package game

// Default rules, in board units
const (
	DefaultBoardWidth    = 800
	DefaultBoardHeight   = 600
	DefaultPaddleWidth   = 10
	DefaultPaddleHeight  = 100
	DefaultBallRadius    = 10
	DefaultBallSpeedX    = 4
	DefaultBallSpeedY    = 4
	DefaultPlayerSpeed   = 6
	DefaultComputerSpeed = 3
	DefaultJitterRange   = 0.2
	DefaultWinningScore  = 9
)

// Phase is the session lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Rules holds the fixed parameters of a session
type Rules struct {
	BoardWidth    float64
	BoardHeight   float64
	PaddleWidth   float64
	PaddleHeight  float64
	BallRadius    float64
	BallSpeedX    float64
	BallSpeedY    float64
	PlayerSpeed   float64
	ComputerSpeed float64
	JitterRange   float64
	WinningScore  int

	// ClampOpponent keeps the computer paddle on the board. Off by default:
	// the opponent is allowed to drift past the edges.
	ClampOpponent bool
}

// DefaultRules returns the classic 800x600 first-to-9 rules
func DefaultRules() Rules {
	return Rules{
		BoardWidth:    DefaultBoardWidth,
		BoardHeight:   DefaultBoardHeight,
		PaddleWidth:   DefaultPaddleWidth,
		PaddleHeight:  DefaultPaddleHeight,
		BallRadius:    DefaultBallRadius,
		BallSpeedX:    DefaultBallSpeedX,
		BallSpeedY:    DefaultBallSpeedY,
		PlayerSpeed:   DefaultPlayerSpeed,
		ComputerSpeed: DefaultComputerSpeed,
		JitterRange:   DefaultJitterRange,
		WinningScore:  DefaultWinningScore,
	}
}

// Session is the single mutable record of one game. It is owned by one
// goroutine and passed explicitly to every step function.
type Session struct {
	Rules         Rules
	Player        *Paddle // left side
	Computer      *Paddle // right side
	Ball          *Ball
	PlayerScore   int
	ComputerScore int
	Phase         Phase
	MoveUp        bool
	MoveDown      bool
}

// NewSession creates a session with paddles and ball centered, zero scores
// and the phase set to Idle
func NewSession(rules Rules) *Session {
	paddleY := rules.BoardHeight/2 - rules.PaddleHeight/2
	ball := NewBall(rules.BoardWidth/2, rules.BoardHeight/2, rules.BallRadius)
	ball.VX = rules.BallSpeedX
	ball.VY = rules.BallSpeedY

	return &Session{
		Rules:    rules,
		Player:   NewPaddle(paddleY, rules.PaddleWidth, rules.PaddleHeight, rules.PlayerSpeed),
		Computer: NewPaddle(paddleY, rules.PaddleWidth, rules.PaddleHeight, rules.ComputerSpeed),
		Ball:     ball,
		Phase:    PhaseIdle,
	}
}

// IsGameOver returns true if either side has reached the winning score
func (s *Session) IsGameOver() bool {
	return s.PlayerScore >= s.Rules.WinningScore || s.ComputerScore >= s.Rules.WinningScore
}

// Snapshot is the read-only view handed to the renderer
type Snapshot struct {
	Tick            int
	BoardWidth      float64
	BoardHeight     float64
	PaddleWidth     float64
	PaddleHeight    float64
	BallRadius      float64
	PlayerY         float64
	ComputerY       float64
	BallX, BallY    float64
	PlayerScore     int
	ComputerScore   int
	WinningScore    int
	Phase           Phase
	ShowChampion    bool
	ShowStartPrompt bool
}

// Snapshot copies the current state into a Snapshot
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		BoardWidth:      s.Rules.BoardWidth,
		BoardHeight:     s.Rules.BoardHeight,
		PaddleWidth:     s.Rules.PaddleWidth,
		PaddleHeight:    s.Rules.PaddleHeight,
		BallRadius:      s.Ball.Radius,
		PlayerY:         s.Player.Y,
		ComputerY:       s.Computer.Y,
		BallX:           s.Ball.X,
		BallY:           s.Ball.Y,
		PlayerScore:     s.PlayerScore,
		ComputerScore:   s.ComputerScore,
		WinningScore:    s.Rules.WinningScore,
		Phase:           s.Phase,
		ShowChampion:    s.Phase == PhaseOver,
		ShowStartPrompt: s.Phase == PhaseIdle,
	}
}
