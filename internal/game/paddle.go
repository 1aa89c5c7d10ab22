package game

// Paddle is a vertical bar. Y is the top edge; the x-plane is fixed by the
// side of the board the paddle lives on.
type Paddle struct {
	Y      float64
	Width  float64
	Height float64
	Speed  float64
}

func NewPaddle(y, width, height, speed float64) *Paddle {
	return &Paddle{Y: y, Width: width, Height: height, Speed: speed}
}

// MoveUp moves the paddle up by its speed, stopping at the top edge
func (p *Paddle) MoveUp() {
	p.Y -= p.Speed
	if p.Y < 0 {
		p.Y = 0
	}
}

// MoveDown moves the paddle down by its speed, stopping at courtHeight
func (p *Paddle) MoveDown(courtHeight float64) {
	p.Y += p.Speed
	if maxY := courtHeight - p.Height; p.Y > maxY {
		p.Y = maxY
	}
}

// Clamp keeps the paddle fully on a court of the given height
func (p *Paddle) Clamp(courtHeight float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if maxY := courtHeight - p.Height; p.Y > maxY {
		p.Y = maxY
	}
}

// ContainsY reports whether y lies strictly inside the paddle's span
func (p *Paddle) ContainsY(y float64) bool {
	return y > p.Y && y < p.Y+p.Height
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.Height
}
