package game

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

func NewBall(x, y, radius float64) *Ball {
	return &Ball{X: x, Y: y, Radius: radius}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// BounceHorizontal reverses horizontal direction (paddle bounce)
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

func (b *Ball) Top() float64 { return b.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }
func (b *Ball) Left() float64 { return b.X - b.Radius }
func (b *Ball) Right() float64 { return b.X + b.Radius }

// Serve recenters the ball and points it back the way it came.
// The vertical speed is reset to vy regardless of its current sign.
func (b *Ball) Serve(centerX, centerY, vy float64) {
	b.X = centerX
	b.Y = centerY
	b.VX = -b.VX
	b.VY = vy
}
