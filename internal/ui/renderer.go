package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

const (
	ChampionText = "Champion!"
	StartText    = "Press Space to Start"
)

// Renderer draws game snapshots onto a terminal screen
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render displays one frame. Board coordinates are scaled to the terminal,
// leaving the top row for the scoreboard and the bottom row for the status
// bar.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	courtH := screenH - 2
	if screenW < 1 || courtH < 1 {
		r.screen.Show()
		return
	}

	scaleX := float64(screenW) / snap.BoardWidth
	scaleY := float64(courtH) / snap.BoardHeight

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, courtH, courtStyle, ' ')

	// Draw center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray)
	for y := 1; y <= courtH; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	paddleStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	paddleCols := int(snap.PaddleWidth * scaleX)
	if paddleCols < 1 {
		paddleCols = 1
	}
	r.drawPaddle(0, paddleCols, snap.PlayerY, snap.PaddleHeight, scaleY, courtH, paddleStyle)
	r.drawPaddle(screenW-paddleCols, paddleCols, snap.ComputerY, snap.PaddleHeight, scaleY, courtH, paddleStyle)

	// Draw ball (scaled to screen size)
	ballX := int(snap.BallX * scaleX)
	ballY := int(snap.BallY*scaleY) + 1 // +1 for top status bar
	if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY <= courtH {
		ballStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
		r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
	}

	r.renderScoreboard(snap, screenW)

	midY := 1 + courtH/2
	if snap.ShowChampion {
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed).Bold(true)
		r.renderBanner(midY, ChampionText, style)
	} else if snap.ShowStartPrompt {
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
		r.renderBanner(midY, StartText, style)
	}

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := fmt.Sprintf(" First to %d wins | Up/Down or W/S to move | q to quit", snap.WinningScore)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

// drawPaddle fills the rows covered by a paddle, clipped to the court
func (r *Renderer) drawPaddle(x, cols int, y, height, scaleY float64, courtH int, style tcell.Style) {
	top := int(y*scaleY) + 1
	bottom := int((y+height)*scaleY) + 1
	if bottom <= top {
		bottom = top + 1
	}
	for py := top; py < bottom; py++ {
		if py < 1 || py > courtH {
			continue
		}
		for dx := 0; dx < cols; dx++ {
			r.screen.SetCell(x+dx, py, style, PaddleChar)
		}
	}
}

// renderScoreboard draws both scores on the top row
func (r *Renderer) renderScoreboard(snap game.Snapshot, screenW int) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, 0, style, ' ')
	}

	computerText := fmt.Sprintf(" Computer: %d", snap.ComputerScore)
	playerText := fmt.Sprintf("   Player: %d", snap.PlayerScore)
	r.screen.DrawText(0, 0, computerText, style)
	r.screen.DrawText(len(computerText), 0, playerText, style)
}

// renderBanner draws a boxed, centered message
func (r *Renderer) renderBanner(y int, text string, style tcell.Style) {
	screenW, _ := r.screen.Size()
	boxW := len(text) + 6
	boxX := (screenW - boxW) / 2
	boxStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	r.screen.DrawBox(boxX, y-1, boxW, 3, boxStyle)
	r.screen.FillRect(boxX+1, y, boxW-2, 1, tcell.StyleDefault.Background(tcell.ColorBlack), ' ')
	r.screen.DrawCenteredText(y, text, style)
}
