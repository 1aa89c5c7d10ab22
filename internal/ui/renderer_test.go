package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/game"
)

func newSimRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)
	return NewRenderer(NewScreen(sim)), sim
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(s, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRender_IdleShowsStartPrompt(t *testing.T) {
	r, sim := newSimRenderer(t, 80, 24)

	r.Render(game.NewSession(game.DefaultRules()).Snapshot())

	text := screenText(sim)
	if !strings.Contains(text, StartText) {
		t.Errorf("expected %q on screen, got:\n%s", StartText, text)
	}
	if strings.Contains(text, ChampionText) {
		t.Error("champion banner should not show while idle")
	}
}

func TestRender_OverShowsChampion(t *testing.T) {
	r, sim := newSimRenderer(t, 80, 24)
	s := game.NewSession(game.DefaultRules())
	s.ComputerScore = 9
	s.Phase = game.PhaseOver

	r.Render(s.Snapshot())

	text := screenText(sim)
	if !strings.Contains(text, ChampionText) {
		t.Errorf("expected %q on screen, got:\n%s", ChampionText, text)
	}
	if strings.Contains(text, StartText) {
		t.Error("start prompt should not show when over")
	}
}

func TestRender_RunningHasNoOverlay(t *testing.T) {
	r, sim := newSimRenderer(t, 80, 24)
	s := game.NewSession(game.DefaultRules())
	s.Phase = game.PhaseRunning

	r.Render(s.Snapshot())

	text := screenText(sim)
	if strings.Contains(text, StartText) || strings.Contains(text, ChampionText) {
		t.Errorf("expected no overlay while running, got:\n%s", text)
	}
}

func TestRender_Scoreboard(t *testing.T) {
	r, sim := newSimRenderer(t, 80, 24)
	s := game.NewSession(game.DefaultRules())
	s.ComputerScore = 4
	s.PlayerScore = 7

	r.Render(s.Snapshot())

	top := rowText(sim, 0)
	if !strings.Contains(top, "Computer: 4") {
		t.Errorf("expected computer score on top row, got %q", top)
	}
	if !strings.Contains(top, "Player: 7") {
		t.Errorf("expected player score on top row, got %q", top)
	}

	status := rowText(sim, 23)
	if !strings.Contains(status, "First to 9 wins") {
		t.Errorf("expected winning score in status bar, got %q", status)
	}
}

func TestRender_BallAndPaddles(t *testing.T) {
	r, sim := newSimRenderer(t, 80, 24)
	s := game.NewSession(game.DefaultRules())
	s.Phase = game.PhaseRunning

	r.Render(s.Snapshot())

	// 80x22 court: ball at board center maps to column 40, row 12
	if got, _, _, _ := sim.GetContent(40, 12); got != BallChar {
		t.Errorf("expected ball at (40, 12), got %q", got)
	}

	// Paddles at Y=250..350 cover rows 10-12
	for _, y := range []int{10, 11, 12} {
		if got, _, _, _ := sim.GetContent(0, y); got != PaddleChar {
			t.Errorf("expected player paddle at (0, %d), got %q", y, got)
		}
		if got, _, _, _ := sim.GetContent(79, y); got != PaddleChar {
			t.Errorf("expected computer paddle at (79, %d), got %q", y, got)
		}
	}
	if got, _, _, _ := sim.GetContent(0, 5); got == PaddleChar {
		t.Error("expected no paddle at row 5")
	}
}

func TestRender_OffBoardPaddleIsClipped(t *testing.T) {
	r, sim := newSimRenderer(t, 80, 24)
	s := game.NewSession(game.DefaultRules())
	s.Computer.Y = -400

	// Must not panic or draw over the scoreboard
	r.Render(s.Snapshot())

	if got, _, _, _ := sim.GetContent(79, 0); got == PaddleChar {
		t.Error("expected paddle to be clipped out of the scoreboard row")
	}
}

func TestRender_TinyScreen(t *testing.T) {
	r, _ := newSimRenderer(t, 1, 1)

	// Nothing to draw on, but it must not panic
	r.Render(game.NewSession(game.DefaultRules()).Snapshot())
}
