package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PointsToWin != DefaultPoints {
		t.Errorf("expected points %d, got %d", DefaultPoints, cfg.PointsToWin)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Mute {
		t.Error("expected sound on by default")
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.ClampOpponent {
		t.Error("expected opponent clamping off by default")
	}
	if cfg.LogFile != "" {
		t.Errorf("expected no log file, got '%s'", cfg.LogFile)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--points", "3", "--fps", "30", "--mute", "--seed", "42", "--clamp-opponent", "--log", "/tmp/pong.log"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PointsToWin != 3 {
		t.Errorf("expected points 3, got %d", cfg.PointsToWin)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if !cfg.Mute {
		t.Error("expected Mute to be true")
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if !cfg.ClampOpponent {
		t.Error("expected ClampOpponent to be true")
	}
	if cfg.LogFile != "/tmp/pong.log" {
		t.Errorf("expected log '/tmp/pong.log', got '%s'", cfg.LogFile)
	}
}

func TestParseArgs_InvalidPointsZero(t *testing.T) {
	args := []string{"--points", "0"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for points 0")
	}
}

func TestParseArgs_InvalidPointsNegative(t *testing.T) {
	args := []string{"--points", "-5"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for negative points")
	}
}

func TestParseArgs_InvalidFPS(t *testing.T) {
	tests := []struct {
		name string
		fps  string
	}{
		{"zero", "0"},
		{"negative", "-1"},
		{"too high", "241"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs([]string{"--fps", tt.fps})
			if err == nil {
				t.Errorf("expected error for fps %s", tt.fps)
			}
		})
	}
}

func TestParseArgs_ValidFPSBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fps  string
		want int
	}{
		{"minimum fps", "1", 1},
		{"maximum fps", "240", 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs([]string{"--fps", tt.fps})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.FPS != tt.want {
				t.Errorf("expected fps %d, got %d", tt.want, cfg.FPS)
			}
		})
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--server"})
	if err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseArgs_StrayArgument(t *testing.T) {
	_, err := ParseArgs([]string{"--mute", "extra"})
	if err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultPoints != 9 {
		t.Errorf("expected DefaultPoints 9, got %d", DefaultPoints)
	}
	if DefaultFPS != 60 {
		t.Errorf("expected DefaultFPS 60, got %d", DefaultFPS)
	}
}
