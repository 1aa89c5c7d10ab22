package config

import (
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultPoints = 9
	DefaultFPS    = 60
	MaxFPS        = 240
)

// Config holds the application configuration
type Config struct {
	PointsToWin   int
	FPS           int
	Mute          bool
	Seed          int64
	ClampOpponent bool
	LogFile       string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("solopong", flag.ContinueOnError)

	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	fps := fs.Int("fps", DefaultFPS, "ticks per second (1-240)")
	mute := fs.Bool("mute", false, "disable sound")
	seed := fs.Int64("seed", 0, "opponent jitter seed (0 = random)")
	clamp := fs.Bool("clamp-opponent", false, "keep the computer paddle on the board")
	logFile := fs.String("log", "", "write logs to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate points
	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}

	// Validate tick rate
	if *fps < 1 || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, *fps)
	}

	cfg := &Config{
		PointsToWin:   *points,
		FPS:           *fps,
		Mute:          *mute,
		Seed:          *seed,
		ClampOpponent: *clamp,
		LogFile:       *logFile,
	}

	return cfg, nil
}
