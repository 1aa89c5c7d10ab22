package main

import (
	"fmt"
	"os"

	"github.com/diegok/solopong/internal/app"
	"github.com/diegok/solopong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  solopong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win (default: 9)")
	fmt.Fprintln(os.Stderr, "  --fps <n>           Ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Opponent jitter seed (default: random)")
	fmt.Fprintln(os.Stderr, "  --clamp-opponent    Keep the computer paddle on the board")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to a file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Up/Down or W/S      Move paddle")
	fmt.Fprintln(os.Stderr, "  Space               Serve")
	fmt.Fprintln(os.Stderr, "  q / Esc             Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  solopong")
	fmt.Fprintln(os.Stderr, "  solopong --points 5 --mute")
}
