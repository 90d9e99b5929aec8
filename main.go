package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"snake-engine/game"
	"snake-engine/ui"
)

func main() {
	variantName := flag.String("variant", "powerup", "Game variant: powerup or hazard")
	width := flag.Int("width", 0, "Board width in cells (0 keeps the default)")
	height := flag.Int("height", 0, "Board height in cells (0 keeps the default)")
	seed := flag.Uint64("seed", 0, "Spawn seed (0 = from the clock)")
	frontend := flag.String("ui", "raylib", "Frontend: raylib or term")
	verbose := flag.Bool("verbose", false, "Log engine and runner events")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr")
	flag.Parse()

	if err := run(*variantName, *width, *height, *seed, *frontend, *verbose, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run(variantName string, width, height int, seed uint64, frontend string, verbose bool, logPath string) error {
	variant, err := game.ParseVariant(variantName)
	if err != nil {
		return err
	}

	cfg := game.DefaultConfig(variant)
	if width > 0 {
		cfg.BoardWidth = width
	}
	if height > 0 {
		cfg.BoardHeight = height
	}
	cfg.Seed = seed

	var out io.Writer = io.Discard
	if verbose {
		out = os.Stderr
		// stderr would tear through the terminal frontend
		if logPath == "" && frontend == "term" {
			logPath = "snake.log"
		}
		if logPath != "" {
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
	}
	engineLog := log.New(out, "[ENGINE] ", log.LstdFlags)
	runnerLog := log.New(out, "[RUNNER] ", log.LstdFlags)
	uiLog := log.New(out, "[UI] ", log.LstdFlags)

	engine, err := game.New(cfg, game.WithLogger(engineLog))
	if err != nil {
		return err
	}

	runner := game.NewRunner(engine, game.WithRunnerLogger(runnerLog))
	runner.Start()
	defer runner.Stop()

	switch frontend {
	case "raylib":
		ui.NewRenderer(uiLog).Run(runner)
	case "term":
		term, err := ui.NewTerminal(uiLog)
		if err != nil {
			return err
		}
		defer term.Close()
		term.Run(runner)
	default:
		return errors.Errorf("unknown ui %q", frontend)
	}

	stats := engine.Stats()
	engineLog.Printf("played %d games, high score %d", stats.GamesPlayed(), stats.HighScore())
	return nil
}
