package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/ui"
	"gridsnake/ui/terminal"

	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load(".env")

	cfg := config.FromEnv()
	flag.StringVar(&cfg.UI.Backend, "backend", cfg.UI.Backend, "UI backend: terminal or raylib")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = random)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to logs/snake.log")
	flag.BoolVar(&cfg.UI.Sound, "sound", cfg.UI.Sound, "Play a tone when food is eaten (terminal)")
	speed := flag.Int("speed", int(cfg.Game.StartInterval/time.Millisecond), "Starting tick interval in milliseconds (lower = faster)")
	minInterval := flag.Int("min-interval", 0, "Fastest tick interval in milliseconds (0 = keep configured floor)")
	flag.Parse()
	applySpeed(&cfg.Game, *speed, *minInterval)

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		log.Println("no .env file found, using environment variables only")
	}

	opts := []game.Option{game.WithScoreBoard(manager.NewScoreBoard())}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	session, err := game.NewSession(cfg.Game, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	switch cfg.UI.Backend {
	case config.BackendRaylib:
		err = ui.Run(session, cfg.UI.CellSize)
	case config.BackendTerminal:
		err = runTerminal(session, cfg.UI.Sound)
	default:
		err = fmt.Errorf("unknown backend %q", cfg.UI.Backend)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	sb := session.ScoreBoard()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", sb.GamesPlayed(), sb.HighScore(), sb.AverageScore())
}

func runTerminal(session *game.Session, sound bool) error {
	screen, err := terminal.OpenScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	s := terminal.NewSound(sound)
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.NewApp(screen, session, s).Run(ctx)
}

// applySpeed sets the tick intervals from the command line. A floor above the
// requested start is lowered to the start so a fast -speed alone stays valid.
func applySpeed(cfg *game.Config, speedMs, minMs int) {
	cfg.StartInterval = time.Duration(speedMs) * time.Millisecond
	if minMs > 0 {
		cfg.MinInterval = time.Duration(minMs) * time.Millisecond
		return
	}
	if cfg.MinInterval > cfg.StartInterval && cfg.StartInterval > 0 {
		cfg.MinInterval = cfg.StartInterval
	}
}
