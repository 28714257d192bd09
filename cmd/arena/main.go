// Command arena plays two search depths of the same game against each
// other over many games and prints the score.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"parlor/pkg/arena"

	_ "parlor/pkg/games/chess"
	_ "parlor/pkg/games/connectfour"
	_ "parlor/pkg/games/hex"
	_ "parlor/pkg/games/tictactoe"
)

func main() {
	var (
		game     = flag.String("game", "tic-tac-toe", "registered game to play")
		nGames   = flag.Int("games", 100, "number of games to play")
		workers  = flag.Int("workers", 0, "parallel workers, 0 means one per core")
		openings = flag.Int("openings", 2, "random plies before the engines take over")
		depthA   = flag.Int("depth1", 4, "search depth of player 1")
		depthB   = flag.Int("depth2", 2, "search depth of player 2")
		seed     = flag.Uint64("seed", uint64(time.Now().UnixNano()), "base seed for the opening shuffles")
		debug    = flag.Bool("debug", false, "per-game progress logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	versus, err := arena.New(arena.Config{
		Game:         *game,
		Games:        *nGames,
		Workers:      *workers,
		OpeningPlies: *openings,
		DepthA:       *depthA,
		DepthB:       *depthB,
		Seed:         *seed,
		Logger:       &logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err = versus.Run(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "interrupted")
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("\n%s, %d games in %s\n", *game, versus.Played(), elapsed)
	fmt.Printf("\tP1 (depth %d): %6d\n", *depthA, versus.AWins())
	fmt.Printf("\tP2 (depth %d): %6d\n", *depthB, versus.BWins())
	fmt.Printf("\tDraws: %13d\n", versus.Draws())
}
