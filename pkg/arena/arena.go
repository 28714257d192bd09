// Package arena pits two search configurations of the same game against
// each other over a series of self-play games.
package arena

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"parlor/pkg/games"
)

// Games longer than this count as a draw, shuffling engines should not
// stall a whole worker
const _maxGameMoves = 1000

// Stats counts finished games. The counters are atomic, reading them
// while the arena runs is safe.
type Stats struct {
	aWins uint32
	bWins uint32
	draws uint32
}

func (s *Stats) AWins() int { return int(atomic.LoadUint32(&s.aWins)) }
func (s *Stats) BWins() int { return int(atomic.LoadUint32(&s.bWins)) }
func (s *Stats) Draws() int { return int(atomic.LoadUint32(&s.draws)) }

func (s *Stats) Played() int {
	return s.AWins() + s.BWins() + s.Draws()
}

type Config struct {
	Game         string // registered game name
	Games        int    // total games to play
	Workers      int    // parallel workers, defaults to the CPU count
	OpeningPlies int    // random moves played before the engines take over
	DepthA       int    // search depth of configuration A
	DepthB       int    // search depth of configuration B
	Seed         uint64 // base seed, each worker derives its own stream
	Logger       *zerolog.Logger
}

type Arena struct {
	Stats
	cfg     Config
	workers int
	log     zerolog.Logger
}

func New(cfg Config) (*Arena, error) {
	probe, err := games.New(cfg.Game)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	if _, ok := probe.(games.Tunable); !ok {
		return nil, fmt.Errorf("arena: game %q has no adjustable search depth", cfg.Game)
	}
	if cfg.Games < 1 {
		return nil, errors.New("arena: need at least one game")
	}
	if cfg.DepthA < 1 || cfg.DepthB < 1 {
		return nil, errors.New("arena: search depths must be positive")
	}
	if cfg.OpeningPlies < 0 {
		return nil, errors.New("arena: opening plies must not be negative")
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Games {
		workers = cfg.Games
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Arena{cfg: cfg, workers: workers, log: log}, nil
}

// Run plays the configured series and blocks until every worker is done
// or the context is cancelled.
func (a *Arena) Run(ctx context.Context) error {
	a.log.Info().
		Str("game", a.cfg.Game).
		Int("games", a.cfg.Games).
		Int("workers", a.workers).
		Int("depth_a", a.cfg.DepthA).
		Int("depth_b", a.cfg.DepthB).
		Msg("arena started")

	grp, ctx := errgroup.WithContext(ctx)
	share := a.cfg.Games / a.workers
	rest := a.cfg.Games % a.workers
	for id := 0; id < a.workers; id++ {
		id := id
		nGames := share
		if id < rest {
			nGames++
		}
		grp.Go(func() error { return a.worker(ctx, id, nGames) })
	}
	err := grp.Wait()

	a.log.Info().
		Int("played", a.Played()).
		Int("a_wins", a.AWins()).
		Int("b_wins", a.BWins()).
		Int("draws", a.Draws()).
		Msg("arena finished")
	return err
}

func (a *Arena) worker(ctx context.Context, id, nGames int) error {
	ga, err := games.New(a.cfg.Game)
	if err != nil {
		return err
	}
	gb, err := games.New(a.cfg.Game)
	if err != nil {
		return err
	}
	ga.(games.Tunable).SetSearchDepth(a.cfg.DepthA)
	gb.(games.Tunable).SetSearchDepth(a.cfg.DepthB)

	rng := rand.New(rand.NewSource(a.cfg.Seed + uint64(id)))
	for i := 0; i < nGames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		winner := a.playGame(rng, ga, gb)
		result := "draw"
		switch winner {
		case ga:
			atomic.AddUint32(&a.aWins, 1)
			result = "a"
		case gb:
			atomic.AddUint32(&a.bWins, 1)
			result = "b"
		default:
			atomic.AddUint32(&a.draws, 1)
		}

		a.log.Debug().
			Int("worker", id).
			Int("game", i+1).
			Str("winner", result).
			Int("moves", len(ga.MoveHistory())).
			Msg("game finished")
	}
	return nil
}

// playGame relays moves between two instances of the same game, each
// holding one search configuration. The winner is the instance whose
// engine made the final move, nil on a draw.
func (a *Arena) playGame(rng *rand.Rand, ga, gb games.Game) games.Game {
	ga.Reset()
	gb.Reset()

	// Shared random opening so the engines do not replay one fixed game
	for i := 0; i < a.cfg.OpeningPlies && ga.WinState() == games.InProgress; i++ {
		moves := ga.LegalMoves()
		if len(moves) == 0 {
			break
		}
		m := moves[rng.Intn(len(moves))]
		ga.PlayMove(m)
		gb.PlayMove(m)
	}

	mover, other := ga, gb
	if rng.Intn(2) == 1 {
		mover, other = gb, ga
	}

	moved := 0
	for ga.WinState() == games.InProgress && moved < _maxGameMoves {
		notation := mover.ComputerMove()
		other.PlayMove(notation)
		mover, other = other, mover
		moved++
	}

	// A decisive game went to whoever moved last. A game the random
	// opening already decided counts for neither configuration.
	if ga.WinState() == games.Decisive && moved > 0 {
		return other
	}
	return nil
}
