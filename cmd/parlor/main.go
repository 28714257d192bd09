// Command parlor runs the interactive terminal frontend for the built
// in games.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"parlor/pkg/games"
	"parlor/pkg/ui"

	// The playable catalog
	_ "parlor/pkg/games/chess"
	_ "parlor/pkg/games/connectfour"
	_ "parlor/pkg/games/hex"
	_ "parlor/pkg/games/tictactoe"
)

func main() {
	var (
		game    = flag.String("game", "", "skip the menu and play the named game")
		list    = flag.Bool("list", false, "print the registered games and exit")
		debug   = flag.Bool("debug", false, "print per-depth search info lines")
		logfile = flag.String("logfile", "", "append structured logs to this file")
	)
	flag.Parse()

	if *list {
		for _, name := range games.Names() {
			fmt.Println(name)
		}
		return
	}

	logger := zerolog.Nop()
	if *logfile != "" {
		file, err := os.OpenFile(*logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer file.Close()

		level := zerolog.InfoLevel
		if *debug {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(file).Level(level).With().Timestamp().Logger()
	}

	frontend := ui.New(os.Stdin, os.Stdout).SetDebug(*debug).SetLogger(logger)

	var err error
	if *game != "" {
		err = frontend.Play(*game)
	} else {
		err = frontend.Run()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
