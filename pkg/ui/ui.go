// Package ui drives the interactive terminal frontend, a menu of the
// registered games and a line oriented loop for playing one of them
// against the computer.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"parlor/pkg/games"
)

type action int

const (
	_actionMenu action = iota
	_actionRetry
	_actionQuit
)

const _helpText = `Commands:
  moves    list the legal moves
  history  show the moves played so far
  reset    start the game over
  menu     back to the game menu
  quit     leave
Anything else is read as a move.`

type UI struct {
	output  *termenv.Output
	scanner *bufio.Scanner
	log     zerolog.Logger
	debug   bool
}

func New(in io.Reader, out io.Writer) *UI {
	return &UI{
		output:  termenv.NewOutput(out),
		scanner: bufio.NewScanner(in),
		log:     zerolog.Nop(),
	}
}

// SetDebug toggles printing of per-depth search info lines
func (u *UI) SetDebug(debug bool) *UI {
	u.debug = debug
	return u
}

func (u *UI) SetLogger(log zerolog.Logger) *UI {
	u.log = log
	return u
}

// Run shows the menu and plays games until the user quits or the input
// runs out.
func (u *UI) Run() error {
	for {
		name, ok := u.menu()
		if !ok {
			return nil
		}

		g, err := games.New(name)
		if err != nil {
			return err
		}
		u.log.Info().Str("game", name).Msg("game selected")

		if u.play(g) == _actionQuit {
			return nil
		}
	}
}

// Play runs a single named game directly, skipping the menu
func (u *UI) Play(name string) error {
	g, err := games.New(name)
	if err != nil {
		return err
	}
	u.log.Info().Str("game", name).Msg("game selected")
	u.play(g)
	return nil
}

func (u *UI) menu() (string, bool) {
	names := games.Names()

	u.output.ClearScreen()
	u.println(u.bold("What shall we play?"))
	u.println("")
	for i, name := range names {
		g, err := games.New(name)
		if err != nil {
			continue
		}
		u.println(fmt.Sprintf("%d. %s", i+1, u.bold(g.Name())))
		u.println(g.Thumbnail())
		u.println("")
	}

	for {
		line, ok := u.readLine("pick a game, or quit > ")
		if !ok {
			return "", false
		}
		line = strings.ToLower(line)

		switch line {
		case "":
			continue
		case "q", "quit":
			return "", false
		}

		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(names) {
			return names[n-1], true
		}
		for _, name := range names {
			if line == name {
				return name, true
			}
		}
		u.println(u.red("No such game"))
	}
}

func (u *UI) play(g games.Game) action {
	if u.debug {
		if observable, ok := g.(games.Observable); ok {
			observable.OnSearchInfo(u.searchInfo)
		}
	}

	notice := ""
	for {
		u.render(g, notice)
		notice = ""

		line, ok := u.readLine("> ")
		if !ok {
			return _actionQuit
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return _actionQuit
		case "m", "menu":
			return _actionMenu
		case "r", "reset":
			g.Reset()
			continue
		case "help":
			notice = _helpText
			continue
		case "moves":
			notice = "Legal moves: " + strings.Join(g.LegalMoves(), " ")
			continue
		case "history":
			if len(g.MoveHistory()) == 0 {
				notice = "No moves yet"
			} else {
				notice = strings.Join(formatHistory(g.MoveHistory()), "\n")
			}
			continue
		}

		if !g.IsValidMove(line) {
			notice = u.red("Invalid move")
			continue
		}
		g.PlayMove(line)

		if g.WinState() == games.InProgress {
			u.println(u.blue("Computer is thinking..."))
			reply := g.ComputerMove()
			if u.debug {
				fmt.Fprintf(u.output, "bestmove %s\n", reply)
			}
			notice = "Computer played " + u.bold(reply)
		}

		verdict := ""
		switch g.WinState() {
		case games.InProgress:
			continue
		case games.Draw:
			verdict = "Draw!"
		case games.Decisive:
			// The last mover won, either the human just finished the
			// game or the computer's reply did
			if len(g.MoveHistory())%2 == 1 {
				verdict = "You win!"
			} else {
				verdict = "You lost!"
			}
		}
		u.log.Info().
			Str("game", g.Name()).
			Str("verdict", verdict).
			Int("moves", len(g.MoveHistory())).
			Msg("game over")

		switch u.finale(g, verdict) {
		case _actionRetry:
			g.Reset()
			notice = ""
		case _actionMenu:
			return _actionMenu
		default:
			return _actionQuit
		}
	}
}

func (u *UI) finale(g games.Game, verdict string) action {
	u.render(g, u.bold(verdict))

	for {
		line, ok := u.readLine("r - rematch, m - menu, q - quit > ")
		if !ok {
			return _actionQuit
		}
		switch strings.ToLower(line) {
		case "r", "rematch":
			return _actionRetry
		case "m", "menu":
			return _actionMenu
		case "q", "quit":
			return _actionQuit
		}
	}
}

func (u *UI) render(g games.Game, notice string) {
	u.output.ClearScreen()
	u.println(u.bold(g.Name()))
	u.println("")
	u.println(g.Display())

	if history := g.MoveHistory(); len(history) > 0 {
		u.println("")
		for _, line := range formatHistory(history) {
			u.println(line)
		}
	}
	if notice != "" {
		u.println("")
		u.println(notice)
	}
}

// One full move per line, the way game notation is usually written
func formatHistory(moves []string) []string {
	lines := make([]string, 0, (len(moves)+1)/2)
	for i := 0; i < len(moves); i += 2 {
		line := fmt.Sprintf("%d. %s", i/2+1, moves[i])
		if i+1 < len(moves) {
			line += " " + moves[i+1]
		}
		lines = append(lines, line)
	}
	return lines
}

func (u *UI) searchInfo(info games.SearchInfo) {
	fmt.Fprintf(u.output, "info depth %d eval %.2f nodes %d time %dms pv %s\n",
		info.Depth, info.Value, info.Nodes, info.TimeMs, info.Move)
}

func (u *UI) readLine(prompt string) (string, bool) {
	fmt.Fprint(u.output, prompt)
	if !u.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.scanner.Text()), true
}

func (u *UI) println(text string) {
	fmt.Fprintln(u.output, text)
}

func (u *UI) bold(text string) string {
	return u.output.String(text).Bold().String()
}

func (u *UI) red(text string) string {
	return u.output.String(text).Foreground(u.output.Color("1")).String()
}

func (u *UI) blue(text string) string {
	return u.output.String(text).Foreground(u.output.Color("4")).String()
}
