package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"kalah/engine"
	"kalah/game"
	"kalah/input"
	"kalah/meta"
	"kalah/trace"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run plays the game described by the single positional argument and
// returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	log.Logger = zerolog.Nop()

	flags := flag.NewFlagSet("kalah", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	logLevel := flags.String("log-level", envOr(meta.LOG_LEVEL_ENV, meta.DEFAULT_LOG_LEVEL), "zerolog level for diagnostics on stderr")
	tracePath := flags.String("trace", "", "write a CSV row per applied move to this file")
	if err := flags.Parse(args); err != nil {
		return fail(stderr, err)
	}

	if err := setupLogger(*logLevel, stderr); err != nil {
		return fail(stderr, err)
	}

	switch flags.NArg() {
	case 0:
		return fail(stderr, errors.New("no input file"))
	case 1:
	default:
		return fail(stderr, errors.New("too many arguments"))
	}

	g, err := input.Load(flags.Arg(0))
	if err != nil {
		return fail(stderr, err)
	}
	log.Debug().Int("houses", g.Houses).Int("seeds", g.Seeds).Int("moves", len(g.Moves)).Msg("loaded game")

	result, err := play(g, *tracePath)
	if err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintf(stdout, "%d %d %d\n", winnerNumber(result.Winner), result.Store0, result.Store1)
	return 0
}

func play(g input.Game, tracePath string) (game.Result, error) {
	if tracePath == "" {
		return engine.Play(g.Houses, g.Seeds, g.Moves)
	}

	w, err := trace.NewWriter(tracePath)
	if err != nil {
		return game.Result{}, err
	}
	result, err := engine.Play(g.Houses, g.Seeds, g.Moves, engine.WithObserver(w.Observe))
	if closeErr := w.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return result, err
}

// winnerNumber renders a winner as printed: 1 for south, 2 for north, 0 for a tie.
func winnerNumber(w game.Winner) int {
	switch w {
	case game.SouthWins:
		return 1
	case game.NorthWins:
		return 2
	default:
		return 0
	}
}

func setupLogger(level string, out io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Errorf("invalid log level %q", level)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(lvl).With().Timestamp().Logger()
	return nil
}

func fail(stderr io.Writer, err error) int {
	log.Debug().Err(err).Msgf("%+v", err)
	fmt.Fprintf(stderr, "%s%s\n", meta.ERROR_PREFIX, err)
	return meta.EXIT_FAILURE
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
