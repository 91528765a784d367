// Package input loads a Kalah game description: a header line with the
// number of houses and seeds per house, then one move per non-blank line.
package input

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrOpen        = errors.New("could not open file")
	ErrEmpty       = errors.New("invalid input file")
	ErrHeaderArity = errors.New("expected two values in header line")
	ErrHeaderValue = errors.New("invalid value in header line")
	ErrBodyArity   = errors.New("expected one value in body line")
	ErrBodyValue   = errors.New("invalid value in body line")
)

// Game is a validated game description.
type Game struct {
	Houses int
	Seeds  int
	Moves  []int
}

// Error reports why an input was rejected. Error() is the reason alone so it
// can be shown to users as is; the underlying cause stays reachable through
// errors.Is and errors.As.
type Error struct {
	Reason error
	Line   int // 1-based, 0 when not tied to a line
	Cause  error
}

func (e *Error) Error() string {
	return e.Reason.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Cause}
}

func reject(reason error, line int, cause error) error {
	return errors.WithStack(&Error{Reason: reason, Line: line, Cause: cause})
}

// Load reads the game description at path.
func Load(path string) (Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return Game{}, reject(ErrOpen, 0, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a game description from r.
func Parse(r io.Reader) (Game, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Game{}, reject(ErrOpen, 1, errors.Wrap(err, "reading header"))
		}
		return Game{}, reject(ErrEmpty, 1, nil)
	}
	houses, seeds, err := parseHeader(scanner.Text())
	if err != nil {
		return Game{}, err
	}

	moves := []int{}
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		move, err := strconv.Atoi(text)
		if err != nil {
			return Game{}, reject(ErrBodyArity, line, err)
		}
		moves = append(moves, move)
	}
	if err := scanner.Err(); err != nil {
		return Game{}, reject(ErrOpen, line+1, errors.Wrap(err, "reading moves"))
	}

	if len(moves) == 0 {
		return Game{}, reject(ErrBodyArity, 0, nil)
	}
	for i, move := range moves {
		if move < 1 || move > houses {
			return Game{}, reject(ErrBodyValue, 0, errors.Errorf("move %d is %d, want 1..%d", i+1, move, houses))
		}
	}

	return Game{Houses: houses, Seeds: seeds, Moves: moves}, nil
}

func parseHeader(text string) (houses, seeds int, err error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, reject(ErrHeaderArity, 1, errors.Errorf("got %d values", len(fields)))
	}
	values := [2]int{}
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, reject(ErrHeaderValue, 1, err)
		}
		if v <= 0 {
			return 0, 0, reject(ErrHeaderValue, 1, errors.Errorf("%q is not positive", field))
		}
		values[i] = v
	}
	return values[0], values[1], nil
}
