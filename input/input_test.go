package input

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("reads header and moves", func(t *testing.T) {
		g, err := Parse(strings.NewReader("6 4\n3\n1\n6\n"))

		require.NoError(t, err)
		require.Equal(t, Game{Houses: 6, Seeds: 4, Moves: []int{3, 1, 6}}, g)
	})

	t.Run("skips blank lines and surrounding space", func(t *testing.T) {
		g, err := Parse(strings.NewReader("  3   2 \n\n 1 \n   \n2\n"))

		require.NoError(t, err)
		require.Equal(t, Game{Houses: 3, Seeds: 2, Moves: []int{1, 2}}, g)
	})

	t.Run("accepts a missing trailing newline", func(t *testing.T) {
		g, err := Parse(strings.NewReader("3 2\n1"))

		require.NoError(t, err)
		require.Equal(t, []int{1}, g.Moves)
	})

	for _, tc := range []struct {
		name   string
		input  string
		reason error
	}{
		{"empty file", "", ErrEmpty},
		{"single header value", "6\n1\n", ErrHeaderArity},
		{"three header values", "6 4 2\n1\n", ErrHeaderArity},
		{"blank header", "\n1\n", ErrHeaderArity},
		{"non-numeric header", "six 4\n1\n", ErrHeaderValue},
		{"zero houses", "0 4\n1\n", ErrHeaderValue},
		{"negative seeds", "6 -4\n1\n", ErrHeaderValue},
		{"no moves", "6 4\n", ErrBodyArity},
		{"only blank moves", "6 4\n\n  \n", ErrBodyArity},
		{"two values on a move line", "6 4\n1 2\n", ErrBodyArity},
		{"non-numeric move", "6 4\nthree\n", ErrBodyArity},
		{"move too large", "6 4\n7\n", ErrBodyValue},
		{"move zero", "6 4\n1\n0\n", ErrBodyValue},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))

			require.ErrorIs(t, err, tc.reason)
			require.Equal(t, tc.reason.Error(), err.Error(), "message should be the reason alone")
		})
	}

	t.Run("malformed move beats range checks", func(t *testing.T) {
		_, err := Parse(strings.NewReader("6 4\n9\nx\n"))

		require.ErrorIs(t, err, ErrBodyArity)
	})

	t.Run("records the offending line and cause", func(t *testing.T) {
		_, err := Parse(strings.NewReader("6 4\n1\n\nx\n"))

		var inputErr *Error
		require.True(t, errors.As(err, &inputErr))
		require.Equal(t, 4, inputErr.Line)
		var numErr *strconv.NumError
		require.True(t, errors.As(err, &numErr))
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))

		require.ErrorIs(t, err, ErrOpen)
		require.ErrorIs(t, err, os.ErrNotExist)
		require.Equal(t, "could not open file", err.Error())
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.txt")
		require.NoError(t, os.WriteFile(path, []byte("3 2\n1\n2\n"), 0o644))

		g, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, Game{Houses: 3, Seeds: 2, Moves: []int{1, 2}}, g)
	})
}
