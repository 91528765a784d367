package trace

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"kalah/engine"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("writes a row per move", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trace.csv")
		w, err := NewWriter(path)
		require.NoError(t, err)

		_, err = engine.Play(2, 1, []int{2, 1}, engine.WithObserver(w.Observe))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)

		require.Len(t, rows, 3)
		require.Equal(t, header, rows[0])
		require.Equal(t, []string{"1", "0", "2", "store", "1", "0"}, rows[1][:6])
		require.Equal(t, []string{"2", "0", "1", "capture", "3", "0"}, rows[2][:6])
		require.NotEqual(t, rows[1][6], rows[2][6])
	})

	t.Run("fails when the file cannot be created", func(t *testing.T) {
		_, err := NewWriter(filepath.Join(t.TempDir(), "missing", "trace.csv"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
