package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"kalah/engine"

	"github.com/hashicorp/go-multierror"
)

var header = []string{"step", "player", "house", "landing", "store0", "store1", "hash"}

// Writer records every applied move as a CSV row.
type Writer struct {
	f      *os.File
	writer *csv.Writer
}

func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}

	w := &Writer{f: f, writer: csv.NewWriter(f)}
	if err := w.writer.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write trace header: %w", err)
	}
	return w, nil
}

// Observe matches engine.Observer.
func (w *Writer) Observe(u engine.Update) error {
	store0, store1 := u.State.Stores()
	row := []string{
		strconv.Itoa(u.Step),
		strconv.Itoa(int(u.Player)),
		strconv.Itoa(u.House),
		u.Landing.String(),
		strconv.Itoa(store0),
		strconv.Itoa(store1),
		strconv.FormatUint(uint64(u.State.Hash()), 16),
	}
	if err := w.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write trace row: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	var errs error
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to flush trace: %w", err))
	}
	if err := w.f.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to close trace: %w", err))
	}
	return errs
}
