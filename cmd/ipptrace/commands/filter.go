package commands

import (
	"io"

	"github.com/ipptrace/ipptrace-go/pkg/capture"
	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// FilterOptions specifies criteria for the filter command.
type FilterOptions struct {
	// ConnectionID filters by exact connection ID.
	ConnectionID string

	// Direction filters by message direction.
	Direction *wire.Direction
}

// RunFilter copies matching records from one capture file to another.
// Returns the number of records written.
func RunFilter(path, output string, opts FilterOptions) (int, error) {
	r, err := capture.NewFilteredReader(path, capture.Filter{
		ConnectionID: opts.ConnectionID,
		Direction:    opts.Direction,
	})
	if err != nil {
		return 0, err
	}
	defer r.Close()

	w, err := capture.NewFileWriter(output)
	if err != nil {
		return 0, err
	}
	defer w.Close()

	n := 0
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return n, w.Close()
		}
		if err != nil {
			return n, err
		}
		if err := w.Write(rec); err != nil {
			return n, err
		}
		n++
	}
}
