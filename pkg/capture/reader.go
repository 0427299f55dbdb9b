package capture

import (
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// Filter specifies criteria for filtering capture records.
// Empty/nil fields match all records for that criterion.
type Filter struct {
	// ConnectionID filters by exact connection ID match.
	ConnectionID string

	// Direction filters by message direction.
	Direction *wire.Direction

	// TimeStart filters records at or after this time.
	TimeStart *time.Time

	// TimeEnd filters records before this time.
	TimeEnd *time.Time
}

// matches returns true if the record matches all filter criteria.
func (f *Filter) matches(rec Record) bool {
	if f.ConnectionID != "" && rec.ConnectionID != f.ConnectionID {
		return false
	}
	if f.Direction != nil && rec.Direction != *f.Direction {
		return false
	}
	if f.TimeStart != nil && rec.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !rec.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader reads capture records from a CBOR-encoded file.
// It provides an iterator interface for streaming large files.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that reads all records from the file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads records matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next record that matches the filter.
// Returns io.EOF when no more records are available.
func (r *Reader) Next() (Record, error) {
	for {
		var rec Record
		if err := r.decoder.Decode(&rec); err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, err
		}

		if r.filter.matches(rec) {
			return rec, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
