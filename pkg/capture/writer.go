package capture

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileWriter appends capture records to a file in CBOR format.
// It is safe for concurrent use from multiple goroutines.
type FileWriter struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
}

// NewFileWriter creates a FileWriter appending to the specified path.
// The file is created with permissions 0644 if it doesn't exist.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileWriter{
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Write appends one record to the file.
func (w *FileWriter) Write(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return os.ErrClosed
	}
	return w.encoder.Encode(rec)
}

// Close closes the capture file. It is safe to call Close multiple
// times; subsequent Write calls return os.ErrClosed.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}
