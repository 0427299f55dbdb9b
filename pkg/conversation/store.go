package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transaction is one request/response exchange on a connection. The
// frame numbers refer to the capture frames that carried the request
// and the response; ResponseFrame is zero until a response is seen.
type Transaction struct {
	RequestFrame  uint32
	ResponseFrame uint32
	RequestTime   time.Time
}

// Complete returns true once both sides of the exchange have been seen.
func (t *Transaction) Complete() bool {
	return t.RequestFrame != 0 && t.ResponseFrame != 0
}

// Elapsed returns the time between the request and the given response
// timestamp.
func (t *Transaction) Elapsed(responseTime time.Time) time.Duration {
	return responseTime.Sub(t.RequestTime)
}

// State tracks the transactions of one connection. Safe for concurrent
// use.
type State struct {
	id string

	mu   sync.Mutex
	pdus map[uint32]*Transaction
}

// NewState creates an empty per-connection state with a fresh unique ID.
func NewState() *State {
	return &State{
		id:   uuid.NewString(),
		pdus: make(map[uint32]*Transaction),
	}
}

// ID returns the connection state's unique ID.
func (s *State) ID() string {
	return s.id
}

// RecordRequest records a request frame under its request ID and
// returns the new transaction. An existing transaction under the same
// ID is replaced.
func (s *State) RecordRequest(requestID, frame uint32, at time.Time) *Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	trans := &Transaction{
		RequestFrame: frame,
		RequestTime:  at,
	}
	s.pdus[requestID] = trans
	return trans
}

// RecordResponse attaches a response frame to the transaction recorded
// under the request ID. Returns nil if no request with that ID has been
// seen; unmatched responses are not an error, captures routinely start
// mid-connection.
func (s *State) RecordResponse(requestID, frame uint32) *Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	trans, ok := s.pdus[requestID]
	if !ok {
		return nil
	}
	trans.ResponseFrame = frame
	return trans
}

// Lookup returns the transaction recorded under the request ID without
// modifying it, or nil. Used when a frame is revisited after the first
// sequential pass.
func (s *State) Lookup(requestID uint32) *Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pdus[requestID]
}

// Len returns the number of tracked transactions.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pdus)
}
