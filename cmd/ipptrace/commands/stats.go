package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// connStats accumulates statistics for one connection.
type connStats struct {
	id         string
	requests   int
	responses  int
	completed  int
	unmatched  int
	truncated  int
	operations map[wire.Operation]int

	pending map[uint32]time.Time
	total   time.Duration
	min     time.Duration
	max     time.Duration
}

// RunStats reads a capture file and writes per-connection statistics
// to w: message counts, matched transactions, and response times.
func RunStats(path string, w io.Writer) error {
	records, err := readAll(path)
	if err != nil {
		return err
	}

	stats := make(map[string]*connStats)
	var order []string

	for _, rec := range records {
		cs, ok := stats[rec.ConnectionID]
		if !ok {
			cs = &connStats{
				id:         rec.ConnectionID,
				operations: make(map[wire.Operation]int),
				pending:    make(map[uint32]time.Time),
			}
			stats[rec.ConnectionID] = cs
			order = append(order, rec.ConnectionID)
		}

		header, err := wire.DecodeHeader(rec.Data)
		if err != nil {
			cs.truncated++
			continue
		}

		if rec.Direction == wire.DirectionRequest {
			cs.requests++
			cs.operations[header.Operation()]++
			cs.pending[header.RequestID] = rec.Timestamp
			continue
		}

		cs.responses++
		reqTime, ok := cs.pending[header.RequestID]
		if !ok {
			cs.unmatched++
			continue
		}
		delete(cs.pending, header.RequestID)
		cs.completed++

		elapsed := rec.Timestamp.Sub(reqTime)
		cs.total += elapsed
		if cs.min == 0 || elapsed < cs.min {
			cs.min = elapsed
		}
		if elapsed > cs.max {
			cs.max = elapsed
		}
	}

	fmt.Fprintf(w, "Capture: %s\n", path)
	fmt.Fprintf(w, "Records: %d\n", len(records))
	fmt.Fprintf(w, "Connections: %d\n\n", len(order))

	for _, id := range order {
		cs := stats[id]
		fmt.Fprintf(w, "Connection %s\n", shortenConnID(id))
		fmt.Fprintf(w, "  Requests:  %d\n", cs.requests)
		fmt.Fprintf(w, "  Responses: %d (%d unmatched)\n", cs.responses, cs.unmatched)
		fmt.Fprintf(w, "  Completed: %d\n", cs.completed)
		if cs.truncated > 0 {
			fmt.Fprintf(w, "  Undecodable: %d\n", cs.truncated)
		}
		if cs.completed > 0 {
			avg := cs.total / time.Duration(cs.completed)
			fmt.Fprintf(w, "  Response time: min %s / avg %s / max %s\n", cs.min, avg, cs.max)
		}

		for _, oc := range sortedOperations(cs.operations) {
			fmt.Fprintf(w, "  %-30s %d\n", oc.op, oc.count)
		}
		fmt.Fprintln(w)
	}
	return nil
}

type opCount struct {
	op    wire.Operation
	count int
}

// sortedOperations orders operations by descending count, then code.
func sortedOperations(ops map[wire.Operation]int) []opCount {
	out := make([]opCount, 0, len(ops))
	for op, n := range ops {
		out = append(out, opCount{op, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].op < out[j].op
	})
	return out
}
