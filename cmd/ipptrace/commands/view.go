package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ipptrace/ipptrace-go/pkg/capture"
	"github.com/ipptrace/ipptrace-go/pkg/conversation"
	"github.com/ipptrace/ipptrace-go/pkg/dissect"
	"github.com/ipptrace/ipptrace-go/pkg/inspect"
	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// ViewOptions specifies filtering and rendering for the view command.
type ViewOptions struct {
	// ConnectionID filters by connection ID prefix.
	ConnectionID string

	// Direction filters by message direction.
	Direction *wire.Direction

	// RequestID filters by request ID.
	RequestID *uint32

	ShowOffsets bool
	ShowTags    bool
}

func (o *ViewOptions) matches(rec capture.Record, requestID uint32) bool {
	if o.ConnectionID != "" && !strings.HasPrefix(rec.ConnectionID, o.ConnectionID) {
		return false
	}
	if o.Direction != nil && rec.Direction != *o.Direction {
		return false
	}
	if o.RequestID != nil && requestID != *o.RequestID {
		return false
	}
	return true
}

// RunView dissects a capture file and writes each message to w.
//
// Records are processed in two passes: the first walks the file in
// capture order to build per-connection correlation state, the second
// revisits every frame read-only so that request lines can point
// forward at responses seen later in the file.
func RunView(path string, opts ViewOptions, w io.Writer) error {
	records, err := readAll(path)
	if err != nil {
		return err
	}

	d := dissect.NewDissector(wire.DefaultEnumRegistry(), nil)
	convs := make(map[string]*conversation.State)

	for _, rec := range records {
		if _, _, err := d.Dissect(toInput(rec, convs, true)); err != nil {
			return fmt.Errorf("frame %d: %w", rec.Frame, err)
		}
	}

	f := inspect.NewFormatter()
	f.ShowOffsets = opts.ShowOffsets
	f.ShowTags = opts.ShowTags

	for _, rec := range records {
		msg, trans, err := d.Dissect(toInput(rec, convs, false))
		if err != nil {
			return fmt.Errorf("frame %d: %w", rec.Frame, err)
		}
		if !opts.matches(rec, msg.Header.RequestID) {
			continue
		}

		ts := rec.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
		fmt.Fprintf(w, "%s [conn:%s] frame %d\n", ts, shortenConnID(rec.ConnectionID), rec.Frame)
		fmt.Fprint(w, f.FormatMessage(msg, trans, rec.Timestamp))
		fmt.Fprintln(w)
	}
	return nil
}

// readAll reads every record of a capture file into memory.
func readAll(path string) ([]capture.Record, error) {
	r, err := capture.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []capture.Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// toInput builds the dissector input for a record, creating the
// connection's conversation state on first sight.
func toInput(rec capture.Record, convs map[string]*conversation.State, firstVisit bool) dissect.Input {
	conv, ok := convs[rec.ConnectionID]
	if !ok {
		conv = conversation.NewState()
		convs[rec.ConnectionID] = conv
	}
	return dissect.Input{
		Data:         rec.Data,
		Direction:    rec.Direction,
		Conversation: conv,
		Frame:        rec.Frame,
		Timestamp:    rec.Timestamp,
		FirstVisit:   firstVisit,
	}
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
