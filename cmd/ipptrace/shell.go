package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/ipptrace/ipptrace-go/pkg/capture"
	"github.com/ipptrace/ipptrace-go/pkg/conversation"
	"github.com/ipptrace/ipptrace-go/pkg/dissect"
	"github.com/ipptrace/ipptrace-go/pkg/inspect"
	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// loadedFrame is one capture record plus its dissection result.
type loadedFrame struct {
	rec   capture.Record
	msg   *dissect.Message
	trans *conversation.Transaction
}

// shell is the interactive capture inspector.
type shell struct {
	path      string
	frames    []loadedFrame
	byFrame   map[uint32]int
	convs     map[string]*conversation.State
	formatter *inspect.Formatter
	rl        *readline.Instance
}

// newShell loads a capture file and sets up the readline loop.
func newShell(path string, cfg Config) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ipptrace> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	f := inspect.NewFormatter()
	f.ShowOffsets = cfg.ShowOffsets

	s := &shell{
		path:      path,
		byFrame:   make(map[uint32]int),
		convs:     make(map[string]*conversation.State),
		formatter: f,
		rl:        rl,
	}
	if err := s.load(); err != nil {
		rl.Close()
		return nil, err
	}
	return s, nil
}

// load dissects the whole capture: one sequential pass to build
// correlation, one revisit pass to attach transactions to frames.
func (s *shell) load() error {
	r, err := capture.NewReader(s.path)
	if err != nil {
		return err
	}
	defer r.Close()

	var records []capture.Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	d := dissect.NewDissector(wire.DefaultEnumRegistry(), nil)

	input := func(rec capture.Record, firstVisit bool) dissect.Input {
		conv, ok := s.convs[rec.ConnectionID]
		if !ok {
			conv = conversation.NewState()
			s.convs[rec.ConnectionID] = conv
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

	for _, rec := range records {
		if _, _, err := d.Dissect(input(rec, true)); err != nil {
			slog.Warn("skipping undecodable frame", "frame", rec.Frame, "err", err)
		}
	}

	for _, rec := range records {
		msg, trans, err := d.Dissect(input(rec, false))
		if err != nil {
			continue
		}
		s.byFrame[rec.Frame] = len(s.frames)
		s.frames = append(s.frames, loadedFrame{rec: rec, msg: msg, trans: trans})
	}
	return nil
}

// run starts the interactive command loop.
func (s *shell) run() error {
	defer s.rl.Close()

	fmt.Fprintf(s.rl.Stdout(), "Loaded %d frames from %s\n", len(s.frames), s.path)
	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "list", "l":
			s.cmdList(args)

		case "show", "s":
			s.cmdShow(args)

		case "tx", "t":
			s.cmdTx(args)

		case "conns", "c":
			s.cmdConns()

		case "quit", "q", "exit":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return nil

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (try help)\n", cmd)
		}
	}
}

func (s *shell) printHelp() {
	fmt.Fprint(s.rl.Stdout(), `Commands:
  list [conn]   List frames, optionally only one connection (ID prefix)
  show <frame>  Show the dissected message of a frame
  tx <frame>    Show the transaction a frame belongs to
  conns         List connections
  help          Show this help
  quit          Exit
`)
}

func (s *shell) cmdList(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	for _, lf := range s.frames {
		if prefix != "" && !strings.HasPrefix(lf.rec.ConnectionID, prefix) {
			continue
		}
		ts := lf.rec.Timestamp.UTC().Format("15:04:05.000")
		fmt.Fprintf(s.rl.Stdout(), "%6d  %s  [conn:%s]  %s\n",
			lf.rec.Frame, ts, shortID(lf.rec.ConnectionID), lf.msg.Summary())
	}
}

func (s *shell) cmdShow(args []string) {
	lf, ok := s.frameArg(args)
	if !ok {
		return
	}
	fmt.Fprint(s.rl.Stdout(), s.formatter.FormatMessage(lf.msg, lf.trans, lf.rec.Timestamp))
}

func (s *shell) cmdTx(args []string) {
	lf, ok := s.frameArg(args)
	if !ok {
		return
	}
	if lf.trans == nil {
		fmt.Fprintln(s.rl.Stdout(), "No transaction (unmatched response?)")
		return
	}

	out := s.rl.Stdout()
	fmt.Fprintf(out, "request-id: %d\n", lf.msg.Header.RequestID)
	fmt.Fprintf(out, "request:  frame %d at %s\n",
		lf.trans.RequestFrame, lf.trans.RequestTime.UTC().Format(time.RFC3339Nano))
	if !lf.trans.Complete() {
		fmt.Fprintln(out, "response: not seen")
		return
	}
	fmt.Fprintf(out, "response: frame %d\n", lf.trans.ResponseFrame)
	if idx, ok := s.byFrame[lf.trans.ResponseFrame]; ok {
		resp := s.frames[idx]
		fmt.Fprintf(out, "elapsed:  %s\n", lf.trans.Elapsed(resp.rec.Timestamp))
	}
}

func (s *shell) cmdConns() {
	seen := make(map[string]int)
	var order []string
	for _, lf := range s.frames {
		if _, ok := seen[lf.rec.ConnectionID]; !ok {
			order = append(order, lf.rec.ConnectionID)
		}
		seen[lf.rec.ConnectionID]++
	}
	for _, id := range order {
		fmt.Fprintf(s.rl.Stdout(), "%s  %d frame(s)\n", id, seen[id])
	}
}

// frameArg resolves a frame-number argument to a loaded frame.
func (s *shell) frameArg(args []string) (loadedFrame, bool) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Frame number required")
		return loadedFrame{}, false
	}
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid frame number: %s\n", args[0])
		return loadedFrame{}, false
	}
	idx, ok := s.byFrame[uint32(n)]
	if !ok {
		fmt.Fprintf(s.rl.Stdout(), "No such frame: %d\n", n)
		return loadedFrame{}, false
	}
	return s.frames[idx], true
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
