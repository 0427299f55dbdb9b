// Command ipptrace is a tool for dissecting and analyzing captured IPP
// traffic.
//
// Capture files are streams of CBOR-encoded frame records produced by
// the capture package, one record per reassembled IPP message body.
//
// Usage:
//
//	ipptrace <command> [flags] [<file.ippcap>]
//
// Commands:
//
//	view      Dissect a capture file and print messages
//	stats     Show per-connection statistics about a capture file
//	filter    Filter a capture file and write to a new file
//	discover  Browse the local network for IPP printers
//	shell     Inspect a capture file interactively
//
// Examples:
//
//	# Dissect all messages
//	ipptrace view session.ippcap
//
//	# Only responses of one connection
//	ipptrace view -conn 9dfb2c1a -direction response session.ippcap
//
//	# Transaction statistics
//	ipptrace stats session.ippcap
//
//	# Extract one connection into a new file
//	ipptrace filter -conn 9dfb2c1a -o conn.ippcap session.ippcap
//
//	# Find printers on the local network
//	ipptrace discover -timeout 5s
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ipptrace/ipptrace-go/cmd/ipptrace/commands"
)

const usage = `ipptrace - IPP Traffic Analyzer

Usage:
  ipptrace <command> [flags] [<file.ippcap>]

Commands:
  view      Dissect a capture file and print messages
  stats     Show per-connection statistics about a capture file
  filter    Filter a capture file and write to a new file
  discover  Browse the local network for IPP printers
  shell     Inspect a capture file interactively

Use "ipptrace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "filter":
		runFilter(args)
	case "discover":
		runDiscover(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ipptrace view - Dissect a capture file and print messages

Usage:
  ipptrace view [flags] <file.ippcap>

Flags:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Configuration file path")
	conn := fs.String("conn", "", "Filter by connection ID prefix")
	direction := fs.String("direction", "", "Filter by direction (request, response)")
	requestID := fs.Uint("request-id", 0, "Filter by request ID")
	offsets := fs.Bool("offsets", false, "Show byte offsets on group lines")
	noTags := fs.Bool("no-tags", false, "Hide value tag names")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)

	opts := commands.ViewOptions{
		ConnectionID: *conn,
		ShowOffsets:  *offsets || cfg.ShowOffsets,
		ShowTags:     !*noTags,
	}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Direction = &d
	}
	if *requestID != 0 {
		id := uint32(*requestID)
		opts.RequestID = &id
	}

	if err := commands.RunView(fs.Arg(0), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ipptrace stats - Show per-connection statistics about a capture file

Usage:
  ipptrace stats <file.ippcap>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ipptrace filter - Filter a capture file and write to a new file

Usage:
  ipptrace filter [flags] <file.ippcap>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	conn := fs.String("conn", "", "Filter by exact connection ID")
	direction := fs.String("direction", "", "Filter by direction (request, response)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}
	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file required (-o)")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{ConnectionID: *conn}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Direction = &d
	}

	n, err := commands.RunFilter(fs.Arg(0), *output, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d records to %s\n", n, *output)
}

func runDiscover(args []string) {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ipptrace discover - Browse the local network for IPP printers

Usage:
  ipptrace discover [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Configuration file path")
	timeout := fs.Duration("timeout", 5*time.Second, "How long to browse")
	secure := fs.Bool("secure", true, "Also browse for IPPS printers")
	iface := fs.String("interface", "", "Network interface to browse on")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	if *iface == "" {
		*iface = cfg.Interface
	}

	if err := commands.RunDiscover(*timeout, *secure, *iface, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runShell(args []string) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ipptrace shell - Inspect a capture file interactively

Usage:
  ipptrace shell [flags] <file.ippcap>

Flags:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Configuration file path")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}

	setupLogging(*logLevel)
	cfg := loadConfig(*configPath)

	sh, err := newShell(fs.Arg(0), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := sh.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging configures the process-wide slog default.
func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
