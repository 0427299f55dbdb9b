package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ipptrace/ipptrace-go/pkg/discovery"
)

// RunDiscover browses the local network for IPP printers for the given
// duration and writes what it finds to w.
func RunDiscover(timeout time.Duration, secure bool, iface string, w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	browser, err := discovery.NewBrowser(discovery.BrowserConfig{
		Interface:     iface,
		IncludeSecure: secure,
	})
	if err != nil {
		return err
	}
	defer browser.Stop()

	results, err := browser.Browse(ctx)
	if err != nil {
		return err
	}

	slog.Debug("browsing for printers", "timeout", timeout, "interface", iface)

	found := 0
	for {
		select {
		case p, ok := <-results:
			if !ok {
				fmt.Fprintf(w, "\n%d printer(s) found\n", found)
				return nil
			}
			found++
			printPrinter(w, p)
		case <-ctx.Done():
			fmt.Fprintf(w, "\n%d printer(s) found\n", found)
			return nil
		}
	}
}

func printPrinter(w io.Writer, p *discovery.Printer) {
	fmt.Fprintf(w, "%s\n", p.InstanceName)
	fmt.Fprintf(w, "  uri: %s\n", p.URI())
	if len(p.Addresses) > 0 {
		fmt.Fprintf(w, "  addresses: %s\n", strings.Join(p.Addresses, ", "))
	}
	if p.Info.MakeModel != "" {
		fmt.Fprintf(w, "  model: %s\n", p.Info.MakeModel)
	}
	if p.Info.Location != "" {
		fmt.Fprintf(w, "  location: %s\n", p.Info.Location)
	}
	if len(p.Info.Formats) > 0 {
		fmt.Fprintf(w, "  formats: %s\n", strings.Join(p.Info.Formats, ", "))
	}

	var caps []string
	if p.Info.Color {
		caps = append(caps, "color")
	}
	if p.Info.Duplex {
		caps = append(caps, "duplex")
	}
	if p.Info.TLS {
		caps = append(caps, "tls")
	}
	if len(caps) > 0 {
		fmt.Fprintf(w, "  capabilities: %s\n", strings.Join(caps, ", "))
	}
}
