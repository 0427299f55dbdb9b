package discovery

import (
	"context"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// BrowserConfig configures a Browser.
type BrowserConfig struct {
	// Interface restricts browsing to a single network interface by
	// name. Empty means all interfaces.
	Interface string

	// IncludeSecure also browses the IPPS service type.
	IncludeSecure bool
}

// Browser finds IPP printers via mDNS.
type Browser struct {
	config BrowserConfig

	mu      sync.Mutex
	stopped bool
	cancel  context.CancelFunc
}

// NewBrowser creates a new mDNS printer browser.
func NewBrowser(config BrowserConfig) (*Browser, error) {
	return &Browser{config: config}, nil
}

// Browse searches for printers until the context is cancelled.
// Printers are aggregated by instance name - addresses from multiple
// interfaces are combined into a single entry. Removals are handled
// when interfaces disappear.
func (b *Browser) Browse(ctx context.Context) (<-chan *Printer, error) {
	ctx, cancel := context.WithCancel(ctx)
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		cancel()
		closed := make(chan *Printer)
		close(closed)
		return closed, nil
	}
	b.cancel = cancel
	b.mu.Unlock()

	out := make(chan *Printer)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	opts := b.browserOptions()

	// Process entries with aggregation
	go func() {
		defer close(out)

		// Track printers by instance name, aggregating addresses
		printers := make(map[string]*Printer)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				p := entryToPrinter(entry)

				existing, found := printers[key(p)]
				if found {
					// Merge addresses into existing entry
					existing.Addresses = mergeAddresses(existing.Addresses, p.Addresses)
				} else {
					// New printer - store and emit
					printers[key(p)] = p
					select {
					case out <- p:
					case <-ctx.Done():
						return
					}
				}

			case entry, ok := <-removed:
				if !ok {
					continue
				}
				if existing, found := printers[entry.Instance]; found {
					existing.Addresses = removeAddresses(existing.Addresses, entry)
					// If no addresses remain, drop the printer
					if len(existing.Addresses) == 0 {
						delete(printers, entry.Instance)
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Start browsing in background
	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeIPP, Domain, entries, removed, opts...)
	}()
	if b.config.IncludeSecure {
		go func() {
			_ = zeroconf.Browse(ctx, ServiceTypeIPPS, Domain, entries, removed, opts...)
		}()
	}

	return out, nil
}

// FindByName searches for a printer with the given instance name.
func (b *Browser) FindByName(ctx context.Context, name string) (*Printer, error) {
	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}

	for {
		select {
		case p, ok := <-results:
			if !ok {
				return nil, ErrNotFound
			}
			if p.InstanceName == name {
				return p, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Stop stops all active browsing operations.
func (b *Browser) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	if b.cancel != nil {
		b.cancel()
	}
}

// browserOptions returns zeroconf client options based on config.
func (b *Browser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption

	if b.config.Interface != "" {
		iface, err := net.InterfaceByName(b.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}

	return opts
}

func key(p *Printer) string {
	return p.InstanceName
}

// entryToPrinter converts a zeroconf entry to a Printer.
func entryToPrinter(entry *zeroconf.ServiceEntry) *Printer {
	txt := StringsToTXTRecords(entry.Text)

	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	return &Printer{
		InstanceName: entry.Instance,
		Host:         entry.HostName,
		Port:         uint16(entry.Port),
		Addresses:    addrs,
		Secure:       entry.Service == ServiceTypeIPPS,
		Info:         DecodePrinterTXT(txt),
	}
}

// mergeAddresses adds new addresses to existing list, avoiding duplicates.
func mergeAddresses(existing, more []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}

	for _, addr := range more {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses removes addresses from a zeroconf entry from the list.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	toRemove := make(map[string]bool)
	for _, ip := range entry.AddrIPv4 {
		toRemove[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		toRemove[ip.String()] = true
	}

	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}
