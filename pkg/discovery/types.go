package discovery

import (
	"errors"
	"fmt"
)

// Service types and domain for DNS-SD printer discovery.
const (
	// ServiceTypeIPP is the service type for plain IPP printers.
	ServiceTypeIPP = "_ipp._tcp"

	// ServiceTypeIPPS is the service type for IPP-over-TLS printers.
	ServiceTypeIPPS = "_ipps._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// DefaultPort is the registered IPP port.
	DefaultPort = 631
)

// ErrNotFound indicates no matching printer was discovered.
var ErrNotFound = errors.New("printer not found")

// Printer is one discovered IPP printer.
type Printer struct {
	// InstanceName is the mDNS service instance name, usually the
	// printer's human-readable name.
	InstanceName string

	// Host is the printer's mDNS hostname.
	Host string

	// Port is the IPP port.
	Port uint16

	// Addresses holds the printer's IP addresses, IPv4 and IPv6,
	// aggregated across interfaces.
	Addresses []string

	// Secure is true when the printer was found under the IPPS service
	// type.
	Secure bool

	Info PrinterInfo
}

// PrinterInfo holds the Bonjour printing TXT record fields.
type PrinterInfo struct {
	// QueuePath is the resource path of the print queue ("rp" key),
	// e.g. "ipp/print".
	QueuePath string

	// MakeModel is the printer make and model ("ty" key).
	MakeModel string

	// Location is the configured location note ("note" key).
	Location string

	// Formats lists the supported document formats ("pdl" key).
	Formats []string

	// AdminURL is the printer's configuration page ("adminurl" key).
	AdminURL string

	// UUID is the printer's UUID ("UUID" key).
	UUID string

	// TLS is true when the printer advertises TLS support.
	TLS bool

	// Color is true when the printer advertises color printing.
	Color bool

	// Duplex is true when the printer advertises two-sided printing.
	Duplex bool
}

// URI returns the IPP URI for the printer's queue, e.g.
// "ipp://printer.local.:631/ipp/print".
func (p *Printer) URI() string {
	scheme := "ipp"
	if p.Secure {
		scheme = "ipps"
	}
	path := p.Info.QueuePath
	if path == "" {
		path = "ipp/print"
	}
	return fmt.Sprintf("%s://%s:%d/%s", scheme, p.Host, p.Port, path)
}
