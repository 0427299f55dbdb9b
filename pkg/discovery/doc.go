// Package discovery finds IPP printers on the local network via
// DNS-SD/mDNS and decodes their Bonjour printing TXT records.
package discovery
