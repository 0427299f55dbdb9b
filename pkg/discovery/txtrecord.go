package discovery

import (
	"fmt"
	"strings"
)

// TXT record keys from the Bonjour printing specification.
const (
	TXTKeyQueuePath = "rp"
	TXTKeyMakeModel = "ty"
	TXTKeyLocation  = "note"
	TXTKeyFormats   = "pdl"
	TXTKeyAdminURL  = "adminurl"
	TXTKeyUUID      = "UUID"
	TXTKeyTLS       = "TLS"
	TXTKeyColor     = "Color"
	TXTKeyDuplex    = "Duplex"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// DecodePrinterTXT parses TXT records advertised by an IPP printer.
// Printers in the field are sloppy about these records, so decoding is
// lenient: missing keys leave their fields empty and never fail.
func DecodePrinterTXT(txt TXTRecordMap) PrinterInfo {
	info := PrinterInfo{
		QueuePath: txt[TXTKeyQueuePath],
		MakeModel: txt[TXTKeyMakeModel],
		Location:  txt[TXTKeyLocation],
		AdminURL:  txt[TXTKeyAdminURL],
		UUID:      txt[TXTKeyUUID],
	}

	if pdl := txt[TXTKeyFormats]; pdl != "" {
		for _, f := range strings.Split(pdl, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				info.Formats = append(info.Formats, f)
			}
		}
	}

	// TLS advertises a version string, not a boolean flag.
	info.TLS = txt[TXTKeyTLS] != ""
	info.Color = parseFlag(txt[TXTKeyColor])
	info.Duplex = parseFlag(txt[TXTKeyDuplex])

	return info
}

// EncodePrinterTXT creates TXT records describing a printer. Used for
// loopback tests and capture replay setups.
func EncodePrinterTXT(info PrinterInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	if info.QueuePath != "" {
		txt[TXTKeyQueuePath] = info.QueuePath
	}
	if info.MakeModel != "" {
		txt[TXTKeyMakeModel] = info.MakeModel
	}
	if info.Location != "" {
		txt[TXTKeyLocation] = info.Location
	}
	if len(info.Formats) > 0 {
		txt[TXTKeyFormats] = strings.Join(info.Formats, ",")
	}
	if info.AdminURL != "" {
		txt[TXTKeyAdminURL] = info.AdminURL
	}
	if info.UUID != "" {
		txt[TXTKeyUUID] = info.UUID
	}
	if info.TLS {
		txt[TXTKeyTLS] = "1.2"
	}
	txt[TXTKeyColor] = encodeFlag(info.Color)
	txt[TXTKeyDuplex] = encodeFlag(info.Duplex)

	return txt
}

// parseFlag parses the "T"/"F" boolean convention of Bonjour printing
// TXT records.
func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "t", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func encodeFlag(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value"
// strings. This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a
// TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}
