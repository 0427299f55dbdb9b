// Package capture persists raw IPP message frames to CBOR-encoded
// capture files and reads them back for offline dissection.
//
// A capture file is a stream of self-delimiting CBOR records, one per
// reassembled message body, tagged with the connection it belongs to,
// its direction, and its capture time. Records use integer CBOR keys
// for compactness. Files are append-only, so a capture interrupted
// mid-write loses at most its final record.
package capture
