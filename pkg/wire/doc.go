// Package wire defines the IPP binary attribute encoding (RFC 8010).
//
// An IPP message is a fixed 8-byte header followed by a sequence of
// tag-length-value records:
//
//	Header:    version:u16 | opOrStatus:u16 | requestId:u32
//	Delimiter: tag:u8                          (high nibble 0)
//	Value:     tag:u8 | nameLen:u16 | name | valueLen:u16 | value
//
// All integers are big-endian. A delimiter tag opens a new attribute
// group; the end-of-attributes tag (0x03) terminates the attribute
// section, after which opaque payload data may follow.
//
// # Tag Classes
//
// The high nibble of a value tag selects its class: out-of-band (0x1x),
// integer (0x2x), octet string (0x3x), or character string (0x4x).
// Classification is total over all 256 byte values so that a scan can
// always make structural progress, even on reserved tags.
//
// # Tolerant Decoding
//
// Value decoding never fails hard on malformed input. Fixed-size kinds
// with a wrong declared length, unknown enum values, and reserved tags
// all degrade to a descriptive fallback rendering while the scan stays
// aligned on the declared lengths.
package wire
