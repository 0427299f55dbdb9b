// Package dissect turns reassembled IPP message bodies into a
// structured message model and correlates them across a connection.
//
// The Parser walks the attribute region after the fixed header: group
// delimiters open attribute groups, value records build named
// attributes, and a record with an empty name extends the previous
// attribute with an additional value. Parsing is tolerant by design.
// Malformed fixed-size values degrade to descriptive renderings, and a
// buffer that ends mid-record stops the walk with the Truncated flag
// set instead of failing.
//
// The Dissector wraps the Parser with per-connection request/response
// correlation and hands any trailing document payload to a Sink.
package dissect
