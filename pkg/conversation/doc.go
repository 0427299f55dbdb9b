// Package conversation correlates IPP requests with their responses.
//
// A State holds the transactions of a single transport connection,
// keyed by request ID. Request IDs are only unique within a connection,
// so the caller keeps one State per connection and never shares it
// across connections. Recording a request with an ID that is already
// present replaces the earlier transaction; a client reusing an ID has
// abandoned the earlier exchange, so the newest request wins.
package conversation
