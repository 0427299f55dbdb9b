// Package commands implements the ipptrace CLI commands.
package commands

import (
	"fmt"

	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// ParseDirectionFlag parses a -direction flag value.
func ParseDirectionFlag(s string) (wire.Direction, error) {
	switch s {
	case "request", "req":
		return wire.DirectionRequest, nil
	case "response", "resp":
		return wire.DirectionResponse, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (want request or response)", s)
	}
}
