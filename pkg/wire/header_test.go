package wire

import (
	"errors"
	"testing"
)

func TestDecodeHeader(t *testing.T) {
	buf := []byte{0x02, 0x00, 0x00, 0x0b, 0x00, 0x00, 0x00, 0x2a}

	h, err := DecodeHeader(buf)
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v", err)
	}
	if got := h.Version.String(); got != "2.0" {
		t.Errorf("Version = %q, want %q", got, "2.0")
	}
	if h.Version.Major() != 2 || h.Version.Minor() != 0 {
		t.Errorf("Major/Minor = %d/%d, want 2/0", h.Version.Major(), h.Version.Minor())
	}
	if h.Operation() != OpGetPrinterAttributes {
		t.Errorf("Operation = %v, want Get-Printer-Attributes", h.Operation())
	}
	if h.RequestID != 42 {
		t.Errorf("RequestID = %d, want 42", h.RequestID)
	}
}

func TestDecodeHeaderShort(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		_, err := DecodeHeader(make([]byte, n))
		if !errors.Is(err, ErrShortHeader) {
			t.Errorf("DecodeHeader(%d bytes) error = %v, want ErrShortHeader", n, err)
		}
	}
}

func TestHeaderSummary(t *testing.T) {
	tests := []struct {
		name string
		h    Header
		dir  Direction
		want string
	}{
		{
			name: "request with known operation",
			h:    Header{Version: 0x0200, OpOrStatus: 0x0002, RequestID: 1},
			dir:  DirectionRequest,
			want: "IPP Request (Print-Job)",
		},
		{
			name: "request with unknown operation",
			h:    Header{Version: 0x0200, OpOrStatus: 0x7777, RequestID: 1},
			dir:  DirectionRequest,
			want: "IPP Request (0x7777)",
		},
		{
			name: "response with known status",
			h:    Header{Version: 0x0101, OpOrStatus: 0x0000, RequestID: 1},
			dir:  DirectionResponse,
			want: "IPP Response (successful-ok)",
		},
		{
			name: "response with unknown status",
			h:    Header{Version: 0x0101, OpOrStatus: 0x09ff, RequestID: 1},
			dir:  DirectionResponse,
			want: "IPP Response (0x09ff)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Summary(tt.dir); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status  Status
		class   string
		success bool
	}{
		{0x0000, "Successful", true},
		{0x0001, "Successful", true},
		{0x0400, "Client Error", false},
		{0x0503, "Server Error", false},
		{0x0100, "Informational", false},
		{0x0300, "Unknown", false},
	}

	for _, tt := range tests {
		if got := tt.status.ClassString(); got != tt.class {
			t.Errorf("Status(0x%04x).ClassString() = %q, want %q", uint16(tt.status), got, tt.class)
		}
		if got := tt.status.IsSuccess(); got != tt.success {
			t.Errorf("Status(0x%04x).IsSuccess() = %v, want %v", uint16(tt.status), got, tt.success)
		}
	}
}
