package wire

import "testing"

func TestDecodeBoolean(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"false", []byte{0x00}, "false"},
		{"true", []byte{0x01}, "true"},
		{"out of range", []byte{0x7f}, "Unknown (0x7f)"},
		{"wrong length", []byte{0x00, 0x01}, "Invalid boolean (length is 2, should be 1)"},
		{"empty", nil, "Invalid boolean (length is 0, should be 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := d.Decode(TagBoolean, "job-hold-until", tt.data)
			if v.Display != tt.want {
				t.Errorf("Display = %q, want %q", v.Display, tt.want)
			}
		})
	}

	v := d.Decode(TagBoolean, "ipp-attribute-fidelity", []byte{0x01})
	if v.Kind != KindBoolean || !v.Bool {
		t.Errorf("got kind=%v bool=%v, want boolean true", v.Kind, v.Bool)
	}
}

func TestDecodeInteger(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"positive", []byte{0x00, 0x00, 0x00, 0x2a}, "42"},
		{"negative", []byte{0xff, 0xff, 0xff, 0xff}, "-1"},
		{"min", []byte{0x80, 0x00, 0x00, 0x00}, "-2147483648"},
		{"wrong length", []byte{0x00, 0x2a}, "Invalid integer (length is 2, should be 4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := d.Decode(TagInteger, "copies", tt.data)
			if v.Display != tt.want {
				t.Errorf("Display = %q, want %q", v.Display, tt.want)
			}
		})
	}
}

func TestDecodeEnum(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	enc := func(v int32) []byte {
		return []byte{byte(uint32(v) >> 24), byte(uint32(v) >> 16), byte(uint32(v) >> 8), byte(uint32(v))}
	}

	tests := []struct {
		name     string
		attr     string
		value    int32
		want     string
		resolved bool
	}{
		{"job state processing", "job-state", 5, "processing", true},
		{"document state processing", "document-state", 5, "processing", true},
		{"printer state idle", "printer-state", 3, "idle", true},
		{"job state out of range", "job-state", 99, "Unknown Job State", false},
		{"orientation requested", "orientation-requested", 4, "landscape", true},
		{"media feed orientation", "media-feed-orientation", 4, "landscape", true},
		{"finishings staple", "finishings", 4, "staple", true},
		{"print quality high", "print-quality", 5, "high", true},
		{"operations supported", "operations-supported", 0x000b, "Get-Printer-Attributes", true},
		{"transmission status", "transmission-status", 9, "completed", true},
		{"unregistered name", "custom-enum-attr", 5, "5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := d.Decode(TagEnum, tt.attr, enc(tt.value))
			if v.Display != tt.want {
				t.Errorf("Display = %q, want %q", v.Display, tt.want)
			}
			if v.Kind != KindEnum {
				t.Errorf("Kind = %v, want KindEnum", v.Kind)
			}
			if v.Int != tt.value {
				t.Errorf("Int = %d, want %d", v.Int, tt.value)
			}
			if tt.resolved && v.Symbol == "" {
				t.Error("expected resolved symbol")
			}
			if !tt.resolved && v.Symbol != "" {
				t.Errorf("Symbol = %q, want unresolved", v.Symbol)
			}
		})
	}

	v := d.Decode(TagEnum, "job-state", []byte{0x05})
	if v.Display != "Invalid enum (length is 1, should be 4)" {
		t.Errorf("Display = %q for short enum", v.Display)
	}
}

func TestDecodeUnknownIntegerTag(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	v := d.Decode(Tag(0x24), "some-attr", []byte{0x00, 0x00, 0x00, 0x01})
	if v.Display != "Unknown integer type 0x24" {
		t.Errorf("Display = %q, want unknown integer type label", v.Display)
	}
	if v.Kind != KindBytes {
		t.Errorf("Kind = %v, want KindBytes", v.Kind)
	}
}

func TestDecodeDateTime(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	data := []byte{0x07, 0xe8, 0x03, 0x0f, 0x0c, 0x1e, 0x00, 0x00, '+', 0x00, 0x00}
	v := d.Decode(TagDateTime, "printer-current-time", data)
	if v.Kind != KindDateTime {
		t.Fatalf("Kind = %v, want KindDateTime", v.Kind)
	}
	if want := "2024-03-15T12:30:00.0+0000"; v.Display != want {
		t.Errorf("Display = %q, want %q", v.Display, want)
	}

	neg := []byte{0x07, 0xe8, 0x0c, 0x01, 0x17, 0x3b, 0x3b, 0x09, '-', 0x05, 0x1e}
	v = d.Decode(TagDateTime, "printer-current-time", neg)
	if want := "2024-12-01T23:59:59.9-0530"; v.Display != want {
		t.Errorf("Display = %q, want %q", v.Display, want)
	}

	v = d.Decode(TagDateTime, "printer-current-time", data[:10])
	if v.Kind != KindBytes {
		t.Errorf("short dateTime Kind = %v, want KindBytes fallback", v.Kind)
	}
}

func TestDecodeResolution(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	enc := func(x, y int32, units byte) []byte {
		return []byte{
			byte(uint32(x) >> 24), byte(uint32(x) >> 16), byte(uint32(x) >> 8), byte(uint32(x)),
			byte(uint32(y) >> 24), byte(uint32(y) >> 16), byte(uint32(y) >> 8), byte(uint32(y)),
			units,
		}
	}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"dpi", enc(600, 600, 3), "600x600dpi"},
		{"dpcm", enc(300, 600, 4), "300x600dpcm"},
		{"unknown units", enc(100, 100, 9), "100x100unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := d.Decode(TagResolution, "printer-resolution-default", tt.data)
			if v.Kind != KindResolution {
				t.Fatalf("Kind = %v, want KindResolution", v.Kind)
			}
			if v.Display != tt.want {
				t.Errorf("Display = %q, want %q", v.Display, tt.want)
			}
		})
	}

	v := d.Decode(TagResolution, "printer-resolution-default", []byte{0x00, 0x01})
	if v.Kind != KindBytes {
		t.Errorf("short resolution Kind = %v, want KindBytes fallback", v.Kind)
	}
}

func TestDecodeRangeOfInteger(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	data := []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x64}
	v := d.Decode(TagRangeOfInteger, "copies-supported", data)
	if v.Kind != KindRange {
		t.Fatalf("Kind = %v, want KindRange", v.Kind)
	}
	if want := "1-100"; v.Display != want {
		t.Errorf("Display = %q, want %q", v.Display, want)
	}
	if v.Range.Lower != 1 || v.Range.Upper != 100 {
		t.Errorf("Range = %d-%d, want 1-100", v.Range.Lower, v.Range.Upper)
	}
}

func TestDecodeTextWithLanguage(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	// u16 langLen | lang | u16 strLen | str
	data := []byte{0x00, 0x02, 'e', 'n', 0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}
	v := d.Decode(TagTextWithLanguage, "job-name", data)
	if v.Kind != KindTextWithLanguage {
		t.Fatalf("Kind = %v, want KindTextWithLanguage", v.Kind)
	}
	if want := "hello (en)"; v.Display != want {
		t.Errorf("Display = %q, want %q", v.Display, want)
	}
	if v.Text != "hello" || v.Lang != "en" {
		t.Errorf("Text/Lang = %q/%q, want hello/en", v.Text, v.Lang)
	}

	// Nested language length runs past the value.
	bad := []byte{0x00, 0x40, 'e', 'n'}
	v = d.Decode(TagNameWithLanguage, "job-name", bad)
	if v.Kind != KindBytes {
		t.Errorf("overlong nested length Kind = %v, want KindBytes fallback", v.Kind)
	}
	if want := "0x0040656e"; v.Display != want {
		t.Errorf("Display = %q, want %q", v.Display, want)
	}
}

func TestDecodeCharString(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	v := d.Decode(TagKeyword, "sides", []byte("two-sided-long-edge"))
	if v.Kind != KindText || v.Display != "two-sided-long-edge" {
		t.Errorf("got kind=%v display=%q", v.Kind, v.Display)
	}

	v = d.Decode(TagURI, "printer-uri", []byte("ipp://printer.local/ipp/print"))
	if v.Display != "ipp://printer.local/ipp/print" {
		t.Errorf("Display = %q", v.Display)
	}

	// Non-printable bytes are escaped, not passed through.
	v = d.Decode(TagNameWithoutLanguage, "job-name", []byte{'a', 0x00, 'b'})
	if want := `a\x00b`; v.Display != want {
		t.Errorf("Display = %q, want %q", v.Display, want)
	}
}

func TestDecodeOutOfBand(t *testing.T) {
	d := NewDecoder(DefaultEnumRegistry())

	v := d.Decode(TagNoValue, "job-sheets", nil)
	if v.Kind != KindBytes {
		t.Errorf("Kind = %v, want KindBytes", v.Kind)
	}

	v = d.Decode(Tag(0x99), "mystery", []byte{0xde, 0xad})
	if v.Kind != KindBytes || v.Display != "0xdead" {
		t.Errorf("got kind=%v display=%q", v.Kind, v.Display)
	}
}

func TestDecodeNilRegistry(t *testing.T) {
	d := NewDecoder(nil)
	v := d.Decode(TagEnum, "job-state", []byte{0x00, 0x00, 0x00, 0x05})
	if v.Display != "5" {
		t.Errorf("Display = %q, want plain integer rendering", v.Display)
	}
}
