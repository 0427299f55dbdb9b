package wire

import "testing"

func TestTagClass(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want TagClass
	}{
		{"operation group delimiter", TagOperationGroup, ClassDelimiter},
		{"end of attributes", TagEndOfAttributes, ClassDelimiter},
		{"unsupported out of band", TagUnsupportedValue, ClassOutOfBand},
		{"integer", TagInteger, ClassInteger},
		{"boolean", TagBoolean, ClassInteger},
		{"enum", TagEnum, ClassInteger},
		{"octet string", TagOctetString, ClassOctetString},
		{"date time", TagDateTime, ClassOctetString},
		{"keyword", TagKeyword, ClassCharString},
		{"uri", TagURI, ClassCharString},
		{"reserved 0x5a", Tag(0x5a), ClassOutOfBand},
		{"reserved 0xff", Tag(0xff), ClassOutOfBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.Class(); got != tt.want {
				t.Errorf("Class() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagIsDelimiter(t *testing.T) {
	if !TagOperationGroup.IsDelimiter() {
		t.Error("operation group tag should be a delimiter")
	}
	if !TagEndOfAttributes.IsDelimiter() {
		t.Error("end-of-attributes tag should be a delimiter")
	}
	if TagInteger.IsDelimiter() {
		t.Error("integer tag should not be a delimiter")
	}
	if !TagEndOfAttributes.IsEndOfAttributes() {
		t.Error("0x03 should be end-of-attributes")
	}
	if TagPrinterGroup.IsEndOfAttributes() {
		t.Error("printer group tag should not be end-of-attributes")
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{TagOperationGroup, "operation-attributes-tag"},
		{TagJobGroup, "job-attributes-tag"},
		{TagEndOfAttributes, "end-of-attributes-tag"},
		{TagInteger, "integer"},
		{TagEnum, "enum"},
		{TagKeyword, "keyword"},
		{Tag(0x5a), "Reserved (0x5a)"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("Tag(0x%02x).String() = %q, want %q", uint8(tt.tag), got, tt.want)
		}
	}
}
