package dissect

import "github.com/ipptrace/ipptrace-go/pkg/wire"

// Attribute is one named attribute with its decoded values. Multi-value
// attributes collect their additional values in order of appearance.
type Attribute struct {
	Tag    wire.Tag
	Name   string
	Values []wire.Value
}

// AttributeGroup is one delimiter-opened group of attributes. Start and
// End are byte offsets into the message buffer: Start points at the
// delimiter tag that opened the group, End at the byte after the
// group's last record. A group may be empty.
type AttributeGroup struct {
	Tag        wire.Tag
	Start, End int
	Attributes []*Attribute
}

// Message is one parsed IPP message.
type Message struct {
	Header    wire.Header
	Direction wire.Direction

	// Groups holds the attribute groups in wire order. A value record
	// appearing before any delimiter goes into a synthetic group with
	// tag zero.
	Groups []*AttributeGroup

	// AttributesEnd is the offset just past the end-of-attributes tag,
	// zero if the buffer ended before one was seen.
	AttributesEnd int

	// Payload is the document data following the attribute region, nil
	// if there is none.
	Payload []byte

	// Truncated is set when the buffer ended in the middle of a record.
	Truncated bool
}

// Summary returns the one-line description of the message.
func (m *Message) Summary() string {
	return m.Header.Summary(m.Direction)
}

// Find returns the first attribute with the given name inside groups
// with the given delimiter tag, or nil.
func (m *Message) Find(group wire.Tag, name string) *Attribute {
	for _, g := range m.Groups {
		if g.Tag != group {
			continue
		}
		for _, a := range g.Attributes {
			if a.Name == name {
				return a
			}
		}
	}
	return nil
}

// groupBuilder accumulates the group being parsed plus the attribute
// that additional values may still extend.
type groupBuilder struct {
	group *AttributeGroup
	open  *Attribute
}

func newGroupBuilder(tag wire.Tag, start int) *groupBuilder {
	return &groupBuilder{group: &AttributeGroup{Tag: tag, Start: start}}
}

// add starts a new named attribute in the group.
func (b *groupBuilder) add(tag wire.Tag, name string, v wire.Value) {
	attr := &Attribute{Tag: tag, Name: name, Values: []wire.Value{v}}
	b.group.Attributes = append(b.group.Attributes, attr)
	b.open = attr
}

// extend appends an additional value to the open attribute.
func (b *groupBuilder) extend(v wire.Value) {
	b.open.Values = append(b.open.Values, v)
}

// canExtend reports whether a nameless record with the given tag
// continues the open attribute. The tag need not match exactly, only
// its class; a nameWithLanguage value may extend a nameWithoutLanguage
// attribute.
func (b *groupBuilder) canExtend(tag wire.Tag) bool {
	return b.open != nil && tag.Class() == b.open.Tag.Class()
}

// close finalizes the group at the given end offset and appends it to
// the message. Empty groups are kept; a delimiter with no following
// values is still part of the wire exchange.
func (b *groupBuilder) close(end int, m *Message) {
	b.group.End = end
	m.Groups = append(m.Groups, b.group)
}
