package inspect

import (
	"fmt"
	"strings"
	"time"

	"github.com/ipptrace/ipptrace-go/pkg/conversation"
	"github.com/ipptrace/ipptrace-go/pkg/dissect"
	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// Formatter formats dissected messages for display.
type Formatter struct {
	// ShowOffsets includes byte offsets on group lines
	ShowOffsets bool

	// ShowTags includes the value tag name alongside each value
	ShowTags bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowOffsets: false,
		ShowTags:    true,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatMessage renders a message as an indented tree: the summary
// line, header fields, correlation info when a transaction is known,
// then every attribute group. The transaction and timestamp may be
// zero values when no correlation context exists.
func (f *Formatter) FormatMessage(msg *dissect.Message, trans *conversation.Transaction, at time.Time) string {
	var sb strings.Builder

	sb.WriteString(msg.Summary())
	sb.WriteString("\n")
	sb.WriteString(f.Indent(1, fmt.Sprintf("version: %s\n", msg.Header.Version)))
	sb.WriteString(f.Indent(1, fmt.Sprintf("request-id: %d\n", msg.Header.RequestID)))

	f.formatCorrelation(&sb, msg, trans, at)

	for _, g := range msg.Groups {
		sb.WriteString(f.Indent(1, f.groupLine(g)))
		sb.WriteString("\n")
		for _, a := range g.Attributes {
			f.formatAttribute(&sb, a)
		}
	}

	if msg.Truncated {
		sb.WriteString(f.Indent(1, "[message truncated]\n"))
	}
	if len(msg.Payload) > 0 {
		sb.WriteString(f.Indent(1, fmt.Sprintf("payload: %d bytes\n", len(msg.Payload))))
	}

	return sb.String()
}

func (f *Formatter) formatCorrelation(sb *strings.Builder, msg *dissect.Message, trans *conversation.Transaction, at time.Time) {
	if trans == nil {
		return
	}
	if msg.Direction == wire.DirectionRequest {
		if trans.Complete() {
			sb.WriteString(f.Indent(1, fmt.Sprintf("response in: frame %d\n", trans.ResponseFrame)))
		}
		return
	}
	sb.WriteString(f.Indent(1, fmt.Sprintf("response to: frame %d\n", trans.RequestFrame)))
	if !at.IsZero() && !trans.RequestTime.IsZero() {
		sb.WriteString(f.Indent(1, fmt.Sprintf("response time: %s\n", trans.Elapsed(at))))
	}
}

func (f *Formatter) groupLine(g *dissect.AttributeGroup) string {
	name := g.Tag.String()
	if g.Tag == wire.TagZero {
		name = "(no group delimiter)"
	}
	if f.ShowOffsets {
		return fmt.Sprintf("%s [%d:%d]", name, g.Start, g.End)
	}
	return name
}

func (f *Formatter) formatAttribute(sb *strings.Builder, a *dissect.Attribute) {
	name := a.Name
	if name == "" {
		name = "(no name)"
	}

	if len(a.Values) == 1 {
		sb.WriteString(f.Indent(2, fmt.Sprintf("%s: %s\n", name, f.valueText(a.Tag, a.Values[0]))))
		return
	}

	sb.WriteString(f.Indent(2, name+":\n"))
	for _, v := range a.Values {
		sb.WriteString(f.Indent(3, f.valueText(a.Tag, v)+"\n"))
	}
}

func (f *Formatter) valueText(tag wire.Tag, v wire.Value) string {
	if f.ShowTags {
		return fmt.Sprintf("%s (%s)", v.Display, tag)
	}
	return v.Display
}
