package scene

import (
	"bytes"
	"io"
	"strings"
)

// markupEscaper escapes the five XML special characters. Whitespace is kept
// verbatim so embedded stylesheets stay readable.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Marshal returns the markup of the tree rooted at n.
func (n *Node) Marshal() []byte {
	var buf bytes.Buffer
	n.write(&buf, 0)
	return buf.Bytes()
}

// WriteTo writes the markup of the tree rooted at n to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	written, err := w.Write(n.Marshal())
	return int64(written), err
}

func (n *Node) write(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(n.Tag)
	for _, a := range n.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		escape(buf, a.Value)
		buf.WriteByte('"')
	}

	switch {
	case len(n.Children) == 0 && n.Text == "":
		buf.WriteString("/>\n")
	case len(n.Children) == 0:
		buf.WriteByte('>')
		escape(buf, n.Text)
		buf.WriteString("</" + n.Tag + ">\n")
	default:
		buf.WriteString(">\n")
		if n.Text != "" {
			buf.WriteString(indent + "  ")
			escape(buf, n.Text)
			buf.WriteByte('\n')
		}
		for _, c := range n.Children {
			c.write(buf, depth+1)
		}
		buf.WriteString(indent + "</" + n.Tag + ">\n")
	}
}

func escape(buf *bytes.Buffer, s string) {
	_, _ = markupEscaper.WriteString(buf, s)
}

// EscapeXML returns s with markup special characters escaped.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	escape(&buf, s)
	return buf.String()
}
