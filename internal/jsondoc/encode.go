package jsondoc

import (
	"bytes"
	"strings"

	"github.com/tailscale/hujson"
)

const indentUnit = "  "

// writeValue writes v as indented JSON. Literals are copied byte for byte, so
// escapes such as surrogate pairs and number spellings such as 1.5e3 survive.
func writeValue(buf *bytes.Buffer, v *hujson.Value, depth int) {
	switch t := v.Value.(type) {
	case *hujson.Object:
		if len(t.Members) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i := range t.Members {
			buf.WriteString(strings.Repeat(indentUnit, depth+1))
			writeValue(buf, &t.Members[i].Name, depth+1)
			buf.WriteString(": ")
			writeValue(buf, &t.Members[i].Value, depth+1)
			if i+1 < len(t.Members) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(indentUnit, depth))
		buf.WriteByte('}')
	case *hujson.Array:
		if len(t.Elements) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[\n")
		for i := range t.Elements {
			buf.WriteString(strings.Repeat(indentUnit, depth+1))
			writeValue(buf, &t.Elements[i], depth+1)
			if i+1 < len(t.Elements) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(indentUnit, depth))
		buf.WriteByte(']')
	case hujson.Literal:
		buf.Write(t)
	default:
		buf.WriteString("null")
	}
}
