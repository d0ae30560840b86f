package wire

import (
	"strconv"
	"strings"
)

var literalTypeName = map[Kind]string{
	KindVarint: "varint",
	KindI64:    "int64",
	KindI32:    "int32",
}

// RenderLiteral renders root as a sequence of constructor calls.
// withNamespace prepends "proto::" to every constructor name.
func RenderLiteral(root *Node, indent, margin, depthLimit int, withNamespace bool) string {
	var b strings.Builder
	b.WriteString("{\n")
	renderLiteralNode(&b, root, indent, margin, depthLimit, withNamespace)
	b.WriteString("}\n")
	return b.String()
}

func renderLiteralNode(b *strings.Builder, n *Node, indent, margin, depth int, withNamespace bool) {
	curLeft := margin + indent

	if depth == 0 {
		return
	}
	if depth != -1 {
		depth--
	}

	prefix := ""
	if withNamespace {
		prefix = "proto::"
	}

	switch n.Kind {
	case KindVarint, KindI64, KindI32:
		for _, v := range n.Values {
			b.WriteString(strings.Repeat(" ", curLeft))
			b.WriteString(prefix)
			b.WriteString(literalTypeName[n.Kind])
			b.WriteString("<")
			b.WriteString(strconv.FormatInt(n.Tag, 10))
			b.WriteString(">{ ")
			b.WriteString(strconv.FormatUint(v, 10))
			b.WriteString(" },\n")
		}

	case KindBinary:
		for _, v := range n.Bytes {
			b.WriteString(strings.Repeat(" ", curLeft))
			b.WriteString(prefix)
			b.WriteString("binary<")
			b.WriteString(strconv.FormatInt(n.Tag, 10))
			b.WriteString(">{ \"")
			b.WriteString(EscapeBytes(v))
			b.WriteString("\" },\n")
		}

	case KindGroup:
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString(prefix)
		b.WriteString("group<")
		b.WriteString(strconv.FormatInt(n.Tag, 10))
		b.WriteString(">{\n")
		for _, c := range n.Children {
			renderLiteralNode(b, c, indent, curLeft, depth, withNamespace)
		}
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString("},\n")

	case KindPacked:
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString(prefix)
		b.WriteString("packed<")
		b.WriteString(strconv.FormatInt(n.Tag, 10))
		b.WriteString(">{\n")
		for _, c := range n.Children {
			renderLiteralNode(b, c, indent, curLeft, depth, withNamespace)
		}
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString("},\n")

	default:
		// REPEAT emits no wrapper of its own, and UNDEFINED/root has
		// nothing to emit either — both just recurse at a reduced margin.
		for _, c := range n.Children {
			renderLiteralNode(b, c, indent, curLeft-2, depth, withNamespace)
		}
	}
}
