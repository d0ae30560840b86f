package wire

import (
	"strconv"
	"strings"
)

var humanTypeDesc = map[Kind]string{
	KindVarint: "varint",
	KindI64:    "int64",
	KindI32:    "int32",
}

// RenderHuman renders root as pseudo-JSON with comments. depthLimit of -1
// means no limit, 0 prints nothing, and each recursion otherwise
// decrements it. showType is three-valued: 0 suppresses type comments
// entirely, 1 shows them for scalars and the `/* packed binary */`
// annotation, 2 additionally shows the `/* group */` annotation.
func RenderHuman(root *Node, indent, margin, depthLimit, showType int, showSize bool) string {
	var b strings.Builder
	b.WriteString("{\n")
	renderHumanNode(&b, root, indent, margin, depthLimit, showType, showSize)
	b.WriteString("}\n")
	return b.String()
}

func renderHumanNode(b *strings.Builder, n *Node, indent, margin, depth, showType int, showSize bool) {
	curLeft := margin + indent

	if depth == 0 {
		return
	}
	if depth != -1 {
		depth--
	}

	switch n.Kind {
	case KindVarint, KindI64, KindI32:
		for _, v := range n.Values {
			b.WriteString(strings.Repeat(" ", curLeft))
			b.WriteString(strconv.FormatInt(n.Tag, 10))
			b.WriteString(" : ")
			b.WriteString(strconv.FormatUint(v, 10))
			b.WriteString(",")
			if showType > 0 {
				b.WriteString(" /* ")
				b.WriteString(humanTypeDesc[n.Kind])
				b.WriteString(" */ ")
			}
			b.WriteString("\n")
		}

	case KindBinary:
		for _, v := range n.Bytes {
			b.WriteString(strings.Repeat(" ", curLeft))
			b.WriteString(strconv.FormatInt(n.Tag, 10))
			b.WriteString(" : \"")
			b.WriteString(EscapeBytes(v))
			b.WriteString("\",\n")
		}

	case KindGroup:
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString(strconv.FormatInt(n.Tag, 10))
		b.WriteString(" : {")
		if showType == 2 {
			b.WriteString(" /* group */")
		}
		if showSize {
			b.WriteString(" /* childs: ")
			b.WriteString(strconv.Itoa(len(n.Children)))
			b.WriteString(" */\n")
		} else {
			b.WriteString("\n")
		}
		for _, c := range n.Children {
			renderHumanNode(b, c, indent, curLeft, depth, showType, showSize)
		}
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString("},\n")

	case KindPacked:
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString(strconv.FormatInt(n.Tag, 10))
		b.WriteString(" : {")
		if showType > 0 {
			b.WriteString(" /* packed binary */")
		}
		if showSize {
			if len(n.Bytes) > 0 {
				b.WriteString(" /* len: ")
				b.WriteString(strconv.Itoa(len(n.Bytes[0])))
				b.WriteString(" */ /* child: ")
				b.WriteString(strconv.Itoa(len(n.Children)))
				b.WriteString(" */\n")
			} else {
				b.WriteString(" /* len:  */ /* child: ")
				b.WriteString(strconv.Itoa(len(n.Children)))
				b.WriteString(" */\n")
			}
		} else {
			b.WriteString("\n")
		}
		for _, c := range n.Children {
			renderHumanNode(b, c, indent, curLeft, depth, showType, showSize)
		}
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString("},\n")

	case KindRepeat:
		b.WriteString(strings.Repeat(" ", curLeft))
		b.WriteString("/* repeat count: ")
		b.WriteString(strconv.Itoa(len(n.Children)))
		b.WriteString(" */\n")
		// Falls through into the default case below, which renders the
		// repeat's children (once each) at a reduced margin.
		fallthrough

	default:
		for _, c := range n.Children {
			renderHumanNode(b, c, indent, curLeft-2, depth, showType, showSize)
		}
	}
}
