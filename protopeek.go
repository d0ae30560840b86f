// Package protopeek decodes protocol-buffer wire bytes without a .proto
// schema, re-encodes the resulting tree, and renders it as pseudo-JSON or
// as source-literal constructor calls.
package protopeek

import "github.com/protopeek/protopeek/wire"

// Node is the in-memory field tree produced by Decode.
type Node = wire.Node

// DecodeError reports a data error encountered while decoding, with the
// tag path to the field where it was found.
type DecodeError = wire.DecodeError

// Decode parses buf into a field tree. Direct call to the schema-less
// decoder - that's it! packedDepth controls how many levels of
// speculative LEN-as-message reinterpretation are attempted (-1
// unbounded, 0 never, k only through depth k).
func Decode(buf []byte, packedDepth int) (root *Node, consumed, left int, err error) {
	return wire.Decode(buf, packedDepth)
}

// Encode re-serializes root back to wire bytes. Direct call to the
// encoder - that's it!
func Encode(root *Node) ([]byte, error) {
	return wire.Encode(root)
}

// RenderHuman renders root as pseudo-JSON with comments.
func RenderHuman(root *Node, indent, margin, depthLimit, showType int, showSize bool) string {
	return wire.RenderHuman(root, indent, margin, depthLimit, showType, showSize)
}

// RenderLiteral renders root as a sequence of constructor calls.
func RenderLiteral(root *Node, indent, margin, depthLimit int, withNamespace bool) string {
	return wire.RenderLiteral(root, indent, margin, depthLimit, withNamespace)
}

// SetConfig sets package-wide decoder behavior (strict mode, recursion
// and packed-depth limits).
func SetConfig(c wire.Config) { wire.SetConfig(c) }
