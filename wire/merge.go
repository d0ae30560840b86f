package wire

// mergeChild inserts f into parent's children, collapsing repeated
// occurrences of the same tag: find the existing child with f's tag
// (append if none), then switch on the existing child's kind to decide
// how to fold f in. Returns a non-nil error only in StrictMode, when a
// kind conflict would otherwise be silently dropped.
func mergeChild(parent *Node, f *Node) error {
	for _, existing := range parent.Children {
		if existing.Tag != f.Tag {
			continue
		}

		switch existing.Kind {
		case KindVarint, KindI32, KindI64:
			if f.Kind == existing.Kind {
				existing.Values = append(existing.Values, f.Values...)
				return nil
			}
			return mergeConflict(f.Tag)

		case KindBinary:
			if f.Kind == KindBinary {
				existing.Bytes = append(existing.Bytes, f.Bytes...)
				return nil
			}
			return mergeConflict(f.Tag)

		case KindGroup, KindPacked:
			repeat := &Node{Kind: KindRepeat, Tag: f.Tag, Children: []*Node{existing, f}}
			replaceChild(parent, existing, repeat)
			return nil

		case KindRepeat:
			existing.Children = append(existing.Children, f)
			return nil

		default:
			return mergeConflict(f.Tag)
		}
	}

	parent.Children = append(parent.Children, f)
	return nil
}

// mergeConflict silently drops a conflicting-kind field unless StrictMode
// is enabled, in which case the conflict surfaces as a KindConflict decode
// error instead.
func mergeConflict(tag int64) error {
	if !config.StrictMode {
		return nil
	}
	return &DecodeError{Kind: ErrKindConflict, Tag: tag}
}

// replaceChild swaps oldNode for newNode in parent's children, preserving
// position so insertion order is unaffected.
func replaceChild(parent *Node, oldNode, newNode *Node) {
	for i, c := range parent.Children {
		if c == oldNode {
			parent.Children[i] = newNode
			return
		}
	}
}
