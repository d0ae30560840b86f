package wire

import "testing"

func withConfig(t *testing.T, c Config, fn func()) {
	saved := config
	SetConfig(c)
	defer SetConfig(saved)
	fn()
}

func TestMergeVarintConcatenatesValues(t *testing.T) {
	root := NewRoot()
	mustAppend(t, root, NewVarint(1, 10))
	mustAppend(t, root, NewVarint(1, 20))

	got := root.Get(1)
	if len(got.Values) != 2 || got.Values[0] != 10 || got.Values[1] != 20 {
		t.Errorf("expected [10 20], got %v", got.Values)
	}
}

func TestMergeBinaryConcatenatesBytes(t *testing.T) {
	root := NewRoot()
	mustAppend(t, root, NewBinary(2, []byte("a")))
	mustAppend(t, root, NewBinary(2, []byte("b")))

	got := root.Get(2)
	if len(got.Bytes) != 2 {
		t.Fatalf("expected 2 byte strings, got %d", len(got.Bytes))
	}
}

func TestMergeGroupBecomesRepeat(t *testing.T) {
	root := NewRoot()
	mustAppend(t, root, NewGroup(5))
	mustAppend(t, root, NewGroup(5, NewVarint(1, 1)))

	got := root.Get(5)
	if got.Kind != KindRepeat {
		t.Fatalf("expected KindRepeat, got %v", got.Kind)
	}
	if len(got.Children) != 2 {
		t.Fatalf("expected 2 repeat children, got %d", len(got.Children))
	}
}

func TestMergeRepeatAppends(t *testing.T) {
	root := NewRoot()
	mustAppend(t, root, NewGroup(5))
	mustAppend(t, root, NewGroup(5))
	mustAppend(t, root, NewGroup(5))

	got := root.Get(5)
	if got.Kind != KindRepeat || len(got.Children) != 3 {
		t.Fatalf("expected 3-element REPEAT, got %v with %d children", got.Kind, len(got.Children))
	}
}

func TestMergeKindConflictSilentlyDroppedByDefault(t *testing.T) {
	root := NewRoot()
	mustAppend(t, root, NewVarint(1, 10))
	if err := root.AppendChild(NewBinary(1, []byte("x"))); err != nil {
		t.Fatalf("expected no error outside StrictMode, got %v", err)
	}

	got := root.Get(1)
	if got.Kind != KindVarint || len(got.Values) != 1 {
		t.Errorf("conflicting child should have been dropped, got %+v", got)
	}
}

func TestMergeKindConflictErrorsInStrictMode(t *testing.T) {
	withConfig(t, Config{StrictMode: true, MaxDepth: 100, DefaultPackedDepth: 2}, func() {
		root := NewRoot()
		mustAppend(t, root, NewVarint(1, 10))

		err := root.AppendChild(NewBinary(1, []byte("x")))
		de, ok := err.(*DecodeError)
		if !ok || de.Kind != ErrKindConflict {
			t.Fatalf("expected ErrKindConflict, got %v", err)
		}
	})
}

func mustAppend(t *testing.T, parent, child *Node) {
	t.Helper()
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: unexpected error %v", err)
	}
}
