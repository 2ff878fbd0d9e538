package menu

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func activeCount(items []Item) int {
	n := 0
	for _, item := range items {
		if item.Active() {
			n++
		}
	}
	return n
}

func TestNewListActivatesFirst(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	if l.Selected() != 0 {
		t.Fatalf("expected selection 0, got %d", l.Selected())
	}
	items := l.Items()
	if !items[0].Active() || activeCount(items) != 1 {
		t.Fatalf("expected only first item active, got %#v", items)
	}
}

func TestListNextPrevWrap(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	l.Prev()
	if l.Selected() != 2 {
		t.Fatalf("expected wrap to last, got %d", l.Selected())
	}
	l.Next()
	if l.Selected() != 0 {
		t.Fatalf("expected wrap to first, got %d", l.Selected())
	}
	l.Next()
	l.Next()
	if got, _ := l.Current(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
}

func TestListExactlyOneActiveAfterEveryStep(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d", "e"})
	steps := []func(){l.Next, l.Next, l.Prev, l.Prev, l.Prev, l.Next, l.Next, l.Next, l.Next, l.Next}
	for i, step := range steps {
		step()
		if n := activeCount(l.Items()); n != 1 {
			t.Fatalf("step %d: expected one active item, got %d", i, n)
		}
	}
}

func TestListNextPrevAreInverse(t *testing.T) {
	for size := 1; size <= 4; size++ {
		labels := make([]string, size)
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		for start := 0; start < size; start++ {
			l := NewList(labels)
			for i := 0; i < start; i++ {
				l.Next()
			}
			l.Next()
			l.Prev()
			if l.Selected() != start {
				t.Fatalf("size %d start %d: next/prev landed on %d", size, start, l.Selected())
			}
			l.Prev()
			l.Next()
			if l.Selected() != start {
				t.Fatalf("size %d start %d: prev/next landed on %d", size, start, l.Selected())
			}
		}
	}
}

func TestEmptyListNavigationIsNoOp(t *testing.T) {
	l := NewList(nil)
	l.Next()
	l.Prev()
	if l.Selected() != -1 {
		t.Fatalf("expected -1 for empty list, got %d", l.Selected())
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current label")
	}
	if items := l.Items(); len(items) != 0 {
		t.Fatalf("expected no items, got %#v", items)
	}
}

func TestListWindowKeepsActiveIdentity(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d", "e"})
	l.Next()
	l.Next()
	l.Next()
	items := l.Window(Window{Offset: 2, Length: 3})
	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.Content()
	}
	if diff := cmp.Diff([]string{"c", "d", "e"}, got); diff != "" {
		t.Fatalf("unexpected window (-want +got):\n%s", diff)
	}
	if !items[1].Active() || activeCount(items) != 1 {
		t.Fatalf("expected d to be the only active item")
	}
}

func TestItemFlags(t *testing.T) {
	item := NewItem("readme.md", true, false)
	item.SetActive()
	if !item.Active() || !item.IsFile() || item.Content() != "readme.md" {
		t.Fatalf("unexpected item state %#v", item)
	}
	item.SetInactive()
	if item.Active() {
		t.Fatalf("expected inactive item")
	}
}

func TestPairBuildsOrderedOptions(t *testing.T) {
	opts, err := Pair([]string{"s", "i", "x"}, []string{"Start", "Instruction", "Exit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Start", "Instruction", "Exit"}, opts.Labels()); diff != "" {
		t.Fatalf("unexpected labels (-want +got):\n%s", diff)
	}
	if id, ok := opts.ID("Exit"); !ok || id != "x" {
		t.Fatalf("expected Exit -> x, got %q %v", id, ok)
	}
	if _, ok := opts.ID("Missing"); ok {
		t.Fatalf("expected missing label lookup to fail")
	}
}

func TestPairRejectsInconsistentInput(t *testing.T) {
	if _, err := Pair([]string{"a"}, []string{"A", "B"}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := Pair([]string{"a", "b"}, []string{"A", "A"}); !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("expected ErrDuplicateLabel, got %v", err)
	}
}

func TestOptionsAddKeepsFirstOnDuplicate(t *testing.T) {
	opts := NewOptions()
	if err := opts.Add("Open", "o"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := opts.Add("Open", "other"); !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if id, _ := opts.ID("Open"); id != "o" {
		t.Fatalf("expected first id kept, got %q", id)
	}
	if opts.Len() != 1 {
		t.Fatalf("expected one entry, got %d", opts.Len())
	}
}
