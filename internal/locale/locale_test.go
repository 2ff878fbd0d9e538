package locale

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultTableParses(t *testing.T) {
	tbl := Default()
	for _, key := range []string{"menu", "error", "pages", "rerun", "continue", "exit", "intro_info", "main_menu_items", "wh_actions"} {
		if !tbl.Has(key) {
			t.Fatalf("expected key %q in embedded table", key)
		}
	}
}

func TestLookupPerLanguage(t *testing.T) {
	tbl := Default()
	if got := tbl.Text("menu", Eng); got != "Menu" {
		t.Fatalf("expected Menu, got %q", got)
	}
	if got := tbl.Text("menu", Rus); got != "Меню" {
		t.Fatalf("expected Меню, got %q", got)
	}
}

func TestFallbacks(t *testing.T) {
	tbl := Default()
	if got := tbl.Lines("intro_info", Eng); len(got) != 3 {
		t.Fatalf("expected fallback to russian intro, got %v", got)
	}
	if got := tbl.Text("no_such_key", Eng); got != "no_such_key" {
		t.Fatalf("expected key echoed back, got %q", got)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	tbl := Default()
	lines := tbl.Lines("rerun", Eng)
	lines[0] = "changed"
	if tbl.Lines("rerun", Eng)[0] == "changed" {
		t.Fatalf("Lines must not expose table storage")
	}
}

func TestTextFormat(t *testing.T) {
	text := Default().In(Eng)
	got := text.Format("pages", 2, 5)
	want := []string{"2 / 5 page", "[<] [>] to change the page", "[Esc] to exit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected pages text (-want +got):\n%s", diff)
	}
	if got := text.Formatf("wh_header", 1, 3); got != "Occupied: 1 / 3" {
		t.Fatalf("unexpected header %q", got)
	}
	if text.Language() != Eng {
		t.Fatalf("expected bound language eng")
	}
}

func TestParseAndMerge(t *testing.T) {
	extra, err := Parse([]byte("[menu]\neng = \"Main\"\n\n[greeting]\nrus = \"Привет\"\neng = [\"Hello\", \"there\"]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tbl := Default()
	tbl.Merge(extra)
	if got := tbl.Text("menu", Eng); got != "Main" {
		t.Fatalf("expected merged override, got %q", got)
	}
	if got := tbl.Text("greeting", Eng); got != "Hello\nthere" {
		t.Fatalf("expected joined lines, got %q", got)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown language": "[menu]\nfra = \"Menu\"\n",
		"number value":     "[menu]\neng = 3\n",
		"mixed array":      "[menu]\neng = [\"a\", 1]\n",
		"not toml":         "[menu\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	for code, want := range map[string]Language{"eng": Eng, "EN": Eng, " rus ": Rus, "ru": Rus} {
		got, err := ParseLanguage(code)
		if err != nil || got != want {
			t.Fatalf("ParseLanguage(%q) = %v, %v", code, got, err)
		}
	}
	if _, err := ParseLanguage("de"); !errors.Is(err, ErrUnknownLanguage) || !strings.Contains(err.Error(), "de") {
		t.Fatalf("expected error naming the code, got %v", err)
	}
}
