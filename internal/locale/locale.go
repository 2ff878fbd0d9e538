// Package locale holds the (key, language) -> text resource table.
package locale

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Language selects a column of the table.
type Language int

const (
	Rus Language = iota
	Eng
)

// ErrUnknownLanguage is returned by ParseLanguage for unrecognised codes.
var ErrUnknownLanguage = errors.New("unknown language")

// Fallback is used when a key has no entry for the requested language.
const Fallback = Rus

func (l Language) String() string {
	switch l {
	case Eng:
		return "eng"
	default:
		return "rus"
	}
}

// ParseLanguage accepts the codes produced by Language.String.
func ParseLanguage(code string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "rus", "ru":
		return Rus, nil
	case "eng", "en":
		return Eng, nil
	}
	return Rus, fmt.Errorf("%w %q", ErrUnknownLanguage, code)
}

//go:embed strings.toml
var builtin []byte

// Table maps a key to its text in every language. Each value is stored as
// lines; single strings become one line.
type Table struct {
	entries map[string]map[Language][]string
}

// Default parses the embedded table. It panics only if the embedded file is
// malformed, which the tests guard against.
func Default() *Table {
	t, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("locale: embedded table: %v", err))
	}
	return t
}

// Parse reads a TOML document of the form
//
//	[key]
//	rus = "..."
//	eng = ["line one", "line two"]
func Parse(data []byte) (*Table, error) {
	var raw map[string]map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse locale table: %w", err)
	}
	t := &Table{entries: make(map[string]map[Language][]string, len(raw))}
	for key, langs := range raw {
		row := make(map[Language][]string, len(langs))
		for code, value := range langs {
			lang, err := ParseLanguage(code)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			lines, err := toLines(value)
			if err != nil {
				return nil, fmt.Errorf("key %q, language %s: %w", key, code, err)
			}
			row[lang] = lines
		}
		t.entries[key] = row
	}
	return t, nil
}

func toLines(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		lines := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", item)
			}
			lines = append(lines, s)
		}
		return lines, nil
	}
	return nil, fmt.Errorf("expected string or array, got %T", value)
}

// Merge copies every entry of other into t, replacing existing keys.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for key, row := range other.entries {
		t.entries[key] = row
	}
}

// Lines returns the text for key in lang, falling back to the default
// language and finally to the key itself.
func (t *Table) Lines(key string, lang Language) []string {
	if t != nil {
		if row, ok := t.entries[key]; ok {
			if lines, ok := row[lang]; ok {
				return append([]string(nil), lines...)
			}
			if lines, ok := row[Fallback]; ok {
				return append([]string(nil), lines...)
			}
		}
	}
	return []string{key}
}

// Text joins the lines for key with newlines.
func (t *Table) Text(key string, lang Language) string {
	return strings.Join(t.Lines(key, lang), "\n")
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[key]
	return ok
}

// In binds the table to a language.
func (t *Table) In(lang Language) Text {
	return Text{table: t, lang: lang}
}

// Text is a table bound to one language.
type Text struct {
	table *Table
	lang  Language
}

func (x Text) Language() Language { return x.lang }

// Get returns the single-string form of key.
func (x Text) Get(key string) string { return x.table.Text(key, x.lang) }

// Lines returns key as separate lines.
func (x Text) Lines(key string) []string { return x.table.Lines(key, x.lang) }

// Format applies fmt verbs in the first line of key; the remaining lines are
// returned unchanged.
func (x Text) Format(key string, args ...interface{}) []string {
	lines := x.Lines(key)
	lines[0] = fmt.Sprintf(lines[0], args...)
	return lines
}

// Formatf is Format for single-line entries.
func (x Text) Formatf(key string, args ...interface{}) string {
	return fmt.Sprintf(x.Get(key), args...)
}
