package menu

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrLengthMismatch is returned when ids and labels differ in count.
	ErrLengthMismatch = errors.New("number of ids does not match number of labels")
	// ErrDuplicateLabel is returned when a label is added twice.
	ErrDuplicateLabel = errors.New("duplicate menu label")
)

// Options maps display labels to opaque ids. Insertion order is display order.
type Options struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewOptions returns an empty mapping.
func NewOptions() *Options {
	return &Options{m: orderedmap.New[string, string]()}
}

// Pair zips ids and labels into a mapping, rejecting inconsistent input.
func Pair(ids, labels []string) (*Options, error) {
	if len(ids) != len(labels) {
		return nil, fmt.Errorf("%w: %d ids, %d labels", ErrLengthMismatch, len(ids), len(labels))
	}
	opts := NewOptions()
	for i := range ids {
		if err := opts.Add(labels[i], ids[i]); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// Add appends a label. The mapping is left untouched when the label exists.
func (o *Options) Add(label, id string) error {
	if _, ok := o.m.Get(label); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	o.m.Set(label, id)
	return nil
}

// Len reports the number of entries.
func (o *Options) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Len()
}

// Labels returns the labels in display order.
func (o *Options) Labels() []string {
	if o.Len() == 0 {
		return nil
	}
	labels := make([]string, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		labels = append(labels, pair.Key)
	}
	return labels
}

// ID resolves the id behind a label.
func (o *Options) ID(label string) (string, bool) {
	if o.Len() == 0 {
		return "", false
	}
	return o.m.Get(label)
}
