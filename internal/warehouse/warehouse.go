// Package warehouse is a container warehouse simulation driven through the
// engine's menus and readers.
package warehouse

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/consolenav/internal/format/table"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrInvalidCapacity = errors.New("warehouse capacity must be positive")
	ErrInvalidCost     = errors.New("storage cost must not be negative")
	ErrFull            = errors.New("warehouse is full")
	ErrUnprofitable    = errors.New("container value is below the storage cost")
	ErrNoBoxes         = errors.New("container has no boxes")
)

// Box is one unit of cargo.
type Box struct {
	Cost float64
	Mass float64
}

// Container groups boxes under a name. Names need not be unique; ID is.
type Container struct {
	ID    uuid.UUID
	Name  string
	Boxes []Box
}

// Value is the summed cost of the boxes.
func (c Container) Value() float64 {
	var v float64
	for _, b := range c.Boxes {
		v += b.Cost
	}
	return v
}

// Mass is the summed mass of the boxes.
func (c Container) Mass() float64 {
	var m float64
	for _, b := range c.Boxes {
		m += b.Mass
	}
	return m
}

// Details renders the container and its boxes as aligned lines.
func (c Container) Details() []string {
	rows := [][]string{{c.Name, fmt.Sprintf("%.2f", c.Mass()), fmt.Sprintf("%.2f", c.Value())}}
	for i, b := range c.Boxes {
		rows = append(rows, []string{fmt.Sprintf("  #%d", i+1), fmt.Sprintf("%.2f", b.Mass), fmt.Sprintf("%.2f", b.Cost)})
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight})
}

// Warehouse holds at most Capacity containers, each charged StorageCost.
type Warehouse struct {
	Capacity    int
	StorageCost float64

	containers []Container
	newID      func() uuid.UUID
}

// New validates the parameters and returns an empty warehouse.
func New(capacity int, storageCost float64) (*Warehouse, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidCapacity)
	}
	if storageCost < 0 {
		return nil, fmt.Errorf("storage cost %.2f: %w", storageCost, ErrInvalidCost)
	}
	return &Warehouse{Capacity: capacity, StorageCost: storageCost, newID: uuid.New}, nil
}

func (w *Warehouse) Len() int   { return len(w.containers) }
func (w *Warehouse) Full() bool { return len(w.containers) >= w.Capacity }

// Containers returns a copy of the stored containers in insertion order.
func (w *Warehouse) Containers() []Container {
	return append([]Container(nil), w.containers...)
}

// Benefit is what storing boxes would earn after the storage cost.
func (w *Warehouse) Benefit(boxes []Box) float64 {
	return Container{Boxes: boxes}.Value() - w.StorageCost
}

// Add stores a new container. A blank name is replaced by one derived from
// the generated id.
func (w *Warehouse) Add(name string, boxes []Box) (Container, error) {
	if w.Full() {
		return Container{}, ErrFull
	}
	if len(boxes) == 0 {
		return Container{}, ErrNoBoxes
	}
	if b := w.Benefit(boxes); b < 0 {
		return Container{}, fmt.Errorf("benefit %.2f: %w", b, ErrUnprofitable)
	}
	id := w.newID()
	name = strings.TrimSpace(name)
	if name == "" {
		name = "container-" + id.String()[:8]
	}
	c := Container{ID: id, Name: name, Boxes: append([]Box(nil), boxes...)}
	w.containers = append(w.containers, c)
	return c, nil
}

// Remove deletes the container with id and reports whether it existed.
func (w *Warehouse) Remove(id uuid.UUID) (Container, bool) {
	for i, c := range w.containers {
		if c.ID == id {
			w.containers = append(w.containers[:i], w.containers[i+1:]...)
			return c, true
		}
	}
	return Container{}, false
}

// Get looks a container up by id.
func (w *Warehouse) Get(id uuid.UUID) (Container, bool) {
	for _, c := range w.containers {
		if c.ID == id {
			return c, true
		}
	}
	return Container{}, false
}

// Search returns containers whose names fuzzily contain query, closest
// matches first. Matching ignores case and diacritics.
func (w *Warehouse) Search(query string) []Container {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	names := make([]string, len(w.containers))
	for i, c := range w.containers {
		names[i] = c.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)
	out := make([]Container, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, w.containers[r.OriginalIndex])
	}
	return out
}

// Listing renders one aligned line per container: position, name, box
// count and value.
func (w *Warehouse) Listing() []string {
	rows := make([][]string, len(w.containers))
	for i, c := range w.containers {
		rows[i] = []string{
			fmt.Sprintf("%d.", i+1),
			c.Name,
			fmt.Sprintf("%d", len(c.Boxes)),
			fmt.Sprintf("%.2f", c.Value()),
		}
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignRight, table.AlignRight})
}

// Statement summarises the warehouse's current worth.
type Statement struct {
	Containers int
	Capacity   int
	Value      float64
	Cost       float64
}

func (s Statement) Profit() float64 { return s.Value - s.Cost }

func (w *Warehouse) Statement() Statement {
	s := Statement{Containers: len(w.containers), Capacity: w.Capacity}
	for _, c := range w.containers {
		s.Value += c.Value()
	}
	s.Cost = float64(len(w.containers)) * w.StorageCost
	return s
}
