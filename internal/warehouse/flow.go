package warehouse

import (
	"errors"
	"fmt"

	"github.com/atomicstack/consolenav/internal/engine"
	"github.com/atomicstack/consolenav/internal/menu"
	"github.com/google/uuid"
)

const (
	DefaultMaxBoxes   = 20
	DefaultMaxMass    = 1000
	DefaultScrollSize = 5
)

const (
	actAdd       = "add"
	actRemove    = "remove"
	actView      = "view"
	actSearch    = "search"
	actStatement = "statement"
	actBack      = "back"
)

var actionIDs = []string{actAdd, actRemove, actView, actSearch, actStatement, actBack}

// Options bounds the interactive container entry.
type Options struct {
	MaxBoxes   int     // boxes per container
	MaxMass    float64 // total mass per container
	ScrollSize int     // visible rows in the removal menu
}

func (o Options) withDefaults() Options {
	if o.MaxBoxes < 1 {
		o.MaxBoxes = DefaultMaxBoxes
	}
	if o.MaxMass <= 0 {
		o.MaxMass = DefaultMaxMass
	}
	if o.ScrollSize < 1 {
		o.ScrollSize = DefaultScrollSize
	}
	return o
}

// Setup asks for the warehouse size and storage cost. ok is false when the
// user backed out of either prompt.
func Setup(e *engine.Engine) (*Warehouse, bool, error) {
	text := e.Text()
	capacity, ok, err := engine.ReadNumber(e, text.Get("wh_capacity_prompt"),
		engine.Check[int]{Valid: engine.PositiveNonZero[int]})
	if err != nil || !ok {
		return nil, false, err
	}
	cost, ok, err := engine.ReadNumber(e, text.Get("wh_cost_prompt"),
		engine.Check[float64]{Valid: engine.Positive[float64]})
	if err != nil || !ok {
		return nil, false, err
	}
	w, err := New(capacity, cost)
	if err != nil {
		return nil, false, err
	}
	return w, true, nil
}

type manager struct {
	e    *engine.Engine
	w    *Warehouse
	opts Options
}

// Run shows the manager menu until Back or Escape. The side panel lists the
// stored containers and the header shows how full the warehouse is.
func Run(e *engine.Engine, w *Warehouse, opts Options) error {
	m := &manager{e: e, w: w, opts: opts.withDefaults()}
	text := e.Text()
	actions, err := menu.Pair(actionIDs, text.Lines("wh_actions"))
	if err != nil {
		return fmt.Errorf("warehouse actions: %w", err)
	}
	for {
		header := text.Format("wh_header", w.Len(), w.Capacity)
		id, ok, err := e.MenuWithSidePanel(text.Get("wh_manager_title"), actions, w.Listing(), header)
		if err != nil {
			return err
		}
		if !ok || id == actBack {
			return nil
		}
		if err := m.dispatch(id); err != nil {
			return err
		}
	}
}

func (m *manager) dispatch(id string) error {
	switch id {
	case actAdd:
		return m.add()
	case actRemove:
		return m.remove()
	case actView:
		return m.view()
	case actSearch:
		return m.search()
	case actStatement:
		return m.statement()
	}
	return nil
}

func (m *manager) notify(line string) error {
	return m.e.Window(m.e.Text().Get("wh_manager_title"), []string{line}, true)
}

func (m *manager) add() error {
	text := m.e.Text()
	if m.w.Full() {
		return m.e.ErrorWindow([]string{text.Get("wh_full")})
	}
	name, ok, err := m.e.ReadString(text.Get("wh_name_prompt"), false)
	if err != nil || !ok {
		return err
	}
	count, ok, err := engine.ReadNumber(m.e, text.Formatf("wh_boxes_prompt", m.opts.MaxBoxes),
		engine.Check[int]{Valid: engine.PositiveNonZero[int], Limit: m.opts.MaxBoxes, Against: engine.NotBiggerThan[int]})
	if err != nil || !ok {
		return err
	}
	boxes, err := m.readBoxes(count)
	if err != nil {
		return err
	}
	if len(boxes) == 0 {
		return nil
	}
	c, err := m.w.Add(name, boxes)
	switch {
	case errors.Is(err, ErrFull):
		return m.e.ErrorWindow([]string{text.Get("wh_full")})
	case errors.Is(err, ErrUnprofitable):
		return m.e.ErrorWindow([]string{text.Formatf("wh_unprofitable", m.w.Benefit(boxes))})
	case err != nil:
		return err
	}
	m.e.Logger().Info(fmt.Sprintf("container %s (%s) stored with %d boxes", c.ID, c.Name, len(c.Boxes)))
	return m.notify(text.Formatf("wh_added", c.Name))
}

// readBoxes collects up to count boxes. Escaping a prompt ends entry early
// and keeps the boxes read so far.
func (m *manager) readBoxes(count int) ([]Box, error) {
	text := m.e.Text()
	boxes := make([]Box, 0, count)
	var mass float64
	for i := 1; i <= count; i++ {
		remaining := m.opts.MaxMass - mass
		if remaining <= 0 {
			break
		}
		cost, ok, err := engine.ReadNumber(m.e, text.Formatf("wh_box_cost_prompt", i),
			engine.Check[float64]{Valid: engine.PositiveNonZero[float64]})
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		boxMass, ok, err := engine.ReadNumber(m.e, text.Formatf("wh_box_mass_prompt", i, remaining),
			engine.Check[float64]{Valid: engine.PositiveNonZero[float64], Limit: remaining, Against: engine.NotBiggerThan[float64]})
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		boxes = append(boxes, Box{Cost: cost, Mass: boxMass})
		mass += boxMass
	}
	return boxes, nil
}

// containerOptions labels containers by position so equal names stay
// distinct.
func (m *manager) containerOptions() (*menu.Options, error) {
	opts := menu.NewOptions()
	for i, c := range m.w.Containers() {
		if err := opts.Add(fmt.Sprintf("%d. %s", i+1, c.Name), c.ID.String()); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func (m *manager) remove() error {
	text := m.e.Text()
	if m.w.Len() == 0 {
		return m.notify(text.Get("wh_empty"))
	}
	opts, err := m.containerOptions()
	if err != nil {
		return err
	}
	id, ok, err := m.e.ScrollableMenu(text.Get("wh_remove_title"), opts, m.opts.ScrollSize, nil)
	if err != nil || !ok {
		return err
	}
	cid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("container id %q: %w", id, err)
	}
	c, found := m.w.Get(cid)
	if !found {
		return nil
	}
	answer, err := m.e.YesNo(c.Details(), text.Lines("yes_no")...)
	if err != nil || answer != engine.Yes {
		return err
	}
	m.w.Remove(cid)
	m.e.Logger().Info(fmt.Sprintf("container %s (%s) removed", c.ID, c.Name))
	return m.notify(text.Formatf("wh_removed", c.Name))
}

func (m *manager) view() error {
	if m.w.Len() == 0 {
		return m.notify(m.e.Text().Get("wh_empty"))
	}
	return m.e.Pages(m.e.Text().Get("wh_listing_title"), m.w.Listing())
}

func (m *manager) search() error {
	text := m.e.Text()
	query, ok, err := m.e.ReadString(text.Get("wh_search_prompt"), true)
	if err != nil || !ok {
		return err
	}
	found := m.w.Search(query)
	if len(found) == 0 {
		return m.notify(text.Get("wh_not_found"))
	}
	var lines []string
	for i, c := range found {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, c.Details()...)
	}
	return m.e.Pages(text.Get("wh_search_title"), lines)
}

func (m *manager) statement() error {
	text := m.e.Text()
	s := m.w.Statement()
	lines := []string{
		text.Formatf("wh_statement_containers", s.Containers, s.Capacity),
		text.Formatf("wh_statement_value", s.Value),
		text.Formatf("wh_statement_cost", s.Cost),
		text.Formatf("wh_statement_profit", s.Profit()),
	}
	return m.e.Window(text.Get("wh_statement_title"), lines, true)
}
