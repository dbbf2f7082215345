package filter

import (
	"github.com/kk-code-lab/fewer/internal/index"
	"github.com/kk-code-lab/fewer/internal/lineset"
)

// Chain holds the active line selectors of one index. The visible set is
// the intersection of all of them.
type Chain struct {
	idx     *index.Index
	filters []*LineFilter
}

func NewChain(idx *index.Index) *Chain {
	return &Chain{idx: idx}
}

// Add compiles and evaluates a selector expression and appends it. A
// rejected expression leaves the chain unchanged.
func (c *Chain) Add(e Expression) (*LineFilter, error) {
	f, err := FromExpression(c.idx, e)
	if err != nil {
		return nil, err
	}
	f.Evaluate()
	c.filters = append(c.filters, f)
	return f, nil
}

// AddString parses raw and adds it as a selector.
func (c *Chain) AddString(raw string) (*LineFilter, error) {
	e, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return c.Add(e)
}

// Pop removes the most recently added filter.
func (c *Chain) Pop() bool {
	if len(c.filters) == 0 {
		return false
	}
	c.filters[len(c.filters)-1] = nil
	c.filters = c.filters[:len(c.filters)-1]
	return true
}

func (c *Chain) Clear() {
	c.filters = nil
}

func (c *Chain) Len() int {
	return len(c.filters)
}

// Filters returns the active filters in the order they were added.
func (c *Chain) Filters() []*LineFilter {
	out := make([]*LineFilter, len(c.filters))
	copy(out, c.filters)
	return out
}

// Visible folds the filters over the universe of the index.
func (c *Chain) Visible() lineset.Set {
	visible := c.idx.Universe()
	for _, f := range c.filters {
		visible = f.Intersect(visible)
	}
	return visible
}
