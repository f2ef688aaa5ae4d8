// Package content holds the static tips delivered by the daily rotation.
package content

import "MakeupBot/model"

// Catalog is an ordered, immutable list of tips.
type Catalog struct {
	items []string
}

// NewCatalog copies items into a catalog. An empty list is rejected.
func NewCatalog(items []string) (*Catalog, error) {
	if len(items) == 0 {
		return nil, model.ErrEmptyCatalog
	}
	cp := make([]string, len(items))
	copy(cp, items)
	return &Catalog{items: cp}, nil
}

// Default returns the catalog built from DailyTips.
func Default() *Catalog {
	c, err := NewCatalog(DailyTips)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the tip at cursor, wrapping around the catalog length.
func (c *Catalog) Item(cursor int) string {
	return c.items[c.index(cursor)]
}

// Next returns the cursor that follows cursor.
func (c *Catalog) Next(cursor int) int {
	return (c.index(cursor) + 1) % len(c.items)
}

func (c *Catalog) index(cursor int) int {
	i := cursor % len(c.items)
	if i < 0 {
		i += len(c.items)
	}
	return i
}
