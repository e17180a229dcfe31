// Package catalog holds the shop's fixed stock list and cursors over it.
package catalog

import (
	"iter"

	"github.com/guttosm/computer-shop/internal/domain/model"
)

// Container hands out independent cursors over its items.
type Container interface {
	Iterator() *Iterator
}

// defaultStock is the warehouse content, in display order.
var defaultStock = []model.Component{
	model.NewComponent("RTX 4090", 1600),
	model.NewComponent("Intel i9", 600),
	model.NewComponent("Samsung SSD", 100),
	model.NewComponent("Corsair RAM", 150),
}

// Warehouse is the immutable shop catalog.
type Warehouse struct {
	components []model.Component
}

// NewWarehouse creates a Warehouse stocked with the default catalog.
func NewWarehouse() *Warehouse {
	components := make([]model.Component, len(defaultStock))
	copy(components, defaultStock)
	return &Warehouse{components: components}
}

// Iterator returns a fresh cursor positioned before the first item.
func (w *Warehouse) Iterator() *Iterator {
	return NewIterator(w.components)
}

// Len returns the number of catalog items.
func (w *Warehouse) Len() int {
	return len(w.components)
}

// Items returns a copy of the catalog in display order.
func (w *Warehouse) Items() []model.Component {
	out := make([]model.Component, len(w.components))
	copy(out, w.components)
	return out
}

// All yields every item in order, driven by a fresh Iterator.
func (w *Warehouse) All() iter.Seq[model.Component] {
	return func(yield func(model.Component) bool) {
		it := w.Iterator()
		for it.HasNext() {
			c, _ := it.Next()
			if !yield(c) {
				return
			}
		}
	}
}
