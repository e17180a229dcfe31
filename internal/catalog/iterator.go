package catalog

import "github.com/guttosm/computer-shop/internal/domain/model"

// Iterator is a forward-only cursor over catalog items. It cannot be rewound;
// ask the Container for a new one to start over.
type Iterator struct {
	items []model.Component
	index int
}

// NewIterator returns a cursor over items. The slice must not be modified
// while the cursor is in use.
func NewIterator(items []model.Component) *Iterator {
	return &Iterator{items: items}
}

// HasNext reports whether Next will return an item.
func (it *Iterator) HasNext() bool {
	return it.index < len(it.items)
}

// Next returns the next item and true, or the zero Component and false once
// the catalog is exhausted. Over-advancing never panics.
func (it *Iterator) Next() (model.Component, bool) {
	if !it.HasNext() {
		return model.Component{}, false
	}
	c := it.items[it.index]
	it.index++
	return c, true
}
