package model

import (
	"strconv"
	"strings"
)

// Component is a purchasable catalog item.
type Component struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewComponent creates a Component.
func NewComponent(name string, price float64) Component {
	return Component{Name: name, Price: price}
}

// String renders "<name> ($<price>)".
func (c Component) String() string {
	return c.Name + " ($" + FormatPrice(c.Price) + ")"
}

// FormatPrice renders a price in its shortest decimal form, keeping at least
// one fractional digit: 1600 becomes "1600.0", 99.95 stays "99.95".
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
