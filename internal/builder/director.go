package builder

import "github.com/guttosm/computer-shop/internal/domain/model"

// Director runs a builder's steps in a fixed order.
type Director struct {
	builder ComputerBuilder
}

// NewDirector creates a Director with no builder assigned.
func NewDirector() *Director {
	return &Director{}
}

// SetBuilder assigns the builder used by Construct.
func (d *Director) SetBuilder(b ComputerBuilder) {
	d.builder = b
}

// Construct builds CPU, RAM, GPU, storage and cooling, in that order, and
// returns the finished computer.
func (d *Director) Construct() (model.Computer, error) {
	if d.builder == nil {
		return model.Computer{}, ErrNoBuilder
	}
	d.builder.BuildCPU()
	d.builder.BuildRAM()
	d.builder.BuildGPU()
	d.builder.BuildStorage()
	d.builder.BuildCooling()
	return d.builder.Computer(), nil
}

// ConstructWith assigns b and constructs with it.
func (d *Director) ConstructWith(b ComputerBuilder) (model.Computer, error) {
	d.SetBuilder(b)
	return d.Construct()
}
