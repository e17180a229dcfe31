// Package builder assembles preset computers step by step.
package builder

import (
	"errors"
	"fmt"

	"github.com/guttosm/computer-shop/internal/domain/model"
)

var (
	// ErrNoBuilder is returned when the Director is used before a builder is assigned.
	ErrNoBuilder = errors.New("director has no builder assigned")
	// ErrUnknownVariant is returned for a variant with no preset.
	ErrUnknownVariant = errors.New("unknown computer variant")
)

// ComputerBuilder installs parts into a computer one at a time.
// Each step touches a single field, so steps may run in any order.
type ComputerBuilder interface {
	BuildCPU()
	BuildGPU()
	BuildRAM()
	BuildStorage()
	BuildCooling()
	// Computer hands over the product built so far and starts a fresh one.
	Computer() model.Computer
}

// Preset is the fixed part list a builder installs.
type Preset struct {
	CPU     string
	GPU     string
	RAM     string
	Storage string
	Cooling string
}

var presets = map[model.Variant]Preset{
	model.Gaming: {
		CPU:     "Intel Core i9-13900K",
		GPU:     "NVIDIA RTX 4090",
		RAM:     "32GB DDR5",
		Storage: "2TB NVMe SSD",
		Cooling: "Liquid Cooling System",
	},
	model.Office: {
		CPU:     "Intel Core i3-12100",
		GPU:     "Integrated Graphics",
		RAM:     "8GB DDR4",
		Storage: "512GB SSD",
		Cooling: "Standard Air Cooler",
	},
}

// PresetFor returns the part list for a variant.
func PresetFor(v model.Variant) (Preset, error) {
	p, ok := presets[v]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return p, nil
}

// New returns the builder for a variant.
func New(v model.Variant) (ComputerBuilder, error) {
	switch v {
	case model.Gaming:
		return NewGamingBuilder(), nil
	case model.Office:
		return NewOfficeBuilder(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
}

// presetBuilder writes the values of one preset into the computer under construction.
type presetBuilder struct {
	preset   Preset
	computer model.Computer
}

func (b *presetBuilder) BuildCPU()     { b.computer.CPU = b.preset.CPU }
func (b *presetBuilder) BuildGPU()     { b.computer.GPU = b.preset.GPU }
func (b *presetBuilder) BuildRAM()     { b.computer.RAM = b.preset.RAM }
func (b *presetBuilder) BuildStorage() { b.computer.Storage = b.preset.Storage }
func (b *presetBuilder) BuildCooling() { b.computer.Cooling = b.preset.Cooling }

func (b *presetBuilder) Computer() model.Computer {
	c := b.computer
	b.computer = model.Computer{}
	return c
}

// GamingBuilder assembles the high-end gaming computer.
type GamingBuilder struct {
	presetBuilder
}

// NewGamingBuilder creates a GamingBuilder with an empty computer.
func NewGamingBuilder() *GamingBuilder {
	return &GamingBuilder{presetBuilder{preset: presets[model.Gaming]}}
}

// OfficeBuilder assembles the entry-level office computer.
type OfficeBuilder struct {
	presetBuilder
}

// NewOfficeBuilder creates an OfficeBuilder with an empty computer.
func NewOfficeBuilder() *OfficeBuilder {
	return &OfficeBuilder{presetBuilder{preset: presets[model.Office]}}
}
