//go:build !integration

package builder

import (
	"testing"

	"github.com/guttosm/computer-shop/internal/domain/model"
	"github.com/guttosm/computer-shop/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirector_Construct(t *testing.T) {
	tests := []struct {
		name     string
		builder  ComputerBuilder
		expected model.Computer
	}{
		{
			name:    "gaming preset",
			builder: NewGamingBuilder(),
			expected: model.Computer{
				CPU:     "Intel Core i9-13900K",
				GPU:     "NVIDIA RTX 4090",
				RAM:     "32GB DDR5",
				Storage: "2TB NVMe SSD",
				Cooling: "Liquid Cooling System",
			},
		},
		{
			name:    "office preset",
			builder: NewOfficeBuilder(),
			expected: model.Computer{
				CPU:     "Intel Core i3-12100",
				GPU:     "Integrated Graphics",
				RAM:     "8GB DDR4",
				Storage: "512GB SSD",
				Cooling: "Standard Air Cooler",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector()
			d.SetBuilder(tt.builder)

			pc, err := d.Construct()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, pc)
			assert.True(t, pc.IsComplete())
		})
	}
}

func TestDirector_Construct_NoBuilder(t *testing.T) {
	d := NewDirector()

	pc, err := d.Construct()

	assert.ErrorIs(t, err, ErrNoBuilder)
	assert.Equal(t, model.Computer{}, pc)
}

func TestDirector_Construct_CanonicalOrder(t *testing.T) {
	b := new(mocks.MockComputerBuilder)
	var order []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}
	b.On("BuildCPU").Run(record("cpu")).Once()
	b.On("BuildRAM").Run(record("ram")).Once()
	b.On("BuildGPU").Run(record("gpu")).Once()
	b.On("BuildStorage").Run(record("storage")).Once()
	b.On("BuildCooling").Run(record("cooling")).Once()
	b.On("Computer").Return(model.Computer{CPU: "mock"}).Once()

	pc, err := NewDirector().ConstructWith(b)

	require.NoError(t, err)
	assert.Equal(t, "mock", pc.CPU)
	assert.Equal(t, []string{"cpu", "ram", "gpu", "storage", "cooling"}, order)
	b.AssertExpectations(t)
}

func TestDirector_Reusable(t *testing.T) {
	d := NewDirector()
	gaming := NewGamingBuilder()

	first, err := d.ConstructWith(gaming)
	require.NoError(t, err)
	second, err := d.ConstructWith(gaming)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestDirector_SwitchBuilders(t *testing.T) {
	d := NewDirector()

	gaming, err := d.ConstructWith(NewGamingBuilder())
	require.NoError(t, err)
	office, err := d.ConstructWith(NewOfficeBuilder())
	require.NoError(t, err)

	assert.Equal(t, "NVIDIA RTX 4090", gaming.GPU)
	assert.Equal(t, "Integrated Graphics", office.GPU)
}
