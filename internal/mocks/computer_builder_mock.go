// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/computer-shop/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockComputerBuilder struct {
	mock.Mock
}

func (m *MockComputerBuilder) BuildCPU() {
	m.Called()
}

func (m *MockComputerBuilder) BuildGPU() {
	m.Called()
}

func (m *MockComputerBuilder) BuildRAM() {
	m.Called()
}

func (m *MockComputerBuilder) BuildStorage() {
	m.Called()
}

func (m *MockComputerBuilder) BuildCooling() {
	m.Called()
}

func (m *MockComputerBuilder) Computer() model.Computer {
	args := m.Called()
	return args.Get(0).(model.Computer)
}
