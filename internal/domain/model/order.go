package model

import (
	"time"

	"github.com/google/uuid"
)

// Order records one completed purchase of an assembled computer.
type Order struct {
	ID        string    `json:"id"`
	Variant   Variant   `json:"variant"`
	Computer  Computer  `json:"computer"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrder stamps an assembled computer with a fresh ID and the current time.
func NewOrder(variant Variant, computer Computer) Order {
	return Order{
		ID:        uuid.NewString(),
		Variant:   variant,
		Computer:  computer,
		CreatedAt: time.Now().UTC(),
	}
}
