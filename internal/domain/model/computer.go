// Package model defines the core domain entities for the computer shop.
package model

import "fmt"

// Computer is the product assembled by a builder.
// Fields left unset by a partial build stay empty.
type Computer struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Storage string `json:"storage"`
	Cooling string `json:"cooling"`
}

// String renders the assembled specification line.
func (c Computer) String() string {
	return fmt.Sprintf("Computer Spec: [CPU=%s, GPU=%s, RAM=%s, HDD/SSD=%s, Cooling=%s]",
		c.CPU, c.GPU, c.RAM, c.Storage, c.Cooling)
}

// IsComplete reports whether every part has been installed.
func (c Computer) IsComplete() bool {
	return c.CPU != "" && c.GPU != "" && c.RAM != "" && c.Storage != "" && c.Cooling != ""
}
