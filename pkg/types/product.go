package types

import "fmt"

// Product is a catalog item.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Supplier  string  `json:"supplier"`
	Available bool    `json:"available"`
}

// RecordID implements Record.
func (p Product) RecordID() int { return p.ID }

// Validate checks the required fields and value ranges.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: category", ErrMissingField)
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
