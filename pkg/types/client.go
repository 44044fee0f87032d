package types

import "fmt"

// Client types.
const (
	ClientParticulier = "Particulier"
	ClientEntreprise  = "Entreprise"
)

// validClientTypes is the set of recognized client type values.
var validClientTypes = map[string]bool{
	ClientParticulier: true,
	ClientEntreprise:  true,
}

// Client is a customer of the delivery business.
type Client struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
}

// RecordID implements Record.
func (c Client) RecordID() int { return c.ID }

// Validate checks the required fields and enum values.
func (c Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if c.Email == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if !validClientTypes[c.Type] {
		return ErrInvalidClientType
	}
	return nil
}
