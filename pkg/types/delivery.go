package types

import "fmt"

// Delivery statuses.
const (
	DeliveryDelivered = "Livrée"
	DeliveryInTransit = "En cours"
	DeliveryPending   = "En attente"
	DeliveryFailed    = "Échec"
)

// validDeliveryStatuses is the set of recognized delivery status values.
var validDeliveryStatuses = map[string]bool{
	DeliveryDelivered: true,
	DeliveryInTransit: true,
	DeliveryPending:   true,
	DeliveryFailed:    true,
}

// Delivery is a courier run for one order. OrderID and Driver are soft
// references (Driver holds a user name, not an id); a deleted order or
// user does not cascade here.
type Delivery struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"orderId"`
	Driver    string `json:"driver"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	Duration  int    `json:"duration"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// RecordID implements Record.
func (d Delivery) RecordID() int { return d.ID }

// Validate checks the required fields and enum values.
func (d Delivery) Validate() error {
	if d.OrderID <= 0 {
		return fmt.Errorf("%w: orderId", ErrMissingField)
	}
	if d.Driver == "" {
		return fmt.Errorf("%w: driver", ErrMissingField)
	}
	if !validDeliveryStatuses[d.Status] {
		return ErrInvalidDelivery
	}
	return nil
}
