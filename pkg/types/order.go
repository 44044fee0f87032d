package types

import "fmt"

// Order statuses.
const (
	OrderDelivered = "Livrée"
	OrderInTransit = "En cours"
	OrderPending   = "En attente"
	OrderCancelled = "Annulée"
)

// Payment statuses.
const (
	PaymentPaid     = "Payée"
	PaymentPending  = "En attente"
	PaymentRefunded = "Remboursée"
)

// validOrderStatuses is the set of recognized order status values.
var validOrderStatuses = map[string]bool{
	OrderDelivered: true,
	OrderInTransit: true,
	OrderPending:   true,
	OrderCancelled: true,
}

// validPaymentStatuses is the set of recognized payment status values.
var validPaymentStatuses = map[string]bool{
	PaymentPaid:     true,
	PaymentPending:  true,
	PaymentRefunded: true,
}

// Order is a client purchase. ClientName is a point-in-time copy of the
// client's name taken when the order is created or edited; it does not
// follow later changes to the Client record. ClientID is a soft reference
// with no enforced integrity.
type Order struct {
	ID            int     `json:"id"`
	ClientID      int     `json:"clientId"`
	ClientName    string  `json:"clientName"`
	Products      string  `json:"products"`
	Quantity      int     `json:"quantity"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Address       string  `json:"address"`
	CreatedAt     string  `json:"createdAt"`
	Notes         string  `json:"notes"`
}

// RecordID implements Record.
func (o Order) RecordID() int { return o.ID }

// Validate checks the required fields and enum values.
func (o Order) Validate() error {
	if o.ClientID <= 0 {
		return fmt.Errorf("%w: clientId", ErrMissingField)
	}
	if o.Products == "" {
		return fmt.Errorf("%w: products", ErrMissingField)
	}
	if o.Amount <= 0 {
		return fmt.Errorf("%w: amount", ErrMissingField)
	}
	if !validOrderStatuses[o.Status] {
		return ErrInvalidOrderStatus
	}
	if !validPaymentStatuses[o.PaymentStatus] {
		return ErrInvalidPayment
	}
	return nil
}

// OrderPatch carries a partial order update. Nil fields are left untouched
// on the existing record. Orders are the one entity updated by patch; the
// others are replaced wholesale because their forms always submit every
// field.
type OrderPatch struct {
	ClientID      *int
	Products      *string
	Quantity      *int
	Amount        *float64
	Status        *string
	PaymentStatus *string
	Address       *string
	Notes         *string
}

// Apply merges the patch over an existing order and returns the result.
// The id and creation date are immutable across updates.
func (p OrderPatch) Apply(o Order) Order {
	if p.ClientID != nil {
		o.ClientID = *p.ClientID
	}
	if p.Products != nil {
		o.Products = *p.Products
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.Amount != nil {
		o.Amount = *p.Amount
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		o.PaymentStatus = *p.PaymentStatus
	}
	if p.Address != nil {
		o.Address = *p.Address
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	return o
}
