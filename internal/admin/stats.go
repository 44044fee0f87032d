package admin

import (
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Stats aggregates the dashboard KPIs across all collections.
type Stats struct {
	Users      int `json:"users"`
	Clients    int `json:"clients"`
	Products   int `json:"products"`
	Orders     int `json:"orders"`
	Deliveries int `json:"deliveries"`

	// Revenue sums order amounts, excluding cancelled orders.
	Revenue float64 `json:"revenue"`

	OrdersByStatus     map[string]int `json:"ordersByStatus"`
	DeliveriesByStatus map[string]int `json:"deliveriesByStatus"`
}

// Stats computes the dashboard aggregates from the current collections.
func (p *Panel) Stats() (Stats, error) {
	var s Stats

	users, err := store.ReadCollection[types.User](p.store, types.CollectionUsers)
	if err != nil {
		return s, err
	}
	clients, err := store.ReadCollection[types.Client](p.store, types.CollectionClients)
	if err != nil {
		return s, err
	}
	products, err := store.ReadCollection[types.Product](p.store, types.CollectionProducts)
	if err != nil {
		return s, err
	}
	orders, err := store.ReadCollection[types.Order](p.store, types.CollectionOrders)
	if err != nil {
		return s, err
	}
	deliveries, err := store.ReadCollection[types.Delivery](p.store, types.CollectionDeliveries)
	if err != nil {
		return s, err
	}

	s.Users = len(users)
	s.Clients = len(clients)
	s.Products = len(products)
	s.Orders = len(orders)
	s.Deliveries = len(deliveries)

	s.OrdersByStatus = make(map[string]int)
	for _, o := range orders {
		s.OrdersByStatus[o.Status]++
		if o.Status != types.OrderCancelled {
			s.Revenue += o.Amount
		}
	}
	s.DeliveriesByStatus = make(map[string]int)
	for _, d := range deliveries {
		s.DeliveriesByStatus[d.Status]++
	}
	return s, nil
}
