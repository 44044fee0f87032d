package admin

import (
	"fmt"

	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Orders runs the list pipeline over the orders collection.
func (p *Panel) Orders(st query.State) (query.Page[types.Order], error) {
	records, err := store.ReadCollection[types.Order](p.store, types.CollectionOrders)
	if err != nil {
		return query.Page[types.Order]{}, err
	}
	return query.Run(records, st, OrderColumns()), nil
}

// Order returns one order by id.
func (p *Panel) Order(id int) (types.Order, error) {
	records, err := store.ReadCollection[types.Order](p.store, types.CollectionOrders)
	if err != nil {
		return types.Order{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		return types.Order{}, fmt.Errorf("%w: order %d", types.ErrNotFound, id)
	}
	return records[i], nil
}

// CreateOrder validates the order, snapshots the client's current name
// into ClientName, allocates the id, stamps the creation date, and appends
// the order. An unresolvable client id is not an error; the snapshot falls
// back to the placeholder.
func (p *Panel) CreateOrder(o types.Order) (types.Order, error) {
	if o.Status == "" {
		o.Status = types.OrderPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = types.PaymentPending
	}
	if err := o.Validate(); err != nil {
		p.notifyInvalid(types.CollectionOrders, err)
		return types.Order{}, err
	}
	o.ClientName = p.ClientDisplayName(o.ClientID)

	records, err := store.ReadCollection[types.Order](p.store, types.CollectionOrders)
	if err != nil {
		return types.Order{}, err
	}
	o.ID = types.NextID(records)
	o.CreatedAt = types.Today()
	records = append(records, o)
	if err := store.WriteCollection(p.store, types.CollectionOrders, records); err != nil {
		return types.Order{}, err
	}
	p.notify.Notify(fmt.Sprintf("order %d created", o.ID), types.SeveritySuccess)
	return o, nil
}

// UpdateOrder merges a partial patch over the stored order; fields absent
// from the patch are preserved. Orders are the one entity updated this
// way — the order form can omit optional fields like notes. When the patch
// moves the order to another client, the ClientName snapshot is refreshed.
func (p *Panel) UpdateOrder(id int, patch types.OrderPatch) (types.Order, error) {
	records, err := store.ReadCollection[types.Order](p.store, types.CollectionOrders)
	if err != nil {
		return types.Order{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		p.notify.Notify(fmt.Sprintf("order %d not found", id), types.SeverityWarning)
		return types.Order{}, fmt.Errorf("%w: order %d", types.ErrNotFound, id)
	}

	merged := patch.Apply(records[i])
	if patch.ClientID != nil {
		merged.ClientName = p.ClientDisplayName(merged.ClientID)
	}
	if err := merged.Validate(); err != nil {
		p.notifyInvalid(types.CollectionOrders, err)
		return types.Order{}, err
	}
	records[i] = merged
	if err := store.WriteCollection(p.store, types.CollectionOrders, records); err != nil {
		return types.Order{}, err
	}
	p.notify.Notify(fmt.Sprintf("order %d updated", id), types.SeveritySuccess)
	return merged, nil
}
