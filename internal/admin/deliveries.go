package admin

import (
	"fmt"

	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Deliveries runs the list pipeline over the deliveries collection.
func (p *Panel) Deliveries(st query.State) (query.Page[types.Delivery], error) {
	records, err := store.ReadCollection[types.Delivery](p.store, types.CollectionDeliveries)
	if err != nil {
		return query.Page[types.Delivery]{}, err
	}
	return query.Run(records, st, DeliveryColumns()), nil
}

// Delivery returns one delivery by id.
func (p *Panel) Delivery(id int) (types.Delivery, error) {
	records, err := store.ReadCollection[types.Delivery](p.store, types.CollectionDeliveries)
	if err != nil {
		return types.Delivery{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		return types.Delivery{}, fmt.Errorf("%w: delivery %d", types.ErrNotFound, id)
	}
	return records[i], nil
}

// CreateDelivery validates the delivery, copies the order's address when
// none is given, allocates the id, stamps the date, and appends it. The
// order and driver references stay soft; a missing order only means no
// address to copy.
func (p *Panel) CreateDelivery(d types.Delivery) (types.Delivery, error) {
	if d.Status == "" {
		d.Status = types.DeliveryPending
	}
	if err := d.Validate(); err != nil {
		p.notifyInvalid(types.CollectionDeliveries, err)
		return types.Delivery{}, err
	}
	if d.Address == "" {
		if o, err := p.Order(d.OrderID); err == nil {
			d.Address = o.Address
		}
	}

	records, err := store.ReadCollection[types.Delivery](p.store, types.CollectionDeliveries)
	if err != nil {
		return types.Delivery{}, err
	}
	d.ID = types.NextID(records)
	d.CreatedAt = types.Today()
	records = append(records, d)
	if err := store.WriteCollection(p.store, types.CollectionDeliveries, records); err != nil {
		return types.Delivery{}, err
	}
	p.notify.Notify(fmt.Sprintf("delivery %d created", d.ID), types.SeveritySuccess)
	return d, nil
}

// UpdateDelivery replaces every field of the stored delivery except the id
// and the date; the delivery form always submits the full field set.
func (p *Panel) UpdateDelivery(id int, d types.Delivery) (types.Delivery, error) {
	if err := d.Validate(); err != nil {
		p.notifyInvalid(types.CollectionDeliveries, err)
		return types.Delivery{}, err
	}
	records, err := store.ReadCollection[types.Delivery](p.store, types.CollectionDeliveries)
	if err != nil {
		return types.Delivery{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		p.notify.Notify(fmt.Sprintf("delivery %d not found", id), types.SeverityWarning)
		return types.Delivery{}, fmt.Errorf("%w: delivery %d", types.ErrNotFound, id)
	}
	d.ID = id
	d.CreatedAt = records[i].CreatedAt
	records[i] = d
	if err := store.WriteCollection(p.store, types.CollectionDeliveries, records); err != nil {
		return types.Delivery{}, err
	}
	p.notify.Notify(fmt.Sprintf("delivery %d updated", id), types.SeveritySuccess)
	return d, nil
}
