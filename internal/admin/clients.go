package admin

import (
	"fmt"

	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Clients runs the list pipeline over the clients collection.
func (p *Panel) Clients(st query.State) (query.Page[types.Client], error) {
	records, err := store.ReadCollection[types.Client](p.store, types.CollectionClients)
	if err != nil {
		return query.Page[types.Client]{}, err
	}
	return query.Run(records, st, ClientColumns()), nil
}

// Client returns one client by id.
func (p *Panel) Client(id int) (types.Client, error) {
	records, err := store.ReadCollection[types.Client](p.store, types.CollectionClients)
	if err != nil {
		return types.Client{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		return types.Client{}, fmt.Errorf("%w: client %d", types.ErrNotFound, id)
	}
	return records[i], nil
}

// CreateClient validates the client, allocates its id, stamps the creation
// date, and appends it to the collection.
func (p *Panel) CreateClient(c types.Client) (types.Client, error) {
	if c.Type == "" {
		c.Type = types.ClientParticulier
	}
	if err := c.Validate(); err != nil {
		p.notifyInvalid(types.CollectionClients, err)
		return types.Client{}, err
	}
	records, err := store.ReadCollection[types.Client](p.store, types.CollectionClients)
	if err != nil {
		return types.Client{}, err
	}
	c.ID = types.NextID(records)
	c.CreatedAt = types.Today()
	records = append(records, c)
	if err := store.WriteCollection(p.store, types.CollectionClients, records); err != nil {
		return types.Client{}, err
	}
	p.notify.Notify(fmt.Sprintf("client %d created", c.ID), types.SeveritySuccess)
	return c, nil
}

// UpdateClient replaces every field of the stored client except the id and
// the creation date. Orders that denormalized this client's name keep
// their snapshot; that is intentional.
func (p *Panel) UpdateClient(id int, c types.Client) (types.Client, error) {
	if err := c.Validate(); err != nil {
		p.notifyInvalid(types.CollectionClients, err)
		return types.Client{}, err
	}
	records, err := store.ReadCollection[types.Client](p.store, types.CollectionClients)
	if err != nil {
		return types.Client{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		p.notify.Notify(fmt.Sprintf("client %d not found", id), types.SeverityWarning)
		return types.Client{}, fmt.Errorf("%w: client %d", types.ErrNotFound, id)
	}
	c.ID = id
	c.CreatedAt = records[i].CreatedAt
	records[i] = c
	if err := store.WriteCollection(p.store, types.CollectionClients, records); err != nil {
		return types.Client{}, err
	}
	p.notify.Notify(fmt.Sprintf("client %d updated", id), types.SeveritySuccess)
	return c, nil
}
