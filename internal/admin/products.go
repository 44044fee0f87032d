package admin

import (
	"fmt"

	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Products runs the list pipeline over the products collection.
func (p *Panel) Products(st query.State) (query.Page[types.Product], error) {
	records, err := store.ReadCollection[types.Product](p.store, types.CollectionProducts)
	if err != nil {
		return query.Page[types.Product]{}, err
	}
	return query.Run(records, st, ProductColumns()), nil
}

// Product returns one product by id.
func (p *Panel) Product(id int) (types.Product, error) {
	records, err := store.ReadCollection[types.Product](p.store, types.CollectionProducts)
	if err != nil {
		return types.Product{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		return types.Product{}, fmt.Errorf("%w: product %d", types.ErrNotFound, id)
	}
	return records[i], nil
}

// CreateProduct validates the product, allocates its id, and appends it to
// the collection. Products carry no creation date.
func (p *Panel) CreateProduct(pr types.Product) (types.Product, error) {
	if err := pr.Validate(); err != nil {
		p.notifyInvalid(types.CollectionProducts, err)
		return types.Product{}, err
	}
	records, err := store.ReadCollection[types.Product](p.store, types.CollectionProducts)
	if err != nil {
		return types.Product{}, err
	}
	pr.ID = types.NextID(records)
	records = append(records, pr)
	if err := store.WriteCollection(p.store, types.CollectionProducts, records); err != nil {
		return types.Product{}, err
	}
	p.notify.Notify(fmt.Sprintf("product %d created", pr.ID), types.SeveritySuccess)
	return pr, nil
}

// UpdateProduct replaces every field of the stored product except the id;
// the product form always submits the full field set.
func (p *Panel) UpdateProduct(id int, pr types.Product) (types.Product, error) {
	if err := pr.Validate(); err != nil {
		p.notifyInvalid(types.CollectionProducts, err)
		return types.Product{}, err
	}
	records, err := store.ReadCollection[types.Product](p.store, types.CollectionProducts)
	if err != nil {
		return types.Product{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		p.notify.Notify(fmt.Sprintf("product %d not found", id), types.SeverityWarning)
		return types.Product{}, fmt.Errorf("%w: product %d", types.ErrNotFound, id)
	}
	pr.ID = id
	records[i] = pr
	if err := store.WriteCollection(p.store, types.CollectionProducts, records); err != nil {
		return types.Product{}, err
	}
	p.notify.Notify(fmt.Sprintf("product %d updated", id), types.SeveritySuccess)
	return pr, nil
}
