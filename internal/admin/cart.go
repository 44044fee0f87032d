package admin

import (
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Cart returns the public-facing shopping cart. The cart is a plain item
// list keyed by product name, unrelated to the admin collections.
func (p *Panel) Cart() ([]types.CartItem, error) {
	return store.ReadCollection[types.CartItem](p.store, types.KeyCart)
}

// AddToCart adds an item, merging quantities when the same product name is
// already present (the newer price wins).
func (p *Panel) AddToCart(item types.CartItem) ([]types.CartItem, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	items, err := p.Cart()
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range items {
		if items[i].Name == item.Name {
			items[i].Quantity += item.Quantity
			items[i].Price = item.Price
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	if err := store.WriteCollection(p.store, types.KeyCart, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromCart drops the item with the given product name. Removing an
// absent item leaves the cart unchanged.
func (p *Panel) RemoveFromCart(name string) ([]types.CartItem, error) {
	items, err := p.Cart()
	if err != nil {
		return nil, err
	}
	out := items[:0]
	for _, it := range items {
		if it.Name != name {
			out = append(out, it)
		}
	}
	if err := store.WriteCollection(p.store, types.KeyCart, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CartTotal sums price times quantity over the items.
func CartTotal(items []types.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
