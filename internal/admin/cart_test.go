package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courierworks/glovoadmin/pkg/types"
)

func TestAddToCart(t *testing.T) {
	p, _ := newTestPanel(t)

	items, err := p.AddToCart(types.CartItem{Name: "Thé à la menthe", Price: 12, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	t.Run("same name merges quantities", func(t *testing.T) {
		items, err := p.AddToCart(types.CartItem{Name: "Thé à la menthe", Price: 14, Quantity: 3})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, 14.0, items[0].Price, "newer price wins")
	})

	t.Run("different name appends", func(t *testing.T) {
		items, err := p.AddToCart(types.CartItem{Name: "Couscous", Price: 85})
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, 1, items[1].Quantity, "quantity below 1 becomes 1")
	})
}

func TestRemoveFromCart(t *testing.T) {
	p, _ := newTestPanel(t)

	_, err := p.AddToCart(types.CartItem{Name: "Thé", Price: 12, Quantity: 1})
	require.NoError(t, err)
	_, err = p.AddToCart(types.CartItem{Name: "Couscous", Price: 85, Quantity: 1})
	require.NoError(t, err)

	items, err := p.RemoveFromCart("Thé")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Couscous", items[0].Name)

	t.Run("removing an absent item changes nothing", func(t *testing.T) {
		items, err := p.RemoveFromCart("Pastilla")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestCartTotal(t *testing.T) {
	items := []types.CartItem{
		{Name: "Thé", Price: 12, Quantity: 3},
		{Name: "Couscous", Price: 85, Quantity: 1},
	}
	assert.Equal(t, 121.0, CartTotal(items))
	assert.Zero(t, CartTotal(nil))
}
