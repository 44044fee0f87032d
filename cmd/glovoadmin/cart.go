// Cart commands for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/internal/admin"
	"github.com/courierworks/glovoadmin/pkg/types"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents and total",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("cart show", err)
		}
		defer st.Close()

		items, err := panel.Cart()
		if err != nil {
			fail("cart show", err)
		}

		if flagJSON {
			printJSON(items)
			return nil
		}
		if len(items) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}
		for _, it := range items {
			fmt.Printf("%s x%d @ %.2f = %.2f\n", it.Name, it.Quantity, it.Price, it.Price*float64(it.Quantity))
		}
		fmt.Printf("Total: %.2f\n", admin.CartTotal(items))
		return nil
	},
}

var (
	cartItemName  string
	cartItemPrice float64
	cartItemQty   int
)

var cartAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the cart",
	Long: `Add puts an item in the cart, merging quantities when the same
product name is already present.

Example:
  glovoadmin cart add --name "Thé à la menthe" --price 12 --quantity 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("cart add", err)
		}
		defer st.Close()

		items, err := panel.AddToCart(types.CartItem{
			Name:     cartItemName,
			Price:    cartItemPrice,
			Quantity: cartItemQty,
		})
		if err != nil {
			fail("cart add", err)
		}

		if flagJSON {
			printJSON(items)
		} else {
			fmt.Printf("Added %s; cart holds %d item(s)\n", cartItemName, len(items))
		}
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an item from the cart by product name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("cart remove", err)
		}
		defer st.Close()

		items, err := panel.RemoveFromCart(args[0])
		if err != nil {
			fail("cart remove", err)
		}

		if flagJSON {
			printJSON(items)
		} else {
			fmt.Printf("Removed %s; cart holds %d item(s)\n", args[0], len(items))
		}
		return nil
	},
}

func init() {
	cartAddCmd.Flags().StringVar(&cartItemName, "name", "", "product name (required)")
	cartAddCmd.Flags().Float64Var(&cartItemPrice, "price", 0, "unit price")
	cartAddCmd.Flags().IntVar(&cartItemQty, "quantity", 1, "quantity")
	_ = cartAddCmd.MarkFlagRequired("name")

	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}
