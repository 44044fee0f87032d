// Order commands for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/pkg/types"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders",
}

var (
	orderSearch   string
	orderStatus   string
	orderPayment  string
	orderSort     string
	orderDesc     bool
	orderPage     int
	orderPageSize int
)

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Long: `List runs the orders list pipeline: filter, sort, paginate. The
free-text search also matches the order id, so "12" finds order 12 and
order 112.

Example:
  glovoadmin order list
  glovoadmin order list --status "En attente" --payment "Payée"
  glovoadmin order list --search amina --sort amount --desc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("order list", err)
		}
		defer st.Close()

		page, err := panel.Orders(listState(orderSearch, orderSort, orderDesc, orderPage, orderPageSize, map[string]string{
			"status":        orderStatus,
			"paymentStatus": orderPayment,
		}))
		if err != nil {
			fail("order list", err)
		}

		if flagJSON {
			printJSON(page)
			return nil
		}
		rows := make([][]string, 0, len(page.Records))
		for _, o := range page.Records {
			rows = append(rows, []string{
				fmt.Sprint(o.ID), truncate(o.ClientName, 25), truncate(o.Products, 30),
				fmt.Sprintf("%.2f", o.Amount), o.Status, o.PaymentStatus, o.CreatedAt,
			})
		}
		printTable("ID\tCLIENT\tPRODUCTS\tAMOUNT\tSTATUS\tPAYMENT\tCREATED", rows, page.Total, page.State.Page, page.State.PageSize)
		return nil
	},
}

var orderGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("order get", err)
		}
		defer st.Close()

		o, err := panel.Order(id)
		if err != nil {
			fail("order get", err)
		}

		if flagJSON {
			printJSON(o)
		} else {
			fmt.Printf("#%d client=%s (%d) products=%s qty=%d amount=%.2f status=%s payment=%s created=%s\n",
				o.ID, o.ClientName, o.ClientID, o.Products, o.Quantity, o.Amount, o.Status, o.PaymentStatus, o.CreatedAt)
			if o.Notes != "" {
				fmt.Println("notes:", o.Notes)
			}
		}
		return nil
	},
}

var (
	orderClientID int
	orderProducts string
	orderQuantity int
	orderAmount   float64
	orderStat     string
	orderPay      string
	orderAddress  string
	orderNotes    string
)

var orderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new order",
	Long: `Add creates an order for a client. Status and payment default to
"En attente". The client's current name is snapshotted into the order.

Example:
  glovoadmin order add --client 1 --products "Couscous royal" --quantity 1 --amount 85`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("order add", err)
		}
		defer st.Close()

		o, err := panel.CreateOrder(types.Order{
			ClientID:      orderClientID,
			Products:      orderProducts,
			Quantity:      orderQuantity,
			Amount:        orderAmount,
			Status:        orderStat,
			PaymentStatus: orderPay,
			Address:       orderAddress,
			Notes:         orderNotes,
		})
		if err != nil {
			fail("order add", err)
		}

		if flagJSON {
			printJSON(o)
		} else {
			fmt.Printf("Created order %d for %s\n", o.ID, o.ClientName)
		}
		return nil
	},
}

var orderUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Patch an order's fields",
	Long: `Update applies a partial patch: only the flags given change; every
other field keeps its stored value. Moving the order to another client
refreshes the stored client name.

Example:
  glovoadmin order update 3 --status "Livrée" --payment "Payée"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		var patch types.OrderPatch
		if cmd.Flags().Changed("client") {
			patch.ClientID = &orderClientID
		}
		if cmd.Flags().Changed("products") {
			patch.Products = &orderProducts
		}
		if cmd.Flags().Changed("quantity") {
			patch.Quantity = &orderQuantity
		}
		if cmd.Flags().Changed("amount") {
			patch.Amount = &orderAmount
		}
		if cmd.Flags().Changed("status") {
			patch.Status = &orderStat
		}
		if cmd.Flags().Changed("payment") {
			patch.PaymentStatus = &orderPay
		}
		if cmd.Flags().Changed("address") {
			patch.Address = &orderAddress
		}
		if cmd.Flags().Changed("notes") {
			patch.Notes = &orderNotes
		}

		panel, st, err := openPanel()
		if err != nil {
			fail("order update", err)
		}
		defer st.Close()

		o, err := panel.UpdateOrder(id, patch)
		if err != nil {
			fail("order update", err)
		}

		if flagJSON {
			printJSON(o)
		} else {
			fmt.Printf("Updated order %d\n", id)
		}
		return nil
	},
}

var orderDeleteYes bool

var orderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order (two-phase)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("order delete", err)
		}
		defer st.Close()

		panel.RequestDelete(types.CollectionOrders, id)
		if !orderDeleteYes {
			panel.CancelDelete(types.CollectionOrders)
			fmt.Printf("Order %d not deleted; re-run with --yes to confirm\n", id)
			return nil
		}
		if err := panel.ConfirmDelete(types.CollectionOrders, id); err != nil {
			fail("order delete", err)
		}
		fmt.Printf("Deleted order %d\n", id)
		return nil
	},
}

var orderChoicesCmd = &cobra.Command{
	Use:   "choices",
	Short: "List orders as delivery-assignment choices",
	Long: `Choices lists the orders as assignment picker entries, sorted by
client name with French collation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("order choices", err)
		}
		defer st.Close()

		choices, err := panel.OrderChoices()
		if err != nil {
			fail("order choices", err)
		}

		if flagJSON {
			printJSON(choices)
			return nil
		}
		for _, c := range choices {
			fmt.Println(c.Label)
		}
		return nil
	},
}

func init() {
	orderListCmd.Flags().StringVar(&orderSearch, "search", "", "substring search over id, client name and products")
	orderListCmd.Flags().StringVar(&orderStatus, "status", "", "filter by status (Livrée, En cours, En attente, Annulée)")
	orderListCmd.Flags().StringVar(&orderPayment, "payment", "", "filter by payment status (Payée, En attente, Remboursée)")
	orderListCmd.Flags().StringVar(&orderSort, "sort", "", "sort column (id, clientName, amount, status, createdAt, ...)")
	orderListCmd.Flags().BoolVar(&orderDesc, "desc", false, "sort descending")
	orderListCmd.Flags().IntVar(&orderPage, "page", 1, "page number (1-indexed)")
	orderListCmd.Flags().IntVar(&orderPageSize, "page-size", 0, "records per page (default from config)")

	for _, c := range []*cobra.Command{orderAddCmd, orderUpdateCmd} {
		c.Flags().IntVar(&orderClientID, "client", 0, "client id")
		c.Flags().StringVar(&orderProducts, "products", "", "ordered products description")
		c.Flags().IntVar(&orderQuantity, "quantity", 0, "total quantity")
		c.Flags().Float64Var(&orderAmount, "amount", 0, "order amount")
		c.Flags().StringVar(&orderStat, "status", "", "order status (Livrée, En cours, En attente, Annulée)")
		c.Flags().StringVar(&orderPay, "payment", "", "payment status (Payée, En attente, Remboursée)")
		c.Flags().StringVar(&orderAddress, "address", "", "delivery address")
		c.Flags().StringVar(&orderNotes, "notes", "", "free-form notes")
	}
	_ = orderAddCmd.MarkFlagRequired("client")
	_ = orderAddCmd.MarkFlagRequired("products")
	_ = orderAddCmd.MarkFlagRequired("amount")

	orderDeleteCmd.Flags().BoolVar(&orderDeleteYes, "yes", false, "confirm the deletion")

	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderGetCmd)
	orderCmd.AddCommand(orderAddCmd)
	orderCmd.AddCommand(orderUpdateCmd)
	orderCmd.AddCommand(orderDeleteCmd)
	orderCmd.AddCommand(orderChoicesCmd)
}
