// Delivery commands for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/pkg/types"
)

var deliveryCmd = &cobra.Command{
	Use:   "delivery",
	Short: "Manage courier deliveries",
}

var (
	deliverySearch   string
	deliveryStatus   string
	deliveryDriver   string
	deliverySort     string
	deliveryDesc     bool
	deliveryPage     int
	deliveryPageSize int
)

var deliveryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deliveries",
	Long: `List runs the deliveries list pipeline: filter, sort, paginate.

Example:
  glovoadmin delivery list
  glovoadmin delivery list --status "En cours" --driver "Youssef Benali"
  glovoadmin delivery list --sort duration --desc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("delivery list", err)
		}
		defer st.Close()

		page, err := panel.Deliveries(listState(deliverySearch, deliverySort, deliveryDesc, deliveryPage, deliveryPageSize, map[string]string{
			"status": deliveryStatus,
			"driver": deliveryDriver,
		}))
		if err != nil {
			fail("delivery list", err)
		}

		if flagJSON {
			printJSON(page)
			return nil
		}
		rows := make([][]string, 0, len(page.Records))
		for _, d := range page.Records {
			rows = append(rows, []string{
				fmt.Sprint(d.ID), fmt.Sprint(d.OrderID), truncate(d.Driver, 25),
				truncate(d.Address, 35), d.Status, fmt.Sprint(d.Duration), d.CreatedAt,
			})
		}
		printTable("ID\tORDER\tDRIVER\tADDRESS\tSTATUS\tDURATION\tCREATED", rows, page.Total, page.State.Page, page.State.PageSize)
		return nil
	},
}

var deliveryGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one delivery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("delivery get", err)
		}
		defer st.Close()

		d, err := panel.Delivery(id)
		if err != nil {
			fail("delivery get", err)
		}

		if flagJSON {
			printJSON(d)
		} else {
			fmt.Printf("#%d order=%d driver=%s address=%s status=%s duration=%dmin created=%s\n",
				d.ID, d.OrderID, d.Driver, d.Address, d.Status, d.Duration, d.CreatedAt)
		}
		return nil
	},
}

var (
	deliveryOrderID  int
	deliveryDrv      string
	deliveryAddress  string
	deliveryStat     string
	deliveryDuration int
	deliveryNotes    string
)

var deliveryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new delivery",
	Long: `Add creates a delivery for an order. Status defaults to
"En attente"; when no address is given, the order's address is copied.

Example:
  glovoadmin delivery add --order 3 --driver "Youssef Benali"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("delivery add", err)
		}
		defer st.Close()

		d, err := panel.CreateDelivery(types.Delivery{
			OrderID:  deliveryOrderID,
			Driver:   deliveryDrv,
			Address:  deliveryAddress,
			Status:   deliveryStat,
			Duration: deliveryDuration,
			Notes:    deliveryNotes,
		})
		if err != nil {
			fail("delivery add", err)
		}

		if flagJSON {
			printJSON(d)
		} else {
			fmt.Printf("Created delivery %d for order %d\n", d.ID, d.OrderID)
		}
		return nil
	},
}

var deliveryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a delivery's fields",
	Long: `Update replaces every field of the delivery except the id and the
creation date; the full field set must be provided.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("delivery update", err)
		}
		defer st.Close()

		d, err := panel.UpdateDelivery(id, types.Delivery{
			OrderID:  deliveryOrderID,
			Driver:   deliveryDrv,
			Address:  deliveryAddress,
			Status:   deliveryStat,
			Duration: deliveryDuration,
			Notes:    deliveryNotes,
		})
		if err != nil {
			fail("delivery update", err)
		}

		if flagJSON {
			printJSON(d)
		} else {
			fmt.Printf("Updated delivery %d\n", id)
		}
		return nil
	},
}

var deliveryDeleteYes bool

var deliveryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a delivery (two-phase)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("delivery delete", err)
		}
		defer st.Close()

		panel.RequestDelete(types.CollectionDeliveries, id)
		if !deliveryDeleteYes {
			panel.CancelDelete(types.CollectionDeliveries)
			fmt.Printf("Delivery %d not deleted; re-run with --yes to confirm\n", id)
			return nil
		}
		if err := panel.ConfirmDelete(types.CollectionDeliveries, id); err != nil {
			fail("delivery delete", err)
		}
		fmt.Printf("Deleted delivery %d\n", id)
		return nil
	},
}

var deliveryDriversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List users eligible as drivers",
	Long:  `Drivers lists the users holding the courier role.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("delivery drivers", err)
		}
		defer st.Close()

		drivers, err := panel.DriverCandidates()
		if err != nil {
			fail("delivery drivers", err)
		}

		if flagJSON {
			printJSON(drivers)
			return nil
		}
		for _, u := range drivers {
			fmt.Printf("#%d %s <%s> %s\n", u.ID, u.Name, u.Email, u.Status)
		}
		return nil
	},
}

func init() {
	deliveryListCmd.Flags().StringVar(&deliverySearch, "search", "", "substring search over id, driver and address")
	deliveryListCmd.Flags().StringVar(&deliveryStatus, "status", "", "filter by status (Livrée, En cours, En attente, Échec)")
	deliveryListCmd.Flags().StringVar(&deliveryDriver, "driver", "", "filter by driver name")
	deliveryListCmd.Flags().StringVar(&deliverySort, "sort", "", "sort column (id, orderId, driver, status, duration, createdAt)")
	deliveryListCmd.Flags().BoolVar(&deliveryDesc, "desc", false, "sort descending")
	deliveryListCmd.Flags().IntVar(&deliveryPage, "page", 1, "page number (1-indexed)")
	deliveryListCmd.Flags().IntVar(&deliveryPageSize, "page-size", 0, "records per page (default from config)")

	for _, c := range []*cobra.Command{deliveryAddCmd, deliveryUpdateCmd} {
		c.Flags().IntVar(&deliveryOrderID, "order", 0, "order id")
		c.Flags().StringVar(&deliveryDrv, "driver", "", "driver name")
		c.Flags().StringVar(&deliveryAddress, "address", "", "delivery address (default: the order's)")
		c.Flags().StringVar(&deliveryStat, "status", "", "status (Livrée, En cours, En attente, Échec)")
		c.Flags().IntVar(&deliveryDuration, "duration", 0, "duration in minutes")
		c.Flags().StringVar(&deliveryNotes, "notes", "", "free-form notes")
	}
	_ = deliveryAddCmd.MarkFlagRequired("order")
	_ = deliveryAddCmd.MarkFlagRequired("driver")

	deliveryDeleteCmd.Flags().BoolVar(&deliveryDeleteYes, "yes", false, "confirm the deletion")

	deliveryCmd.AddCommand(deliveryListCmd)
	deliveryCmd.AddCommand(deliveryGetCmd)
	deliveryCmd.AddCommand(deliveryAddCmd)
	deliveryCmd.AddCommand(deliveryUpdateCmd)
	deliveryCmd.AddCommand(deliveryDeleteCmd)
	deliveryCmd.AddCommand(deliveryDriversCmd)
}
