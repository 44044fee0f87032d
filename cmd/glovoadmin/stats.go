// Stats command for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard KPIs",
	Long: `Stats prints the record counts per collection, the revenue over
non-cancelled orders, and the status breakdowns.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("stats", err)
		}
		defer st.Close()

		s, err := panel.Stats()
		if err != nil {
			fail("stats", err)
		}

		if flagJSON {
			printJSON(s)
			return nil
		}
		fmt.Printf("Users:      %d\n", s.Users)
		fmt.Printf("Clients:    %d\n", s.Clients)
		fmt.Printf("Products:   %d\n", s.Products)
		fmt.Printf("Orders:     %d\n", s.Orders)
		fmt.Printf("Deliveries: %d\n", s.Deliveries)
		fmt.Printf("Revenue:    %.2f\n", s.Revenue)
		for status, n := range s.OrdersByStatus {
			fmt.Printf("  orders %s: %d\n", status, n)
		}
		for status, n := range s.DeliveriesByStatus {
			fmt.Printf("  deliveries %s: %d\n", status, n)
		}
		return nil
	},
}
