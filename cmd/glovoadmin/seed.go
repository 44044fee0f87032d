// Seed command for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed empty collections with demo data",
	Long: `Seed writes demo records into every empty collection. Collections
that already hold records are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("seed", err)
		}
		defer st.Close()

		if err := panel.Seed(); err != nil {
			fail("seed", err)
		}
		fmt.Println("Demo data seeded")
		return nil
	},
}
