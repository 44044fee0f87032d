// Package main provides the glovoadmin CLI, the command-line admin panel
// for the delivery back office: users, clients, products, orders and
// deliveries over a local store.
package main

func main() {
	// Commands call os.Exit with the proper code themselves; Execute only
	// returns for cobra-level errors (unknown command, bad flags).
	if err := rootCmd.Execute(); err != nil {
		exitWith(exitUserError, err)
	}
}
