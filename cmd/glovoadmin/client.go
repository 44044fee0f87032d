// Client commands for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/pkg/types"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var (
	clientSearch   string
	clientCity     string
	clientType     string
	clientSort     string
	clientDesc     bool
	clientPage     int
	clientPageSize int
)

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	Long: `List runs the clients list pipeline: filter, sort, paginate.

Example:
  glovoadmin client list
  glovoadmin client list --search amina --city Casablanca
  glovoadmin client list --type Entreprise --sort name`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("client list", err)
		}
		defer st.Close()

		page, err := panel.Clients(listState(clientSearch, clientSort, clientDesc, clientPage, clientPageSize, map[string]string{
			"city": clientCity,
			"type": clientType,
		}))
		if err != nil {
			fail("client list", err)
		}

		if flagJSON {
			printJSON(page)
			return nil
		}
		rows := make([][]string, 0, len(page.Records))
		for _, c := range page.Records {
			rows = append(rows, []string{
				fmt.Sprint(c.ID), truncate(c.Name, 30), truncate(c.Email, 30), c.Phone, c.City, c.Type, c.CreatedAt,
			})
		}
		printTable("ID\tNAME\tEMAIL\tPHONE\tCITY\tTYPE\tCREATED", rows, page.Total, page.State.Page, page.State.PageSize)
		return nil
	},
}

var clientGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("client get", err)
		}
		defer st.Close()

		c, err := panel.Client(id)
		if err != nil {
			fail("client get", err)
		}

		if flagJSON {
			printJSON(c)
		} else {
			fmt.Printf("#%d %s <%s> %s, %s (%s) created=%s\n", c.ID, c.Name, c.Email, c.Address, c.City, c.Type, c.CreatedAt)
		}
		return nil
	},
}

var (
	clientAddName    string
	clientAddEmail   string
	clientAddPhone   string
	clientAddAddress string
	clientAddCity    string
	clientAddType    string
)

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new client",
	Long: `Add creates a client. Type defaults to "Particulier".

Example:
  glovoadmin client add --name "Amina Belkadi" --email amina@example.com --city Casablanca`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("client add", err)
		}
		defer st.Close()

		c, err := panel.CreateClient(types.Client{
			Name:    clientAddName,
			Email:   clientAddEmail,
			Phone:   clientAddPhone,
			Address: clientAddAddress,
			City:    clientAddCity,
			Type:    clientAddType,
		})
		if err != nil {
			fail("client add", err)
		}

		if flagJSON {
			printJSON(c)
		} else {
			fmt.Printf("Created client %d\n", c.ID)
		}
		return nil
	},
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a client's fields",
	Long: `Update replaces every field of the client except the id and the
creation date; the full field set must be provided.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("client update", err)
		}
		defer st.Close()

		c, err := panel.UpdateClient(id, types.Client{
			Name:    clientAddName,
			Email:   clientAddEmail,
			Phone:   clientAddPhone,
			Address: clientAddAddress,
			City:    clientAddCity,
			Type:    clientAddType,
		})
		if err != nil {
			fail("client update", err)
		}

		if flagJSON {
			printJSON(c)
		} else {
			fmt.Printf("Updated client %d\n", id)
		}
		return nil
	},
}

var clientDeleteYes bool

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client (two-phase)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("client delete", err)
		}
		defer st.Close()

		panel.RequestDelete(types.CollectionClients, id)
		if !clientDeleteYes {
			panel.CancelDelete(types.CollectionClients)
			fmt.Printf("Client %d not deleted; re-run with --yes to confirm\n", id)
			return nil
		}
		if err := panel.ConfirmDelete(types.CollectionClients, id); err != nil {
			fail("client delete", err)
		}
		fmt.Printf("Deleted client %d\n", id)
		return nil
	},
}

func init() {
	clientListCmd.Flags().StringVar(&clientSearch, "search", "", "substring search over name and email")
	clientListCmd.Flags().StringVar(&clientCity, "city", "", "filter by city")
	clientListCmd.Flags().StringVar(&clientType, "type", "", "filter by type (Particulier, Entreprise)")
	clientListCmd.Flags().StringVar(&clientSort, "sort", "", "sort column (id, name, email, phone, city, type, createdAt)")
	clientListCmd.Flags().BoolVar(&clientDesc, "desc", false, "sort descending")
	clientListCmd.Flags().IntVar(&clientPage, "page", 1, "page number (1-indexed)")
	clientListCmd.Flags().IntVar(&clientPageSize, "page-size", 0, "records per page (default from config)")

	for _, c := range []*cobra.Command{clientAddCmd, clientUpdateCmd} {
		c.Flags().StringVar(&clientAddName, "name", "", "client name")
		c.Flags().StringVar(&clientAddEmail, "email", "", "client email")
		c.Flags().StringVar(&clientAddPhone, "phone", "", "phone number")
		c.Flags().StringVar(&clientAddAddress, "address", "", "street address")
		c.Flags().StringVar(&clientAddCity, "city", "", "city")
		c.Flags().StringVar(&clientAddType, "type", "", "type (Particulier, Entreprise)")
	}
	_ = clientAddCmd.MarkFlagRequired("name")
	_ = clientAddCmd.MarkFlagRequired("email")

	clientDeleteCmd.Flags().BoolVar(&clientDeleteYes, "yes", false, "confirm the deletion")

	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientGetCmd)
	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}
