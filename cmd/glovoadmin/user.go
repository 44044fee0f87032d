// User commands for the glovoadmin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/pkg/types"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage back-office users",
}

var (
	userSearch   string
	userRole     string
	userStatus   string
	userSort     string
	userDesc     bool
	userPage     int
	userPageSize int
)

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Long: `List runs the users list pipeline: filter, sort, paginate.

Example:
  glovoadmin user list
  glovoadmin user list --search karim --role Livreur
  glovoadmin user list --sort name --desc --page 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("user list", err)
		}
		defer st.Close()

		page, err := panel.Users(listState(userSearch, userSort, userDesc, userPage, userPageSize, map[string]string{
			"role":   userRole,
			"status": userStatus,
		}))
		if err != nil {
			fail("user list", err)
		}

		if flagJSON {
			printJSON(page)
			return nil
		}
		rows := make([][]string, 0, len(page.Records))
		for _, u := range page.Records {
			rows = append(rows, []string{
				fmt.Sprint(u.ID), truncate(u.Name, 30), truncate(u.Email, 30), u.Role, u.Status, u.CreatedAt,
			})
		}
		printTable("ID\tNAME\tEMAIL\tROLE\tSTATUS\tCREATED", rows, page.Total, page.State.Page, page.State.PageSize)
		return nil
	},
}

var userGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("user get", err)
		}
		defer st.Close()

		u, err := panel.User(id)
		if err != nil {
			fail("user get", err)
		}

		if flagJSON {
			printJSON(u)
		} else {
			fmt.Printf("#%d %s <%s> role=%s status=%s created=%s\n", u.ID, u.Name, u.Email, u.Role, u.Status, u.CreatedAt)
		}
		return nil
	},
}

var (
	userAddName   string
	userAddEmail  string
	userAddRole   string
	userAddStatus string
)

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new user",
	Long: `Add creates a user. Status defaults to "Actif".

Example:
  glovoadmin user add --name "Karim Alaoui" --email karim@glovoadmin.ma --role Admin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("user add", err)
		}
		defer st.Close()

		u, err := panel.CreateUser(types.User{
			Name:   userAddName,
			Email:  userAddEmail,
			Role:   userAddRole,
			Status: userAddStatus,
		})
		if err != nil {
			fail("user add", err)
		}

		if flagJSON {
			printJSON(u)
		} else {
			fmt.Printf("Created user %d\n", u.ID)
		}
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a user's fields",
	Long: `Update replaces every field of the user except the id and the
creation date; the full field set must be provided.

Example:
  glovoadmin user update 3 --name "Salma Idrissi" --email salma@glovoadmin.ma --role Livreur --status Inactif`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("user update", err)
		}
		defer st.Close()

		u, err := panel.UpdateUser(id, types.User{
			Name:   userAddName,
			Email:  userAddEmail,
			Role:   userAddRole,
			Status: userAddStatus,
		})
		if err != nil {
			fail("user update", err)
		}

		if flagJSON {
			printJSON(u)
		} else {
			fmt.Printf("Updated user %d\n", id)
		}
		return nil
	},
}

var userDeleteYes bool

var userDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user (two-phase)",
	Long: `Delete marks the user for deletion and, with --yes, confirms and
removes it. Without --yes nothing is removed.

Example:
  glovoadmin user delete 5 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])

		panel, st, err := openPanel()
		if err != nil {
			fail("user delete", err)
		}
		defer st.Close()

		panel.RequestDelete(types.CollectionUsers, id)
		if !userDeleteYes {
			panel.CancelDelete(types.CollectionUsers)
			fmt.Printf("User %d not deleted; re-run with --yes to confirm\n", id)
			return nil
		}
		if err := panel.ConfirmDelete(types.CollectionUsers, id); err != nil {
			fail("user delete", err)
		}
		fmt.Printf("Deleted user %d\n", id)
		return nil
	},
}

func init() {
	userListCmd.Flags().StringVar(&userSearch, "search", "", "substring search over name and email")
	userListCmd.Flags().StringVar(&userRole, "role", "", "filter by role (Admin, Livreur, Client, Manager)")
	userListCmd.Flags().StringVar(&userStatus, "status", "", "filter by status (Actif, Inactif)")
	userListCmd.Flags().StringVar(&userSort, "sort", "", "sort column (id, name, email, role, status, createdAt)")
	userListCmd.Flags().BoolVar(&userDesc, "desc", false, "sort descending")
	userListCmd.Flags().IntVar(&userPage, "page", 1, "page number (1-indexed)")
	userListCmd.Flags().IntVar(&userPageSize, "page-size", 0, "records per page (default from config)")

	for _, c := range []*cobra.Command{userAddCmd, userUpdateCmd} {
		c.Flags().StringVar(&userAddName, "name", "", "user name")
		c.Flags().StringVar(&userAddEmail, "email", "", "user email")
		c.Flags().StringVar(&userAddRole, "role", "", "role (Admin, Livreur, Client, Manager)")
		c.Flags().StringVar(&userAddStatus, "status", "", "status (Actif, Inactif)")
	}
	_ = userAddCmd.MarkFlagRequired("name")
	_ = userAddCmd.MarkFlagRequired("email")
	_ = userAddCmd.MarkFlagRequired("role")

	userDeleteCmd.Flags().BoolVar(&userDeleteYes, "yes", false, "confirm the deletion")

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)
}
