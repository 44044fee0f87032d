// Session commands for the glovoadmin CLI: login, logout, whoami.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courierworks/glovoadmin/internal/admin"
	"github.com/courierworks/glovoadmin/pkg/types"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with the configured admin credential",
	Long: `Login checks the email and password against the credential from
config.yaml and persists a session on success.

Example:
  glovoadmin login --email admin@glovoadmin.ma --password admin123`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("login", err)
		}
		defer st.Close()

		creds := admin.Credentials{
			Email:    adminCreds.Email,
			Password: adminCreds.Password,
			Name:     adminCreds.Name,
			Role:     types.RoleAdmin,
		}
		sess, err := panel.Login(creds, loginEmail, loginPassword)
		if err != nil {
			fail("login", err)
		}

		if flagJSON {
			printJSON(sess)
		} else {
			fmt.Printf("Logged in as %s (%s)\n", sess.Name, sess.Role)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("logout", err)
		}
		defer st.Close()

		if err := panel.Logout(); err != nil {
			fail("logout", err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, st, err := openPanel()
		if err != nil {
			fail("whoami", err)
		}
		defer st.Close()

		sess, err := panel.CurrentSession()
		if err != nil {
			fail("whoami", err)
		}
		if sess == nil {
			fail("whoami", types.ErrNotAuthenticated)
		}

		if flagJSON {
			printJSON(sess)
		} else {
			fmt.Printf("%s <%s> role=%s\n", sess.Name, sess.Email, sess.Role)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "login email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "login password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
