package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/client"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the current session",
	Long: `Manage the Sahyog session.

The session token is stored as a single opaque string in a local file and
attached as a bearer credential to authenticated requests.

Subcommands:
  login   Sign in with email and password
  logout  Clear the stored session token
  status  Show who is currently signed in`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to Sahyog",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		actor, err := a.client.Login(ctx, client.Credentials{Email: email, Password: password})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Printf("Signed in as %s (%s)\n", actor.Name, actor.Kind)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		if err := a.client.Logout(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}

		fmt.Println("Signed out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		actor, err := a.client.Verify(ctx)
		if err != nil {
			return err
		}
		if actor == nil {
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("Signed in as %s\n", actor.Name)
		fmt.Printf("Role:  %s\n", actor.Kind)
		fmt.Printf("Email: %s\n", actor.Email)
		if actor.IsVerifiedOrg() {
			fmt.Println("Org:   verified")
		}
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
