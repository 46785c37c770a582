package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative actions (admin accounts only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminUnverifiedCmd = &cobra.Command{
	Use:   "unverified",
	Short: "List organizations awaiting verification",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorAdmin)); err != nil {
			return err
		}

		orgs, err := a.client.ListUnverifiedOrgs(ctx, model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(orgs)
	},
}

var adminDocsCmd = &cobra.Command{
	Use:   "docs <org-id>",
	Short: "List an org's verification documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorAdmin)); err != nil {
			return err
		}

		docs, err := a.client.ListOrgDocs(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(docs)
	},
}

var adminVerifyCmd = &cobra.Command{
	Use:   "verify <org-id>",
	Short: "Approve or revoke an org's verified status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		revoke, _ := cmd.Flags().GetBool("revoke")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorAdmin)); err != nil {
			return err
		}

		org, err := a.client.VerifyOrg(ctx, args[0], !revoke)
		if err != nil {
			return err
		}

		if org.Verified {
			fmt.Printf("%s is now verified.\n", org.Name)
		} else {
			fmt.Printf("%s is no longer verified.\n", org.Name)
		}
		return nil
	},
}

func init() {
	adminVerifyCmd.Flags().Bool("revoke", false, "revoke verification instead of granting it")

	adminCmd.AddCommand(adminUnverifiedCmd, adminDocsCmd, adminVerifyCmd)
	rootCmd.AddCommand(adminCmd)
}
