package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var collabCmd = &cobra.Command{
	Use:   "collab",
	Short: "Manage event collaborations (org accounts only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var collabRequestCmd = &cobra.Command{
	Use:   "request <event-id> <to-org-id>",
	Short: "Propose a collaboration on an event",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorOrg)); err != nil {
			return err
		}

		collab, err := a.client.CreateCollabRequest(ctx, model.CreateCollabRequest{
			EventID: args[0],
			ToOrgID: args[1],
			Note:    note,
		})
		if err != nil {
			return err
		}
		return printJSON(collab)
	},
}

var collabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collaboration requests addressed to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorOrg)); err != nil {
			return err
		}

		collabs, err := a.client.ListCollabRequests(ctx, model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(collabs)
	},
}

var collabRespondCmd = &cobra.Command{
	Use:   "respond <request-id>",
	Short: "Accept or reject a collaboration request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		accept, _ := cmd.Flags().GetBool("accept")
		reject, _ := cmd.Flags().GetBool("reject")

		if accept == reject {
			return fmt.Errorf("exactly one of --accept or --reject is required")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorOrg)); err != nil {
			return err
		}

		collab, err := a.client.RespondCollabRequest(ctx, args[0], accept)
		if err != nil {
			return err
		}
		return printJSON(collab)
	},
}

func init() {
	collabRequestCmd.Flags().String("note", "", "message attached to the proposal")
	collabRespondCmd.Flags().Bool("accept", false, "accept the request")
	collabRespondCmd.Flags().Bool("reject", false, "reject the request")

	collabCmd.AddCommand(collabRequestCmd, collabListCmd, collabRespondCmd)
	rootCmd.AddCommand(collabCmd)
}
