package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/client"
	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

// followToggle serializes follow/unfollow so a doubled-up invocation
// cannot interleave.
var followToggle client.ToggleGuard

var followCmd = &cobra.Command{
	Use:   "follow <org-id>",
	Short: "Follow an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorUser)); err != nil {
			return err
		}

		if err := followToggle.Do(func() error {
			return a.client.FollowOrg(ctx, args[0])
		}); err != nil {
			return err
		}
		fmt.Println("Following.")
		return nil
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <org-id>",
	Short: "Unfollow an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorUser)); err != nil {
			return err
		}

		if err := followToggle.Do(func() error {
			return a.client.UnfollowOrg(ctx, args[0])
		}); err != nil {
			return err
		}
		fmt.Println("Unfollowed.")
		return nil
	},
}

var followingCmd = &cobra.Command{
	Use:   "following",
	Short: "List organizations you follow",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorUser)); err != nil {
			return err
		}

		orgs, err := a.client.ListFollowedOrgs(ctx, model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(orgs)
	},
}

func init() {
	rootCmd.AddCommand(followCmd, unfollowCmd, followingCmd)
}
