package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Browse organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var orgsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		orgs, err := a.client.ListOrgs(ctx, city, model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(orgs)
	},
}

var orgsShowCmd = &cobra.Command{
	Use:   "show <org-id>",
	Short: "Show one organization with its rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		org, err := a.client.GetOrg(ctx, args[0])
		if err != nil {
			return err
		}

		rating, err := a.client.GetOrgRating(ctx, args[0])
		if err != nil {
			return err
		}

		return printJSON(map[string]any{
			"org":    org,
			"rating": rating.DisplayStars(),
			"count":  rating.Count,
		})
	},
}

// homeCmd is the user home feed. Org actors are pushed to the dashboard
// instead; the redirect flag is checked before the role allow-list.
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show your home feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		rule := guard.RolesOnly(model.ActorUser)
		rule.RedirectToDashboard = true

		decision, err := a.guard.Check(ctx, rule)
		if err != nil {
			return err
		}
		if !decision.Allow {
			if decision.RedirectPath == guard.DashboardPath {
				return fmt.Errorf("org accounts use the dashboard: run 'sahyog dashboard'")
			}
			return fmt.Errorf("not signed in; run 'sahyog auth login'")
		}

		events, err := a.client.ListEvents(ctx, model.EventFilter{Upcoming: true}, model.ListOptions{Limit: 10})
		if err != nil {
			return err
		}
		return printJSON(events)
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the org dashboard (org accounts only)",
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

		dash, err := a.client.GetOrgDashboard(ctx)
		if err != nil {
			return err
		}
		return printJSON(dash)
	},
}

func init() {
	orgsListCmd.Flags().String("city", "", "filter by city")

	orgsCmd.AddCommand(orgsListCmd, orgsShowCmd)
	rootCmd.AddCommand(orgsCmd, homeCmd, dashboardCmd)
}
