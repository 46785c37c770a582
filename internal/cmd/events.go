package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and manage events",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published events",
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")
		category, _ := cmd.Flags().GetString("category")
		orgID, _ := cmd.Flags().GetString("org")
		upcoming, _ := cmd.Flags().GetBool("upcoming")
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		events, err := a.client.ListEvents(ctx,
			model.EventFilter{City: city, Category: category, OrgID: orgID, Upcoming: upcoming},
			model.ListOptions{Page: page, Limit: limit},
		)
		if err != nil {
			return err
		}
		return printJSON(events)
	},
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <event-id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		event, err := a.client.GetEvent(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(event)
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event (org accounts only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		city, _ := cmd.Flags().GetString("city")
		venue, _ := cmd.Flags().GetString("venue")
		startStr, _ := cmd.Flags().GetString("start")
		volunteers, _ := cmd.Flags().GetBool("volunteers")
		donations, _ := cmd.Flags().GetBool("donations")
		coverPath, _ := cmd.Flags().GetString("cover")

		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return fmt.Errorf("--start must be RFC 3339, e.g. 2026-10-02T10:00:00+05:30")
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

		req := model.CreateEventRequest{
			Title:            title,
			Description:      description,
			Category:         category,
			City:             city,
			Venue:            venue,
			StartTime:        start,
			NeedsVolunteers:  volunteers,
			AcceptsDonations: donations,
		}
		if coverPath != "" {
			content, err := os.ReadFile(coverPath)
			if err != nil {
				return fmt.Errorf("read cover image: %w", err)
			}
			req.CoverImage = content
			req.CoverImageName = filepath.Base(coverPath)
		}

		event, err := a.client.CreateEvent(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(event)
	},
}

var eventsCancelCmd = &cobra.Command{
	Use:   "cancel <event-id>",
	Short: "Cancel an event (org accounts only)",
	Args:  cobra.ExactArgs(1),
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

		status := model.EventStatusCancelled
		event, err := a.client.UpdateEvent(ctx, args[0], model.UpdateEventRequest{Status: &status})
		if err != nil {
			return err
		}
		return printJSON(event)
	},
}

func init() {
	eventsListCmd.Flags().String("city", "", "filter by city")
	eventsListCmd.Flags().String("category", "", "filter by category")
	eventsListCmd.Flags().String("org", "", "filter by hosting org")
	eventsListCmd.Flags().Bool("upcoming", false, "only upcoming events")
	eventsListCmd.Flags().Int("page", 0, "page number")
	eventsListCmd.Flags().Int("limit", 0, "page size")

	eventsCreateCmd.Flags().String("title", "", "event title")
	eventsCreateCmd.Flags().String("description", "", "event description")
	eventsCreateCmd.Flags().String("category", "", "event category")
	eventsCreateCmd.Flags().String("city", "", "event city")
	eventsCreateCmd.Flags().String("venue", "", "event venue")
	eventsCreateCmd.Flags().String("start", "", "start time, RFC 3339")
	eventsCreateCmd.Flags().Bool("volunteers", false, "event needs volunteers")
	eventsCreateCmd.Flags().Bool("donations", false, "event accepts donations")
	eventsCreateCmd.Flags().String("cover", "", "cover image file")

	eventsCmd.AddCommand(eventsListCmd, eventsShowCmd, eventsCreateCmd, eventsCancelCmd)
	rootCmd.AddCommand(eventsCmd)
}
