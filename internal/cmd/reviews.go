package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var reviewCmd = &cobra.Command{
	Use:   "review <org-id> <stars>",
	Short: "Leave a star review on an organization",
	Long: `Leave a star review on an organization. Stars run from 0.5 to 5 in
half-star steps.

Example:
  sahyog review org_42 4.5 --comment "Well run drive"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		comment, _ := cmd.Flags().GetString("comment")
		eventID, _ := cmd.Flags().GetString("event")

		stars, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorUser)); err != nil {
			return err
		}

		review, err := a.client.CreateReview(ctx, model.CreateReviewRequest{
			OrgID:   args[0],
			Stars:   stars,
			Comment: comment,
			EventID: eventID,
		})
		if err != nil {
			return err
		}
		return printJSON(review)
	},
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews <org-id>",
	Short: "List an organization's reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		reviews, err := a.client.ListOrgReviews(ctx, args[0], model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(reviews)
	},
}

func init() {
	reviewCmd.Flags().String("comment", "", "review comment")
	reviewCmd.Flags().String("event", "", "event the review refers to")

	rootCmd.AddCommand(reviewCmd, reviewsCmd)
}
