package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var donateCmd = &cobra.Command{
	Use:   "donate <event-id> <amount-rupees>",
	Short: "Donate to an event",
	Long: `Donate to an event. The amount is given in rupees and may carry up
to two decimal places; it is transmitted to the payment gateway in paise.

Example:
  sahyog donate evt_123 250
  sahyog donate evt_123 19.99 --note "Good cause"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")
		anonymous, _ := cmd.Flags().GetBool("anonymous")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.Authenticated()); err != nil {
			return err
		}

		order, err := a.client.CreatePaymentOrder(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Payment order %s created for ₹%s\n", order.OrderID, model.RupeesFromPaise(order.AmountPaise))

		donation, err := a.client.CreateDonation(ctx, model.CreateDonationRequest{
			EventID:      args[0],
			AmountRupees: args[1],
			Note:         note,
			Anonymous:    anonymous,
		})
		if err != nil {
			return err
		}
		return printJSON(donation)
	},
}

var donationsCmd = &cobra.Command{
	Use:   "donations",
	Short: "List donations",
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, _ := cmd.Flags().GetString("event")
		userID, _ := cmd.Flags().GetString("user")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.Authenticated()); err != nil {
			return err
		}

		switch {
		case eventID != "":
			donations, err := a.client.ListEventDonations(ctx, eventID, model.ListOptions{})
			if err != nil {
				return err
			}
			return printJSON(donations)
		case userID != "":
			donations, err := a.client.ListUserDonations(ctx, userID, model.ListOptions{})
			if err != nil {
				return err
			}
			return printJSON(donations)
		default:
			return fmt.Errorf("one of --event or --user is required")
		}
	},
}

func init() {
	donateCmd.Flags().String("note", "", "message attached to the donation")
	donateCmd.Flags().Bool("anonymous", false, "hide your name from the org")

	donationsCmd.Flags().String("event", "", "list donations to this event")
	donationsCmd.Flags().String("user", "", "list donations by this user")

	rootCmd.AddCommand(donateCmd, donationsCmd)
}
