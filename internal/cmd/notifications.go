package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"inbox"},
	Short:   "Show your notification inbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		unread, _ := cmd.Flags().GetBool("unread")
		countOnly, _ := cmd.Flags().GetBool("count")
		markRead, _ := cmd.Flags().GetString("mark-read")
		markAll, _ := cmd.Flags().GetBool("mark-all-read")

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
		case countOnly:
			count, err := a.client.CountUnread(ctx)
			if err != nil {
				return err
			}
			if count.Capped {
				fmt.Printf("%d+ unread\n", count.Count)
			} else {
				fmt.Printf("%d unread\n", count.Count)
			}
			return nil
		case markAll:
			if err := a.client.MarkAllRead(ctx); err != nil {
				return err
			}
			fmt.Println("All notifications marked read.")
			return nil
		case markRead != "":
			if err := a.client.MarkRead(ctx, markRead); err != nil {
				return err
			}
			fmt.Println("Marked read.")
			return nil
		default:
			items, err := a.client.ListNotifications(ctx, unread, model.ListOptions{})
			if err != nil {
				return err
			}
			return printJSON(items)
		}
	},
}

func init() {
	notificationsCmd.Flags().Bool("unread", false, "only unread notifications")
	notificationsCmd.Flags().Bool("count", false, "print the unread count only")
	notificationsCmd.Flags().String("mark-read", "", "mark one notification read")
	notificationsCmd.Flags().Bool("mark-all-read", false, "mark the whole inbox read")

	rootCmd.AddCommand(notificationsCmd)
}
