package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/client"
	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var participateToggle client.ToggleGuard

var attendCmd = &cobra.Command{
	Use:   "attend <event-id>",
	Short: "Mark yourself as attending an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorUser)); err != nil {
			return err
		}

		err = participateToggle.Do(func() error {
			if undo {
				return a.client.Unattend(ctx, args[0])
			}
			return a.client.Attend(ctx, args[0])
		})
		if err != nil {
			return err
		}

		if undo {
			fmt.Println("Attendance removed.")
		} else {
			fmt.Println("Attending.")
		}
		return nil
	},
}

var volunteerCmd = &cobra.Command{
	Use:   "volunteer <event-id>",
	Short: "Apply to volunteer at an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorUser)); err != nil {
			return err
		}

		err = participateToggle.Do(func() error {
			if undo {
				return a.client.Unvolunteer(ctx, args[0])
			}
			return a.client.Volunteer(ctx, args[0])
		})
		if err != nil {
			return err
		}

		if undo {
			fmt.Println("Volunteer application withdrawn.")
		} else {
			fmt.Println("Volunteer application submitted.")
		}
		return nil
	},
}

var volunteersCmd = &cobra.Command{
	Use:   "volunteers <event-id>",
	Short: "Review volunteer applications (org accounts only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		approve, _ := cmd.Flags().GetString("approve")
		reject, _ := cmd.Flags().GetString("reject")

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.RolesOnly(model.ActorOrg)); err != nil {
			return err
		}

		switch {
		case approve != "":
			if err := a.client.ApproveVolunteer(ctx, args[0], approve); err != nil {
				return err
			}
			fmt.Println("Approved.")
			return nil
		case reject != "":
			if err := a.client.RejectVolunteer(ctx, args[0], reject); err != nil {
				return err
			}
			fmt.Println("Rejected.")
			return nil
		default:
			entries, err := a.client.ListVolunteers(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(entries)
		}
	},
}

func init() {
	attendCmd.Flags().Bool("undo", false, "remove attendance instead")
	volunteerCmd.Flags().Bool("undo", false, "withdraw the application instead")
	volunteersCmd.Flags().String("approve", "", "approve this user's application")
	volunteersCmd.Flags().String("reject", "", "reject this user's application")

	rootCmd.AddCommand(attendCmd, volunteerCmd, volunteersCmd)
}
