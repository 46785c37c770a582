package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/client"
	"github.com/sahyog-app/sahyog/internal/model"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search events and organizations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		results, err := a.client.Search(ctx, strings.Join(args, " "), model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(results)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Show typeahead suggestions for a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		done := make(chan []model.Suggestion, 1)
		s := client.NewSuggester(a.client, 0, func(query string, items []model.Suggestion) {
			done <- items
		})
		defer s.Stop()

		s.Input(ctx, args[0])

		select {
		case items := <-done:
			if len(items) == 0 {
				fmt.Println("No suggestions.")
				return nil
			}
			return printJSON(items)
		case <-time.After(10 * time.Second):
			return fmt.Errorf("suggestion request timed out")
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd, suggestCmd)
}
