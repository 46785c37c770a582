package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sahyog-app/sahyog/internal/guard"
	"github.com/sahyog-app/sahyog/internal/model"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.Authenticated()); err != nil {
			return err
		}

		convos, err := a.client.ListConversations(ctx, model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(convos)
	},
}

var chatOpenCmd = &cobra.Command{
	Use:   "open <org-id>",
	Short: "Open (or create) a conversation with an org",
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

		convo, err := a.client.OpenConversation(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(convo)
	},
}

var chatMessagesCmd = &cobra.Command{
	Use:   "messages <conversation-id>",
	Short: "Show the messages in a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.Authenticated()); err != nil {
			return err
		}

		msgs, err := a.client.ListMessages(ctx, args[0], model.ListOptions{})
		if err != nil {
			return err
		}
		return printJSON(msgs)
	},
}

var chatSendCmd = &cobra.Command{
	Use:   "send <conversation-id> <message...>",
	Short: "Send a message",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := requireRole(ctx, a, guard.Authenticated()); err != nil {
			return err
		}

		msg, err := a.client.SendMessage(ctx, model.SendMessageRequest{
			ConversationID: args[0],
			Body:           joinArgs(args[1:]),
		})
		if err != nil {
			return err
		}
		return printJSON(msg)
	},
}

func init() {
	chatCmd.AddCommand(chatListCmd, chatOpenCmd, chatMessagesCmd, chatSendCmd)
	rootCmd.AddCommand(chatCmd)
}
