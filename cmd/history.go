package cmd

import (
	"github.com/spf13/cobra"

	"imessage-sender/applescript"
	"imessage-sender/notifier"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List messages sent so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			client, err := newClient(cmd, cfg, applescript.Template{})
			if err != nil {
				return err
			}
			sent, err := client.History()
			if err != nil {
				return err
			}
			notifier.PrintHistory(cmd.OutOrStdout(), sent)
			return nil
		},
	}
}
