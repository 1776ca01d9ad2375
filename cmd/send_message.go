package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"imessage-sender/messaging"
	"imessage-sender/notifier"
)

type sendFlags struct {
	to        string
	escape    bool
	normalize bool
	region    string
}

func (f *sendFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.to, "to", "", "Recipient phone number or email handle")
	cmd.Flags().BoolVar(&f.escape, "escape", false, "Escape quotes and backslashes before building the script")
	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "Rewrite phone numbers to E.164 before sending")
	cmd.Flags().StringVar(&f.region, "region", "", "Default region for --normalize (e.g. CN, US); defaults to the config value")
}

// prepare builds the client and resolves the recipient exactly as it will be sent.
// Without record the history file is never opened.
func (f *sendFlags) prepare(cmd *cobra.Command, record bool) (*messaging.Client, string, error) {
	if f.to == "" {
		return nil, "", fmt.Errorf("%w (use --to)", messaging.ErrEmptyRecipient)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}

	recipient := f.to
	if f.normalize {
		region := f.region
		if region == "" {
			region = cfg.Region
		}
		recipient = messaging.NormalizeRecipient(recipient, region)
	}

	if !record {
		cfg.HistoryPath = ""
	}
	tmpl := cfg.Template()
	tmpl.Escape = f.escape
	client, err := newClient(cmd, cfg, tmpl)
	if err != nil {
		return nil, "", err
	}
	return client, recipient, nil
}

func newSendMessageCmd() *cobra.Command {
	var flags sendFlags
	var dryRun bool
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "send MESSAGE...",
		Short: "Send a message to a recipient",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			client, recipient, err := flags.prepare(cmd, !dryRun)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), client.Script(recipient, text))
				return nil
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			msg, err := client.Send(ctx, recipient, text)
			if err != nil {
				return err
			}
			notifier.PrintSent(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the script instead of running it")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Kill osascript after this long (0 waits forever)")
	return cmd
}

func newScriptCmd() *cobra.Command {
	var flags sendFlags
	cmd := &cobra.Command{
		Use:   "script MESSAGE...",
		Short: "Print the AppleScript that send would run",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, recipient, err := flags.prepare(cmd, false)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), client.Script(recipient, strings.Join(args, " ")))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
