package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Script renders the AppleScript that Send would run, without running it.
func (c *Client) Script(recipient, text string) string {
	return c.template.Render(recipient, text)
}

// Send hands text to Messages.app for delivery to recipient. Neither argument
// is validated or escaped. Success only means osascript exited cleanly;
// delivery itself is never confirmed. Every call sends again.
func (c *Client) Send(ctx context.Context, recipient, text string) (Message, error) {
	if c.runner == nil {
		return Message{}, ErrRunnerNotConfigured
	}

	script := c.Script(recipient, text)
	log := c.log.With().Str("recipient", recipient).Str("service", c.template.Service()).Logger()
	log.Debug().Str("script", script).Msg("Running send script")

	output, err := c.runner.Run(ctx, script)
	if err != nil {
		return Message{}, fmt.Errorf("failed to send message to %s: %w", recipient, err)
	}
	if len(output) > 0 {
		log.Debug().Bytes("output", output).Msg("osascript output")
	}

	msg := Message{
		ID:          uuid.NewString(),
		Recipient:   recipient,
		Scheme:      ParseRecipient(recipient).Scheme,
		Text:        text,
		ServiceType: c.template.Service(),
		SentAt:      time.Now(),
	}
	log.Info().Str("message_id", msg.ID).Msg("Message handed to Messages")

	if err := c.store.Append(msg); err != nil {
		return msg, fmt.Errorf("message sent but not recorded: %w", err)
	}
	return msg, nil
}
