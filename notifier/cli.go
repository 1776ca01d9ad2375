package notifier

import (
	"fmt"
	"io"
	"time"

	"imessage-sender/messaging"
)

func PrintSent(w io.Writer, msg messaging.Message) {
	fmt.Fprintf(w, "Sent via %s to %s (id %s)\n", msg.ServiceType, msg.Recipient, msg.ID)
}

func PrintHistory(w io.Writer, sent []messaging.Message) {
	if len(sent) == 0 {
		fmt.Fprintln(w, "No messages sent yet.")
		return
	}

	fmt.Fprintf(w, "%d message(s) sent:\n", len(sent))
	for _, msg := range sent {
		fmt.Fprintf(w, "- %s [%s] %s: %s\n", msg.SentAt.Format(time.RFC3339), msg.ServiceType, msg.Recipient, msg.Text)
	}
}
