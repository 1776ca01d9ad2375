package messaging

import "time"

// Message is a record of one message handed to Messages.app.
type Message struct {
	ID          string    `json:"id"`
	Recipient   string    `json:"recipient"`
	Scheme      string    `json:"scheme,omitempty"`
	Text        string    `json:"text"`
	ServiceType string    `json:"service_type"`
	SentAt      time.Time `json:"sent_at"`
}
