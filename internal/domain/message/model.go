package message

import (
	"time"
)

// Message is one inbound WhatsApp message as recorded by the gateway.
// Messages are append-only; the dashboard never writes them.
type Message struct {
	// ID is the unique identifier for the message
	ID string `db:"id" json:"id"`

	// PhoneNumber is the sender's WhatsApp number
	PhoneNumber string `db:"phone_number" json:"phone_number"`

	// PushName is the sender's WhatsApp display name at send time
	PushName string `db:"push_name" json:"push_name"`

	// MessageType is the WhatsApp payload kind (text, image, audio, ...)
	MessageType string `db:"message_type" json:"message_type"`

	// Body is the text content, empty for pure media messages
	Body string `db:"body" json:"body"`

	// Media is an opaque reference to attached media, if any
	Media string `db:"media" json:"media"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
