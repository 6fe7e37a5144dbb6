package chat

import "context"

// Messenger is the outbound half of the chat transport: the bot's one way of
// saying anything. The inbound half lives entirely in the transport adapter.
type Messenger interface {
	// Send delivers a plain-text message to the conversation.
	Send(ctx context.Context, text string) error

	// SendFormatted delivers a message with both a plain-text body and a
	// formatted (HTML table) body; transports that cannot render the
	// formatted body fall back however they see fit.
	SendFormatted(ctx context.Context, plain, formatted string) error
}
