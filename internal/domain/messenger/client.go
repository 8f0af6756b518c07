package messenger

// Client defines an interface for sending chat messages. It decouples the
// dispatch logic from the specific bot library; the gateway only ever needs
// "deliver this text to that chat".
type Client interface {
	SendMessage(recipientChatID int64, text string) error
}
