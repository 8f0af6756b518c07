// internal/infra/telegram/query_handlers.go
package telegram

import (
	"device_alert_gateway/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterQueryHandlers wires inbound chat text to the dispatch service.
// Only the status-query trigger phrase produces a reply; it is sent back to
// the originating chat, never to the broadcast chat. Everything else is
// logged at debug level and ignored.
func RegisterQueryHandlers(b *telebot.Bot, dispatch *app.DispatchService, baseLogger *logrus.Entry) {
	queryLogger := baseLogger.WithField("handler_group", "status_query")

	b.Handle(telebot.OnText, func(c telebot.Context) error {
		logCtx := queryLogger.WithFields(logrus.Fields{
			"sender_id": c.Sender().ID,
			"chat_id":   c.Chat().ID,
		})
		logCtx.WithField("text", c.Text()).Debug("Received chat message")

		reply, ok := dispatch.HandleQuery(c.Text())
		if !ok {
			return nil
		}

		logCtx.Info("Answering status query")
		return c.Send(reply)
	})
}
