// Package telegram é o adaptador de chat: entrega o texto recebido ao
// engine e envia cada resposta na ordem emitida. Nenhuma regra de negócio
// vive aqui.
package telegram

import (
	"strconv"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"

	"github.com/BruksfildServices01/barber-chatbot/internal/dialogue"
)

type Bot struct {
	bot    *tele.Bot
	engine *dialogue.Engine
	log    *zap.Logger
}

func NewBot(token string, engine *dialogue.Engine, log *zap.Logger) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	adapter := &Bot{bot: b, engine: engine, log: log}
	b.Handle(tele.OnText, adapter.onText)

	return adapter, nil
}

func (b *Bot) onText(c tele.Context) error {
	userID := strconv.FormatInt(c.Sender().ID, 10)

	for _, reply := range b.engine.HandleMessage(userID, c.Text()) {
		if err := c.Send(reply); err != nil {
			b.log.Error("failed to send reply",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

// Start bloqueia no long polling até Stop.
func (b *Bot) Start() {
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
