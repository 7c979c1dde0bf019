package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Resetter tears down all conversational state for a chat.
type Resetter interface {
	ClearChat(chatID int64)
}

// Recover is the router's top-level failure boundary: any error or panic
// escaping a flow handler is logged, the chat's flow state and mode are
// cleared, and the user gets a generic apology. Side effects already
// performed below this point are not rolled back.
func Recover(resetter Resetter, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic in handler",
						zap.Any("panic", r),
						zap.Int64("chat_id", chatID(c)),
					)
					fail(c, resetter)
				}
			}()

			if err := next(c); err != nil {
				logger.Error("Handler failed",
					zap.Error(err),
					zap.Int64("chat_id", chatID(c)),
					zap.Int64("user_id", c.Sender().ID),
				)
				return fail(c, resetter)
			}
			return nil
		}
	}
}

func fail(c tele.Context, resetter Resetter) error {
	resetter.ClearChat(chatID(c))
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ An error occurred. Please try again.",
			ShowAlert: true,
		})
	}
	return c.Send("❌ An error occurred. Please try again.")
}

func chatID(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}
