package middleware

import (
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover catches panics in handlers and prevents the bot from crashing
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in handler",
						zap.Any("panic", r),
						zap.String("stack", string(debug.Stack())),
					)
				}
			}()
			return next(c)
		}
	}
}
