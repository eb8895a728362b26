package middleware

import (
	"tiendabot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// EnsureUser creates the sender's user record before any handler runs,
// so handlers can assume the row exists
func EnsureUser(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := authService.EnsureUser(sender.ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
				return c.Send("Hubo un error. Por favor, intenta nuevamente.")
			}

			return next(c)
		}
	}
}
