package handler

import (
	"tiendabot/internal/presenter"
	"tiendabot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles the /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.authService.EnsureUser(userID); err != nil {
		return h.fail(c, "Failed to ensure user exists", err)
	}

	// A command aborts whatever flow was in progress
	h.store.ClearWizard(c.Chat().ID)

	return h.sendMainMenu(c, false)
}

// handleAdmin handles the /admin command: privileged users go straight to
// the panel, everyone else is asked for a one-time password
func (h *Handler) handleAdmin(c tele.Context) error {
	userID := c.Sender().ID

	if err := h.authService.EnsureUser(userID); err != nil {
		return h.fail(c, "Failed to ensure user exists", err)
	}

	privileged, err := h.authService.IsPrivileged(userID)
	if err != nil {
		return h.fail(c, "Failed to check privileges", err)
	}

	if privileged {
		h.store.ClearWizard(c.Chat().ID)
		owner, err := h.authService.IsOwner(userID)
		if err != nil {
			return h.fail(c, "Failed to check owner", err)
		}
		text, markup := presenter.AdminPanel(owner)
		return c.Send(text, markup)
	}

	h.store.SetWizard(c.Chat().ID, session.AdminLogin{})

	sent, err := h.bot.Send(c.Chat(), presenter.AdminLoginPrompt())
	if err != nil {
		return err
	}
	h.store.Update(c.Chat().ID, func(s *session.Session) {
		s.AnchorID = sent.ID
	})
	return nil
}

// sendMainMenu renders the root menu, editing in place for callbacks
func (h *Handler) sendMainMenu(c tele.Context, edit bool) error {
	user, err := h.authService.GetUser(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to load user", err)
	}

	text, markup := presenter.MainMenu(user)
	if edit {
		return h.edit(c, text, markup)
	}

	sent, err := h.bot.Send(c.Chat(), text, markup)
	if err != nil {
		return err
	}
	h.store.Update(c.Chat().ID, func(s *session.Session) {
		s.AnchorID = sent.ID
	})
	return nil
}
