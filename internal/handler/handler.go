package handler

import (
	"strconv"
	"strings"

	"tiendabot/internal/presenter"
	"tiendabot/internal/service"
	"tiendabot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	catalogService *service.CatalogService
	cartService    *service.CartService
	orderService   *service.OrderService
	store          *session.Store
	logger         *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	catalogService *service.CatalogService,
	cartService *service.CartService,
	orderService *service.OrderService,
	store *session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		catalogService: catalogService,
		cartService:    cartService,
		orderService:   orderService,
		store:          store,
		logger:         logger,
	}
}

// RegisterHandlers registers all bot handlers. Every handler runs under
// the chat's session lock, so two updates for the same chat are always
// processed one after the other.
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.serialized(h.handleStart))
	h.bot.Handle("/admin", h.serialized(h.handleAdmin))

	h.bot.Handle(tele.OnText, h.serialized(h.handleText))
	h.bot.Handle(tele.OnPhoto, h.serialized(h.handlePhoto))

	// All inline buttons carry raw data and are routed centrally
	h.bot.Handle(tele.OnCallback, h.serialized(h.handleCallback))
}

func (h *Handler) serialized(fn tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		chat := c.Chat()
		if chat == nil {
			return nil
		}
		return h.store.Do(chat.ID, func() error {
			return fn(c)
		})
	}
}

// edit updates the callback's message in place, falling back to a fresh
// message when the original can no longer be edited
func (h *Handler) edit(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	var err error
	if markup != nil {
		err = c.Edit(text, markup)
	} else {
		err = c.Edit(text)
	}
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "message is not modified") {
		return c.Respond()
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
	)
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

// setAnchor remembers the pressed message as the flow's anchor, so
// wizard steps fed by text can keep editing it
func (h *Handler) setAnchor(c tele.Context) {
	msg := c.Message()
	if msg == nil {
		return
	}
	h.store.Update(c.Chat().ID, func(s *session.Session) {
		s.AnchorID = msg.ID
	})
}

// editAnchor edits the flow's anchor message in place; without one, or
// when the edit fails, it sends a fresh message and re-anchors on it
func (h *Handler) editAnchor(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	chatID := c.Chat().ID

	sess := h.store.Get(chatID)
	if sess.AnchorID != 0 {
		stored := tele.StoredMessage{MessageID: strconv.Itoa(sess.AnchorID), ChatID: chatID}
		var err error
		if markup != nil {
			_, err = h.bot.Edit(&stored, text, markup)
		} else {
			_, err = h.bot.Edit(&stored, text)
		}
		if err == nil || strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Debug("Failed to edit anchor, sending new",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}

	var sent *tele.Message
	var err error
	if markup != nil {
		sent, err = h.bot.Send(c.Chat(), text, markup)
	} else {
		sent, err = h.bot.Send(c.Chat(), text)
	}
	if err != nil {
		return err
	}
	h.store.Update(chatID, func(s *session.Session) {
		s.AnchorID = sent.ID
	})
	return nil
}

// fail logs the error and shows the generic failure message
func (h *Handler) fail(c tele.Context, msg string, err error) error {
	h.logger.Error(msg,
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
	)
	return c.Send(presenter.ErrGeneric)
}

func (h *Handler) deleteMessage(chatID int64, messageID int) {
	msg := tele.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chatID}
	if err := h.bot.Delete(&msg); err != nil {
		h.logger.Debug("Failed to delete message",
			zap.Error(err),
			zap.Int("message_id", messageID),
			zap.Int64("chat_id", chatID),
		)
	}
}

// clearEphemeral deletes the chat's product and order cards and forgets
// their ids
func (h *Handler) clearEphemeral(chatID int64) {
	sess := h.store.Get(chatID)
	for _, id := range sess.ProductMsgIDs {
		h.deleteMessage(chatID, id)
	}
	for _, id := range sess.OrderMsgIDs {
		h.deleteMessage(chatID, id)
	}
	h.store.Update(chatID, func(s *session.Session) {
		s.ProductMsgIDs = nil
		s.OrderMsgIDs = nil
	})
}
