package handler

import (
	"tiendabot/internal/callback"
	"tiendabot/internal/presenter"

	tele "gopkg.in/telebot.v3"
)

func (h *Handler) onViewCart(c tele.Context) error {
	chatID := c.Chat().ID
	h.store.ClearWizard(chatID)
	h.clearEphemeral(chatID)

	items, total, err := h.cartService.Summary(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to load cart", err)
	}

	text, markup := presenter.Cart(items, total)
	return h.edit(c, text, markup)
}

func (h *Handler) onEmptyCart(c tele.Context) error {
	if err := h.cartService.Empty(c.Sender().ID); err != nil {
		return h.fail(c, "Failed to empty cart", err)
	}

	text, markup := presenter.EmptyCart()
	if err := h.edit(c, text, markup); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{Text: presenter.CartEmptiedReply})
}

func (h *Handler) onEditCart(c tele.Context) error {
	items, _, err := h.cartService.Summary(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to load cart", err)
	}
	if len(items) == 0 {
		text, markup := presenter.EmptyCart()
		return h.edit(c, text, markup)
	}

	text, markup := presenter.EditCart(items)
	return h.edit(c, text, markup)
}

// onCartRemove drops one product and re-renders the removal list, or the
// empty cart when nothing is left
func (h *Handler) onCartRemove(c tele.Context, p callback.Parsed) error {
	productID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	if err := h.cartService.Remove(c.Sender().ID, productID); err != nil {
		return h.fail(c, "Failed to remove cart item", err)
	}

	items, _, err := h.cartService.Summary(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to load cart", err)
	}

	var text string
	var markup *tele.ReplyMarkup
	if len(items) == 0 {
		text, markup = presenter.EmptyCart()
	} else {
		text, markup = presenter.EditCart(items)
	}
	if err := h.edit(c, text, markup); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{Text: presenter.CartItemRemovedReply})
}
