package handler

import (
	"fmt"

	"tiendabot/internal/callback"
	"tiendabot/internal/presenter"
	"tiendabot/internal/session"

	tele "gopkg.in/telebot.v3"
)

// onProcessOrder starts checkout for a non-empty cart
func (h *Handler) onProcessOrder(c tele.Context) error {
	items, _, err := h.cartService.Summary(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to load cart", err)
	}
	if len(items) == 0 {
		text, markup := presenter.EmptyCart()
		return h.edit(c, text, markup)
	}

	h.store.SetWizard(c.Chat().ID, session.Checkout{})

	text, markup := presenter.PaymentMethods()
	return h.edit(c, text, markup)
}

func (h *Handler) onPayment(c tele.Context, p callback.Parsed) error {
	sess := h.store.Get(c.Chat().ID)
	if _, ok := sess.Wizard.(session.Checkout); !ok {
		return c.Respond()
	}

	method := presenter.PaymentCrypto
	if p.Arg(0) == "cash" {
		method = presenter.PaymentCash
	}
	h.store.SetWizard(c.Chat().ID, session.Checkout{PaymentMethod: method})

	text, markup := presenter.CountryChoice(method)
	return h.edit(c, text, markup)
}

func (h *Handler) onCountry(c tele.Context, p callback.Parsed) error {
	sess := h.store.Get(c.Chat().ID)
	w, ok := sess.Wizard.(session.Checkout)
	if !ok || w.PaymentMethod == "" {
		return c.Respond()
	}

	h.setAnchor(c)
	h.store.SetWizard(c.Chat().ID, session.Checkout{
		PaymentMethod:   w.PaymentMethod,
		Country:         p.Arg(0),
		AwaitingAddress: true,
	})

	return h.edit(c, presenter.AddressPrompt(), nil)
}

// onVerifyAccount starts the identity verification flow
func (h *Handler) onVerifyAccount(c tele.Context) error {
	h.setAnchor(c)
	h.store.SetWizard(c.Chat().ID, session.Verification{})
	return h.edit(c, presenter.VerifyInstagramPrompt(), nil)
}

func (h *Handler) onViewOrders(c tele.Context) error {
	orders, err := h.orderService.UserOrders(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to load orders", err)
	}

	text, markup := presenter.UserOrders(orders)
	return h.edit(c, text, markup)
}

// onCancelOrder serves both the buyer cancelling a pending order and an
// admin cancelling an accepted one
func (h *Handler) onCancelOrder(c tele.Context, p callback.Parsed) error {
	orderID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	order, err := h.orderService.Get(orderID)
	if err != nil {
		return h.fail(c, "Failed to load order", err)
	}
	if order == nil {
		return c.Respond(&tele.CallbackResponse{Text: presenter.ErrGeneric})
	}

	userID := c.Sender().ID
	if order.UserID != userID {
		privileged, err := h.authService.IsPrivileged(userID)
		if err != nil {
			return h.fail(c, "Failed to check privileges", err)
		}
		if !privileged {
			return c.Respond(&tele.CallbackResponse{Text: presenter.NotAuthorizedReply})
		}
	}

	if err := h.orderService.Cancel(orderID); err != nil {
		return h.fail(c, "Failed to cancel order", err)
	}

	if order.UserID == userID {
		// buyer cancelled from their own orders view
		orders, err := h.orderService.UserOrders(userID)
		if err != nil {
			return h.fail(c, "Failed to load orders", err)
		}
		text, markup := presenter.UserOrders(orders)
		if err := h.edit(c, text, markup); err != nil {
			return err
		}
		return c.Respond(&tele.CallbackResponse{Text: presenter.OrderCancelledReply})
	}

	// admin cancelled an accepted order card
	h.notifyBuyer(order.UserID, fmt.Sprintf(presenter.OrderRejectedNotice, orderID))
	h.dropOrderCard(c)
	return c.Respond(&tele.CallbackResponse{Text: presenter.OrderCancelledReply})
}
