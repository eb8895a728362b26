package handler

import (
	"fmt"

	"tiendabot/internal/callback"
	"tiendabot/internal/domain"
	"tiendabot/internal/presenter"
	"tiendabot/internal/service"
	"tiendabot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func (h *Handler) onManageOrders(c tele.Context) error {
	h.clearEphemeral(c.Chat().ID)

	text, markup := presenter.ManageOrders()
	return h.edit(c, text, markup)
}

// onOrderList shows the orders in one lifecycle state: the pressed
// message becomes the list header and each order gets its own card, with
// the buyer's verification photo when one is on file
func (h *Handler) onOrderList(c tele.Context, action callback.Action) error {
	status := domain.StatusPending
	switch action {
	case callback.ActOrdersAccepted:
		status = domain.StatusAccepted
	case callback.ActOrdersRejected:
		status = domain.StatusRejected
	}

	chatID := c.Chat().ID
	h.clearEphemeral(chatID)

	orders, err := h.orderService.OrdersByStatus(status)
	if err != nil {
		return h.fail(c, "Failed to load orders", err)
	}

	text, markup := presenter.OrderListHeader(status, len(orders))
	if err := h.edit(c, text, markup); err != nil {
		return err
	}

	var msgIDs []int
	for _, details := range orders {
		cardText, cardMarkup := presenter.OrderCard(details)

		var msg *tele.Message
		if details.PhotoID != "" {
			photo := &tele.Photo{
				File:    tele.File{FileID: details.PhotoID},
				Caption: cardText,
			}
			msg, err = h.bot.Send(c.Chat(), photo, cardMarkup)
		} else {
			msg, err = h.bot.Send(c.Chat(), cardText, cardMarkup)
		}
		if err != nil {
			h.logger.Warn("Failed to send order card",
				zap.Error(err),
				zap.Int64("order_id", details.Order.ID),
			)
			continue
		}
		msgIDs = append(msgIDs, msg.ID)
	}

	h.store.Update(chatID, func(s *session.Session) {
		s.OrderMsgIDs = msgIDs
	})
	return nil
}

func (h *Handler) onAcceptOrder(c tele.Context, p callback.Parsed) error {
	orderID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	order, err := h.orderService.Accept(orderID)
	if err != nil {
		return h.orderActionFailed(c, "Failed to accept order", err)
	}

	h.logger.Info("Order accepted",
		zap.Int64("order_id", orderID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	h.notifyBuyer(order.UserID, fmt.Sprintf(presenter.OrderAcceptedNotice, orderID))
	h.dropOrderCard(c)
	return c.Respond(&tele.CallbackResponse{Text: presenter.OrderAcceptedReply})
}

func (h *Handler) onRejectOrder(c tele.Context, p callback.Parsed) error {
	orderID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	order, err := h.orderService.Reject(orderID)
	if err != nil {
		return h.orderActionFailed(c, "Failed to reject order", err)
	}

	h.logger.Info("Order rejected",
		zap.Int64("order_id", orderID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	h.notifyBuyer(order.UserID, fmt.Sprintf(presenter.OrderRejectedNotice, orderID))
	h.dropOrderCard(c)
	return c.Respond(&tele.CallbackResponse{Text: presenter.OrderRejectedReply})
}

// onFinalizeOrder closes out a delivered order card without touching the
// stored order
func (h *Handler) onFinalizeOrder(c tele.Context) error {
	h.dropOrderCard(c)
	return c.Respond(&tele.CallbackResponse{Text: presenter.OrderFinalizedReply})
}

func (h *Handler) onDeleteOrder(c tele.Context, p callback.Parsed) error {
	orderID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	if err := h.orderService.Delete(orderID); err != nil {
		return h.fail(c, "Failed to delete order", err)
	}

	h.logger.Info("Order deleted",
		zap.Int64("order_id", orderID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	h.dropOrderCard(c)
	return c.Respond(&tele.CallbackResponse{Text: presenter.OrderDeletedReply})
}

func (h *Handler) orderActionFailed(c tele.Context, msg string, err error) error {
	if service.IsNotFound(err) {
		// another admin already handled this order
		h.dropOrderCard(c)
		return c.Respond(&tele.CallbackResponse{Text: presenter.ErrGeneric})
	}
	return h.fail(c, msg, err)
}

// dropOrderCard removes the pressed card and forgets its id
func (h *Handler) dropOrderCard(c tele.Context) {
	msg := c.Message()
	if msg == nil {
		return
	}
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete order card", zap.Error(err))
	}

	h.store.Update(c.Chat().ID, func(s *session.Session) {
		for i, id := range s.OrderMsgIDs {
			if id == msg.ID {
				s.OrderMsgIDs = append(s.OrderMsgIDs[:i], s.OrderMsgIDs[i+1:]...)
				break
			}
		}
	})
}

// notifyBuyer sends a status notice to the order's owner; failures are
// logged, the admin flow never stalls on them
func (h *Handler) notifyBuyer(userID int64, text string) {
	if _, err := h.bot.Send(&tele.User{ID: userID}, text); err != nil {
		h.logger.Warn("Failed to notify buyer",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	}
}
