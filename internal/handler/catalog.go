package handler

import (
	"errors"

	"tiendabot/internal/callback"
	"tiendabot/internal/presenter"
	"tiendabot/internal/service"
	"tiendabot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// quantityDigitsMax caps the keypad buffer; nobody orders more than 9999
const quantityDigitsMax = 4

func (h *Handler) onShowCatalog(c tele.Context) error {
	h.clearEphemeral(c.Chat().ID)

	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, "Failed to load categories", err)
	}

	text, markup := presenter.Catalog(categories)
	return h.edit(c, text, markup)
}

// onCategory turns the pressed message into the category header and sends
// one photo card per product underneath it
func (h *Handler) onCategory(c tele.Context, p callback.Parsed) error {
	categoryID, ok := p.ID()
	if !ok {
		return c.Respond()
	}
	chatID := c.Chat().ID
	h.clearEphemeral(chatID)

	category, err := h.catalogService.Category(categoryID)
	if err != nil {
		return h.fail(c, "Failed to load category", err)
	}

	products, err := h.catalogService.ProductsByCategory(categoryID)
	if err != nil {
		return h.fail(c, "Failed to load products", err)
	}

	text, markup := presenter.CategoryHeader(category.Name)
	if err := h.edit(c, text, markup); err != nil {
		return err
	}

	var msgIDs []int
	for _, product := range products {
		caption, cardMarkup := presenter.ProductCard(product)
		photo := &tele.Photo{
			File:    tele.File{FileID: product.PhotoID},
			Caption: caption,
		}
		msg, err := h.bot.Send(c.Chat(), photo, cardMarkup)
		if err != nil {
			h.logger.Warn("Failed to send product card",
				zap.Error(err),
				zap.Int64("product_id", product.ID),
			)
			continue
		}
		msgIDs = append(msgIDs, msg.ID)
	}

	h.store.Update(chatID, func(s *session.Session) {
		s.ProductMsgIDs = msgIDs
	})
	return nil
}

// onAddToCart opens the quantity keypad for one product
func (h *Handler) onAddToCart(c tele.Context, p callback.Parsed) error {
	productID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	h.store.SetWizard(c.Chat().ID, session.CartQuantity{ProductID: productID})

	text, markup := presenter.QuantityKeypad(productID, "")
	if err := c.Send(text, markup); err != nil {
		return h.fail(c, "Failed to send quantity keypad", err)
	}
	return c.Respond()
}

// onQuantity applies one keypad press to the digit buffer
func (h *Handler) onQuantity(c tele.Context, p callback.Parsed) error {
	productID, ok := p.ID()
	if !ok {
		return c.Respond()
	}
	key := p.Arg(0)

	sess := h.store.Get(c.Chat().ID)
	w, ok := sess.Wizard.(session.CartQuantity)
	if !ok || w.ProductID != productID {
		// stale keypad from a cancelled or superseded flow
		return c.Respond()
	}

	buffer := w.Buffer
	switch {
	case key == callback.QuantityBackspace:
		if buffer == "" {
			return c.Respond()
		}
		buffer = buffer[:len(buffer)-1]
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		if len(buffer) >= quantityDigitsMax {
			return c.Respond()
		}
		buffer += key
	default:
		// only the keys the keypad itself emits may touch the buffer
		return c.Respond()
	}

	h.store.SetWizard(c.Chat().ID, session.CartQuantity{ProductID: productID, Buffer: buffer})

	text, markup := presenter.QuantityKeypad(productID, buffer)
	return h.edit(c, text, markup)
}

// onConfirmAdd parses the buffer and stores the cart line
func (h *Handler) onConfirmAdd(c tele.Context, p callback.Parsed) error {
	productID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	sess := h.store.Get(c.Chat().ID)
	w, ok := sess.Wizard.(session.CartQuantity)
	if !ok || w.ProductID != productID {
		return c.Respond()
	}

	quantity, err := service.ParseQuantity(w.Buffer)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: presenter.InvalidQuantityReply})
	}

	product, err := h.catalogService.Product(productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.store.ClearWizard(c.Chat().ID)
			return c.Respond(&tele.CallbackResponse{Text: presenter.ErrGeneric})
		}
		return h.fail(c, "Failed to load product", err)
	}

	if err := h.cartService.Add(c.Sender().ID, productID, quantity); err != nil {
		return h.fail(c, "Failed to add to cart", err)
	}

	h.store.ClearWizard(c.Chat().ID)

	if err := c.Respond(&tele.CallbackResponse{Text: presenter.AddedToCart(product.Name, quantity)}); err != nil {
		h.logger.Debug("Failed to answer callback", zap.Error(err))
	}
	return h.backToCatalog(c)
}

// onCancelAdd discards the keypad and the pending quantity
func (h *Handler) onCancelAdd(c tele.Context) error {
	h.store.ClearWizard(c.Chat().ID)
	if err := c.Respond(); err != nil {
		h.logger.Debug("Failed to answer callback", zap.Error(err))
	}
	return h.backToCatalog(c)
}

// backToCatalog drops the keypad and the product cards and restores the
// catalog view on the flow's anchor message
func (h *Handler) backToCatalog(c tele.Context) error {
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete keypad message", zap.Error(err))
	}
	h.clearEphemeral(c.Chat().ID)

	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, "Failed to load categories", err)
	}
	text, markup := presenter.Catalog(categories)
	return h.editAnchor(c, text, markup)
}
