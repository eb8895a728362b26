package handler

import (
	"strings"
	"unicode"

	"tiendabot/internal/callback"
	"tiendabot/internal/presenter"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// actions behind the admin panel; reaching them requires admin or owner
var adminActions = map[callback.Action]bool{
	callback.ActAdminPanel:            true,
	callback.ActManageCategories:      true,
	callback.ActAddCategory:           true,
	callback.ActEditCategory:          true,
	callback.ActDeleteCategory:        true,
	callback.ActSelectEditCategory:    true,
	callback.ActConfirmDeleteCategory: true,
	callback.ActDoDeleteCategory:      true,
	callback.ActAdminStock:            true,
	callback.ActAddProduct:            true,
	callback.ActEditProduct:           true,
	callback.ActDeleteProduct:         true,
	callback.ActSelectCategory:        true,
	callback.ActConfirmDeleteProduct:  true,
	callback.ActDoDeleteProduct:       true,
	callback.ActManageOrders:          true,
	callback.ActOrdersPending:         true,
	callback.ActOrdersAccepted:        true,
	callback.ActOrdersRejected:        true,
	callback.ActAcceptOrder:           true,
	callback.ActRejectOrder:           true,
	callback.ActFinalizeOrder:         true,
	callback.ActDeleteOrder:           true,
}

// actions reserved for the owner
var ownerActions = map[callback.Action]bool{
	callback.ActConfigureBot: true,
	callback.ActManageAdmins: true,
	callback.ActAddAdmin:     true,
	callback.ActAdminBack:    true,
}

// handleCallback routes every inline button press. Buttons carry raw
// underscore-delimited data which is parsed exactly once here.
func (h *Handler) handleCallback(c tele.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}

	data := cleanCallbackData(cb.Data)
	parsed, ok := callback.Parse(data)
	if !ok {
		h.logger.Warn("Unknown callback data",
			zap.String("data", data),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Respond()
	}

	h.logger.Debug("Processing callback",
		zap.String("action", string(parsed.Action)),
		zap.Int64("user_id", c.Sender().ID),
	)

	if adminActions[parsed.Action] || ownerActions[parsed.Action] {
		allowed, err := h.allowed(c.Sender().ID, parsed.Action)
		if err != nil {
			return h.fail(c, "Failed to check privileges", err)
		}
		if !allowed {
			return c.Respond(&tele.CallbackResponse{Text: presenter.NotAuthorizedReply})
		}
	}

	switch parsed.Action {
	case callback.ActLanguage:
		return h.onLanguage(c, parsed)
	case callback.ActConfigureBot:
		return h.onConfigureBot(c)
	case callback.ActMainMenu:
		return h.onMainMenu(c)

	case callback.ActShowCatalog:
		return h.onShowCatalog(c)
	case callback.ActCategory:
		return h.onCategory(c, parsed)
	case callback.ActAddToCart:
		return h.onAddToCart(c, parsed)
	case callback.ActQuantity:
		return h.onQuantity(c, parsed)
	case callback.ActConfirmAdd:
		return h.onConfirmAdd(c, parsed)
	case callback.ActCancelAdd:
		return h.onCancelAdd(c)

	case callback.ActViewCart:
		return h.onViewCart(c)
	case callback.ActEmptyCart:
		return h.onEmptyCart(c)
	case callback.ActEditCart:
		return h.onEditCart(c)
	case callback.ActCartRemove:
		return h.onCartRemove(c, parsed)

	case callback.ActProcessOrder:
		return h.onProcessOrder(c)
	case callback.ActPayment:
		return h.onPayment(c, parsed)
	case callback.ActCountry:
		return h.onCountry(c, parsed)
	case callback.ActVerifyAccount:
		return h.onVerifyAccount(c)
	case callback.ActViewOrders:
		return h.onViewOrders(c)
	case callback.ActCancelOrder:
		return h.onCancelOrder(c, parsed)

	case callback.ActAdminPanel:
		return h.onAdminPanel(c)
	case callback.ActManageAdmins:
		return h.onManageAdmins(c)
	case callback.ActAddAdmin:
		return h.onAddAdmin(c)
	case callback.ActAdminBack:
		return h.onAdminBack(c)

	case callback.ActManageCategories:
		return h.onManageCategories(c)
	case callback.ActAddCategory:
		return h.onAddCategory(c)
	case callback.ActEditCategory:
		return h.onEditCategory(c)
	case callback.ActSelectEditCategory:
		return h.onSelectEditCategory(c, parsed)
	case callback.ActDeleteCategory:
		return h.onDeleteCategory(c)
	case callback.ActConfirmDeleteCategory:
		return h.onConfirmDeleteCategory(c, parsed)
	case callback.ActDoDeleteCategory:
		return h.onDoDeleteCategory(c, parsed)

	case callback.ActAdminStock:
		return h.onAdminStock(c)
	case callback.ActAddProduct:
		return h.onAddProduct(c)
	case callback.ActSelectCategory:
		return h.onSelectCategory(c, parsed)
	case callback.ActEditProduct:
		return h.onEditProduct(c, parsed)
	case callback.ActDeleteProduct:
		return h.onDeleteProduct(c)
	case callback.ActConfirmDeleteProduct:
		return h.onConfirmDeleteProduct(c, parsed)
	case callback.ActDoDeleteProduct:
		return h.onDoDeleteProduct(c, parsed)

	case callback.ActManageOrders:
		return h.onManageOrders(c)
	case callback.ActOrdersPending, callback.ActOrdersAccepted, callback.ActOrdersRejected:
		return h.onOrderList(c, parsed.Action)
	case callback.ActAcceptOrder:
		return h.onAcceptOrder(c, parsed)
	case callback.ActRejectOrder:
		return h.onRejectOrder(c, parsed)
	case callback.ActFinalizeOrder:
		return h.onFinalizeOrder(c)
	case callback.ActDeleteOrder:
		return h.onDeleteOrder(c, parsed)
	}

	return c.Respond()
}

func (h *Handler) allowed(userID int64, action callback.Action) (bool, error) {
	if ownerActions[action] {
		return h.authService.IsOwner(userID)
	}
	return h.authService.IsPrivileged(userID)
}

// onLanguage stores the choice; the first user ever to pick a language
// becomes the owner and is sent into bot configuration
func (h *Handler) onLanguage(c tele.Context, p callback.Parsed) error {
	userID := c.Sender().ID
	language := p.Arg(0)

	becameOwner, err := h.authService.ChooseLanguage(userID, language)
	if err != nil {
		return h.fail(c, "Failed to set language", err)
	}

	if becameOwner {
		h.logger.Info("Owner claimed", zap.Int64("user_id", userID))
		text, markup := presenter.OwnerWelcome()
		return h.edit(c, text, markup)
	}
	return h.sendMainMenu(c, true)
}

func (h *Handler) onMainMenu(c tele.Context) error {
	chatID := c.Chat().ID
	h.store.ClearWizard(chatID)
	h.clearEphemeral(chatID)
	return h.sendMainMenu(c, true)
}
