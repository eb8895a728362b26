package handler

import (
	"errors"
	"strings"

	"tiendabot/internal/presenter"
	"tiendabot/internal/service"
	"tiendabot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText feeds a plain message into the chat's active wizard. Without
// a wizard the text is ignored; every prompt in the bot is button-driven.
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return nil
	}

	sess := h.store.Get(c.Chat().ID)
	switch w := sess.Wizard.(type) {
	case session.AdminLogin:
		return h.textAdminLogin(c, text)
	case session.OwnerSetup:
		return h.textOwnerSetup(c, w, text)
	case session.CategoryCreate:
		return h.textCategoryCreate(c, w, text)
	case session.CategoryEdit:
		return h.textCategoryEdit(c, w, text)
	case session.ProductCreate:
		return h.textProductCreate(c, w, text)
	case session.ProductEdit:
		return h.textProductEdit(c, w, text)
	case session.CartQuantity:
		return c.Send(presenter.KeypadExpectedReply)
	case session.Checkout:
		return h.textCheckout(c, w, text)
	case session.Verification:
		return h.textVerification(c, w, text)
	}
	return nil
}

// textAdminLogin redeems a one-time password; a miss keeps the prompt
// open for another try
func (h *Handler) textAdminLogin(c tele.Context, password string) error {
	userID := c.Sender().ID

	err := h.authService.RedeemPassword(userID, password)
	if errors.Is(err, service.ErrInvalidPassword) {
		return c.Send(presenter.InvalidPasswordReply)
	}
	if err != nil {
		return h.fail(c, "Failed to redeem password", err)
	}

	h.logger.Info("Admin password redeemed", zap.Int64("user_id", userID))
	h.store.ClearWizard(c.Chat().ID)

	if err := c.Send(presenter.AdminGrantedReply); err != nil {
		return err
	}
	text, markup := presenter.AdminPanel(false)
	return h.editAnchor(c, text, markup)
}

// textOwnerSetup collects the initial admin passwords one by one, then
// the first category's name and icon
func (h *Handler) textOwnerSetup(c tele.Context, w session.OwnerSetup, text string) error {
	chatID := c.Chat().ID
	ownerID := c.Sender().ID

	if w.NamingPhase {
		if w.CategoryName == "" {
			h.store.SetWizard(chatID, session.OwnerSetup{
				Passwords:    w.Passwords,
				CategoryName: text,
				NamingPhase:  true,
			})
			return h.editAnchor(c, presenter.CategoryIconPrompt, nil)
		}

		if _, err := h.catalogService.CreateCategory(ownerID, w.CategoryName, text); err != nil {
			if errors.Is(err, service.ErrValidation) {
				return c.Send(presenter.EmptyIconReply)
			}
			return h.fail(c, "Failed to create first category", err)
		}

		h.logger.Info("Owner setup completed", zap.Int64("user_id", ownerID))
		h.store.ClearWizard(chatID)

		done, markup := presenter.OwnerSetupDone(w.CategoryName)
		return h.editAnchor(c, done, markup)
	}

	if !service.ValidatePassword(text) {
		return c.Send(presenter.WeakPasswordReply)
	}

	passwords := append(w.Passwords, text)
	total := len(passwords) + service.SetupPasswordsNeeded(len(passwords))

	if service.SetupPasswordsNeeded(len(passwords)) > 0 {
		h.store.SetWizard(chatID, session.OwnerSetup{Passwords: passwords})
		return h.editAnchor(c, presenter.OwnerSetupPrompt(len(passwords), total), nil)
	}

	if err := h.authService.SaveSetupPasswords(ownerID, passwords); err != nil {
		return h.fail(c, "Failed to save setup passwords", err)
	}

	h.store.SetWizard(chatID, session.OwnerSetup{Passwords: passwords, NamingPhase: true})
	return h.editAnchor(c, presenter.OwnerSetupCategoryPrompt(), nil)
}

// textCategoryCreate collects the name, then the icon
func (h *Handler) textCategoryCreate(c tele.Context, w session.CategoryCreate, text string) error {
	chatID := c.Chat().ID

	if w.Name == "" {
		h.store.SetWizard(chatID, session.CategoryCreate{Name: text})
		return h.editAnchor(c, presenter.CategoryIconPrompt, nil)
	}

	if _, err := h.catalogService.CreateCategory(c.Sender().ID, w.Name, text); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Send(presenter.EmptyIconReply)
		}
		return h.fail(c, "Failed to create category", err)
	}

	h.store.ClearWizard(chatID)
	return h.sendManageCategories(c, presenter.CategoryCreatedReply)
}

func (h *Handler) textCategoryEdit(c tele.Context, w session.CategoryEdit, text string) error {
	chatID := c.Chat().ID

	if w.Name == "" {
		h.store.SetWizard(chatID, session.CategoryEdit{CategoryID: w.CategoryID, Name: text})
		return h.editAnchor(c, presenter.CategoryIconPrompt, nil)
	}

	if err := h.catalogService.UpdateCategory(w.CategoryID, w.Name, text); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Send(presenter.EmptyIconReply)
		}
		return h.fail(c, "Failed to update category", err)
	}

	h.store.ClearWizard(chatID)
	return h.sendManageCategories(c, presenter.CategoryUpdatedReply)
}

// textProductCreate advances the product wizard through its text steps;
// the photo step is fed by handlePhoto
func (h *Handler) textProductCreate(c tele.Context, w session.ProductCreate, text string) error {
	chatID := c.Chat().ID

	switch w.Step {
	case session.ProductName:
		w.Name = text
		w.Step = session.ProductPrice
		h.store.SetWizard(chatID, w)
		return h.editAnchor(c, presenter.ProductPricePrompt, nil)

	case session.ProductPrice:
		price, err := service.ParsePrice(text)
		if err != nil {
			return c.Send(presenter.InvalidPriceReply)
		}
		w.Price = price
		w.Step = session.ProductPhoto
		h.store.SetWizard(chatID, w)
		return h.editAnchor(c, presenter.ProductPhotoPrompt, nil)

	default:
		return c.Send(presenter.PhotoExpectedReply)
	}
}

func (h *Handler) textProductEdit(c tele.Context, w session.ProductEdit, text string) error {
	chatID := c.Chat().ID

	switch w.Step {
	case session.ProductName:
		w.Name = text
		w.Step = session.ProductPrice
		h.store.SetWizard(chatID, w)
		return h.editAnchor(c, presenter.ProductPricePrompt, nil)

	case session.ProductPrice:
		price, err := service.ParsePrice(text)
		if err != nil {
			return c.Send(presenter.InvalidPriceReply)
		}
		w.Price = price
		w.Step = session.ProductPhoto
		h.store.SetWizard(chatID, w)
		return h.editAnchor(c, presenter.ProductPhotoPrompt, nil)

	default:
		return c.Send(presenter.PhotoExpectedReply)
	}
}

// textCheckout treats the message as the shipping address once payment
// and country are settled
func (h *Handler) textCheckout(c tele.Context, w session.Checkout, address string) error {
	if !w.AwaitingAddress {
		return nil
	}
	userID := c.Sender().ID

	orderID, verified, err := h.orderService.Checkout(userID, address, w.Country, w.PaymentMethod)
	if errors.Is(err, service.ErrEmptyCart) {
		h.store.ClearWizard(c.Chat().ID)
		text, markup := presenter.EmptyCart()
		return h.editAnchor(c, text, markup)
	}
	if err != nil {
		return h.fail(c, "Failed to place order", err)
	}

	h.store.ClearWizard(c.Chat().ID)

	text, markup := presenter.OrderPlaced(orderID, verified)
	return h.editAnchor(c, text, markup)
}

// textVerification stores the Instagram handle and moves on to the photo
func (h *Handler) textVerification(c tele.Context, w session.Verification, text string) error {
	if w.AwaitingPhoto {
		return c.Send(presenter.PhotoExpectedReply)
	}

	handle := strings.TrimPrefix(text, "@")
	if handle == "" {
		return c.Send(presenter.EmptyNameReply)
	}

	h.store.SetWizard(c.Chat().ID, session.Verification{Instagram: handle, AwaitingPhoto: true})
	return h.editAnchor(c, presenter.VerifyPhotoPrompt(), nil)
}

func (h *Handler) sendManageCategories(c tele.Context, notice string) error {
	if err := c.Send(notice); err != nil {
		return err
	}
	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, "Failed to load categories", err)
	}
	text, markup := presenter.ManageCategories(categories)
	return h.editAnchor(c, text, markup)
}

func (h *Handler) sendManageStock(c tele.Context, notice string) error {
	if err := c.Send(notice); err != nil {
		return err
	}
	products, err := h.catalogService.Products()
	if err != nil {
		return h.fail(c, "Failed to load products", err)
	}
	text, markup := presenter.ManageStock(products)
	return h.editAnchor(c, text, markup)
}
