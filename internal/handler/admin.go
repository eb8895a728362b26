package handler

import (
	"tiendabot/internal/callback"
	"tiendabot/internal/presenter"
	"tiendabot/internal/service"
	"tiendabot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func (h *Handler) onAdminPanel(c tele.Context) error {
	chatID := c.Chat().ID
	h.store.ClearWizard(chatID)
	h.clearEphemeral(chatID)

	owner, err := h.authService.IsOwner(c.Sender().ID)
	if err != nil {
		return h.fail(c, "Failed to check owner", err)
	}

	text, markup := presenter.AdminPanel(owner)
	return h.edit(c, text, markup)
}

// onConfigureBot starts the owner bootstrap: three one-time passwords,
// then the first category
func (h *Handler) onConfigureBot(c tele.Context) error {
	h.setAnchor(c)
	h.store.SetWizard(c.Chat().ID, session.OwnerSetup{})

	total := service.SetupPasswordsNeeded(0)
	return h.edit(c, presenter.OwnerSetupPrompt(0, total), nil)
}

func (h *Handler) onManageAdmins(c tele.Context) error {
	text, markup := presenter.ManageAdmins()
	return h.edit(c, text, markup)
}

// onAddAdmin generates a one-time password and posts it as its own
// message so it can be wiped when the owner leaves the screen
func (h *Handler) onAddAdmin(c tele.Context) error {
	ownerID := c.Sender().ID

	password, err := h.authService.IssuePassword(ownerID)
	if err != nil {
		return h.fail(c, "Failed to issue admin password", err)
	}

	h.logger.Info("Admin password issued", zap.Int64("created_by", ownerID))

	text, markup := presenter.PasswordIssued(password)
	msg, err := h.bot.Send(c.Chat(), text, markup, tele.ModeMarkdown)
	if err != nil {
		return h.fail(c, "Failed to send password message", err)
	}

	h.store.Update(c.Chat().ID, func(s *session.Session) {
		s.PasswordMsgID = msg.ID
	})
	return c.Respond()
}

// onAdminBack wipes the password message so the credential doesn't
// linger in the chat history
func (h *Handler) onAdminBack(c tele.Context) error {
	chatID := c.Chat().ID

	sess := h.store.Get(chatID)
	if sess.PasswordMsgID != 0 {
		h.deleteMessage(chatID, sess.PasswordMsgID)
		h.store.Update(chatID, func(s *session.Session) {
			s.PasswordMsgID = 0
		})
	}
	return c.Respond()
}

func (h *Handler) onManageCategories(c tele.Context) error {
	h.store.ClearWizard(c.Chat().ID)
	return h.showManageCategories(c)
}

func (h *Handler) showManageCategories(c tele.Context) error {
	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, "Failed to load categories", err)
	}

	text, markup := presenter.ManageCategories(categories)
	return h.edit(c, text, markup)
}

func (h *Handler) onAddCategory(c tele.Context) error {
	h.setAnchor(c)
	h.store.SetWizard(c.Chat().ID, session.CategoryCreate{})
	return h.edit(c, presenter.CategoryNamePrompt, nil)
}

func (h *Handler) onEditCategory(c tele.Context) error {
	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, "Failed to load categories", err)
	}

	text, markup := presenter.CategoryPicker(categories, callback.ActSelectEditCategory,
		"Selecciona la categoría a editar:")
	return h.edit(c, text, markup)
}

func (h *Handler) onSelectEditCategory(c tele.Context, p callback.Parsed) error {
	categoryID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	h.setAnchor(c)
	h.store.SetWizard(c.Chat().ID, session.CategoryEdit{CategoryID: categoryID})
	return h.edit(c, presenter.CategoryRenamePrompt, nil)
}

func (h *Handler) onDeleteCategory(c tele.Context) error {
	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, "Failed to load categories", err)
	}

	text, markup := presenter.CategoryPicker(categories, callback.ActConfirmDeleteCategory,
		"Selecciona la categoría a eliminar:")
	return h.edit(c, text, markup)
}

func (h *Handler) onConfirmDeleteCategory(c tele.Context, p callback.Parsed) error {
	categoryID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	category, err := h.catalogService.Category(categoryID)
	if err != nil {
		return h.fail(c, "Failed to load category", err)
	}

	text, markup := presenter.ConfirmDeleteCategory(*category)
	return h.edit(c, text, markup)
}

func (h *Handler) onDoDeleteCategory(c tele.Context, p callback.Parsed) error {
	categoryID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	if err := h.catalogService.DeleteCategory(categoryID); err != nil {
		return h.fail(c, "Failed to delete category", err)
	}

	h.logger.Info("Category deleted",
		zap.Int64("category_id", categoryID),
		zap.Int64("user_id", c.Sender().ID),
	)

	if err := h.showManageCategories(c); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{Text: presenter.CategoryDeletedReply})
}

func (h *Handler) onAdminStock(c tele.Context) error {
	h.store.ClearWizard(c.Chat().ID)
	return h.showManageStock(c)
}

func (h *Handler) showManageStock(c tele.Context) error {
	products, err := h.catalogService.Products()
	if err != nil {
		return h.fail(c, "Failed to load products", err)
	}

	text, markup := presenter.ManageStock(products)
	return h.edit(c, text, markup)
}

func (h *Handler) onAddProduct(c tele.Context) error {
	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, "Failed to load categories", err)
	}

	text, markup := presenter.ProductCategoryPicker(categories)
	return h.edit(c, text, markup)
}

func (h *Handler) onSelectCategory(c tele.Context, p callback.Parsed) error {
	categoryID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	h.setAnchor(c)
	h.store.SetWizard(c.Chat().ID, session.ProductCreate{
		CategoryID: categoryID,
		Step:       session.ProductName,
	})
	return h.edit(c, presenter.ProductNamePrompt, nil)
}

// onEditProduct lists products when pressed bare and starts the edit
// wizard once one is picked
func (h *Handler) onEditProduct(c tele.Context, p callback.Parsed) error {
	productID, picked := p.ID()
	if !picked {
		products, err := h.catalogService.Products()
		if err != nil {
			return h.fail(c, "Failed to load products", err)
		}
		text, markup := presenter.ProductPicker(products, callback.ActEditProduct,
			"Selecciona el producto a editar:")
		return h.edit(c, text, markup)
	}

	product, err := h.catalogService.Product(productID)
	if err != nil {
		return h.fail(c, "Failed to load product", err)
	}

	h.setAnchor(c)
	h.store.SetWizard(c.Chat().ID, session.ProductEdit{
		ProductID:  productID,
		CategoryID: product.CategoryID,
		Step:       session.ProductName,
	})
	return h.edit(c, presenter.ProductNamePrompt, nil)
}

func (h *Handler) onDeleteProduct(c tele.Context) error {
	products, err := h.catalogService.Products()
	if err != nil {
		return h.fail(c, "Failed to load products", err)
	}

	text, markup := presenter.ProductPicker(products, callback.ActConfirmDeleteProduct,
		"Selecciona el producto a eliminar:")
	return h.edit(c, text, markup)
}

func (h *Handler) onConfirmDeleteProduct(c tele.Context, p callback.Parsed) error {
	productID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	product, err := h.catalogService.Product(productID)
	if err != nil {
		return h.fail(c, "Failed to load product", err)
	}

	text, markup := presenter.ConfirmDeleteProduct(*product)
	return h.edit(c, text, markup)
}

func (h *Handler) onDoDeleteProduct(c tele.Context, p callback.Parsed) error {
	productID, ok := p.ID()
	if !ok {
		return c.Respond()
	}

	if err := h.catalogService.DeleteProduct(productID); err != nil {
		return h.fail(c, "Failed to delete product", err)
	}

	h.logger.Info("Product deleted",
		zap.Int64("product_id", productID),
		zap.Int64("user_id", c.Sender().ID),
	)

	if err := h.showManageStock(c); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{Text: presenter.ProductDeletedReply})
}
