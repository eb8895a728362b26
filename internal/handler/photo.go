package handler

import (
	"errors"

	"tiendabot/internal/domain"
	"tiendabot/internal/presenter"
	"tiendabot/internal/service"
	"tiendabot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handlePhoto feeds an incoming photo into the wizard steps that expect
// one: the product photo step and the verification selfie
func (h *Handler) handlePhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}
	fileID := photo.FileID

	sess := h.store.Get(c.Chat().ID)
	switch w := sess.Wizard.(type) {
	case session.ProductCreate:
		if w.Step != session.ProductPhoto {
			return c.Send(presenter.TextExpectedReply)
		}
		return h.photoProductCreate(c, w, fileID)

	case session.ProductEdit:
		if w.Step != session.ProductPhoto {
			return c.Send(presenter.TextExpectedReply)
		}
		return h.photoProductEdit(c, w, fileID)

	case session.Verification:
		if !w.AwaitingPhoto {
			return c.Send(presenter.TextExpectedReply)
		}
		return h.photoVerification(c, w, fileID)
	}
	return nil
}

func (h *Handler) photoProductCreate(c tele.Context, w session.ProductCreate, fileID string) error {
	product := domain.Product{
		Name:       w.Name,
		CategoryID: w.CategoryID,
		Price:      w.Price,
		PhotoID:    fileID,
	}

	productID, err := h.catalogService.CreateProduct(product)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Send(presenter.ErrGeneric)
		}
		return h.fail(c, "Failed to create product", err)
	}

	h.logger.Info("Product created",
		zap.Int64("product_id", productID),
		zap.Int64("user_id", c.Sender().ID),
	)
	h.store.ClearWizard(c.Chat().ID)

	return h.sendManageStock(c, presenter.ProductCreatedReply)
}

func (h *Handler) photoProductEdit(c tele.Context, w session.ProductEdit, fileID string) error {
	product := domain.Product{
		ID:         w.ProductID,
		Name:       w.Name,
		CategoryID: w.CategoryID,
		Price:      w.Price,
		PhotoID:    fileID,
	}

	if err := h.catalogService.UpdateProduct(product); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Send(presenter.ErrGeneric)
		}
		return h.fail(c, "Failed to update product", err)
	}

	h.logger.Info("Product updated",
		zap.Int64("product_id", w.ProductID),
		zap.Int64("user_id", c.Sender().ID),
	)
	h.store.ClearWizard(c.Chat().ID)

	return h.sendManageStock(c, presenter.ProductUpdatedReply)
}

func (h *Handler) photoVerification(c tele.Context, w session.Verification, fileID string) error {
	userID := c.Sender().ID

	if err := h.orderService.Verify(userID, w.Instagram, fileID); err != nil {
		return h.fail(c, "Failed to store verification", err)
	}

	h.logger.Info("User verified",
		zap.Int64("user_id", userID),
		zap.String("instagram", w.Instagram),
	)
	h.store.ClearWizard(c.Chat().ID)

	text, markup := presenter.VerifyDone()
	return h.editAnchor(c, text, markup)
}
