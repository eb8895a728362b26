package presenter

import (
	"fmt"
	"strings"

	"tiendabot/internal/callback"
	"tiendabot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Cart renders the aggregated cart summary with its action keyboard
func Cart(items []domain.CartItem, total float64) (string, *tele.ReplyMarkup) {
	if len(items) == 0 {
		return EmptyCart()
	}

	var b strings.Builder
	b.WriteString("🛒 Tu carrito:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%dx %s - Unidad: %.2f€ - Total: %.2f€\n",
			item.Quantity, item.Name, item.UnitPrice, item.LineTotal)
	}
	fmt.Fprintf(&b, "\nTOTAL: %.2f€", total)

	return b.String(), inline(
		tele.Row{btn("🗑 Vaciar Carrito", callback.Token(callback.ActEmptyCart))},
		tele.Row{btn("✏️ Editar Carrito", callback.Token(callback.ActEditCart))},
		tele.Row{btn("✅ Tramitar Pedido", callback.Token(callback.ActProcessOrder))},
		tele.Row{btn("⬅️ Volver", callback.Token(callback.ActMainMenu))},
	)
}

// EmptyCart renders the message shown when the cart has no items
func EmptyCart() (string, *tele.ReplyMarkup) {
	text := "Tu carrito está vacío."
	return text, inline(tele.Row{btn("⬅️ Volver", callback.Token(callback.ActMainMenu))})
}

// AddedToCart is the toast shown when a keypad quantity lands in the cart
func AddedToCart(productName string, quantity int) string {
	return fmt.Sprintf("✅ %dx %s añadido al carrito.", quantity, productName)
}

// EditCart renders one removal button per distinct cart product
func EditCart(items []domain.CartItem) (string, *tele.ReplyMarkup) {
	var rows []tele.Row
	for _, item := range items {
		label := fmt.Sprintf("❌ %s (%dx)", item.Name, item.Quantity)
		rows = append(rows, tele.Row{btn(label, callback.TokenID(callback.ActCartRemove, item.ProductID))})
	}
	rows = append(rows, tele.Row{btn("⬅️ Volver", callback.Token(callback.ActViewCart))})

	return "Selecciona el producto que quieres eliminar del carrito:", inline(rows...)
}
