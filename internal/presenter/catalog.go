package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"tiendabot/internal/callback"
	"tiendabot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Catalog renders the category list shown to shoppers
func Catalog(categories []domain.Category) (string, *tele.ReplyMarkup) {
	var rows []tele.Row
	for _, category := range categories {
		label := fmt.Sprintf("%s %s", category.Icon, strings.ToUpper(category.Name))
		rows = append(rows, tele.Row{btn(label, callback.TokenID(callback.ActCategory, category.ID))})
	}
	rows = append(rows, tele.Row{btn("⬅️ Volver", callback.Token(callback.ActMainMenu))})

	return "CATÁLOGO", inline(rows...)
}

// CategoryHeader renders the anchor message above a category's product cards
func CategoryHeader(categoryName string) (string, *tele.ReplyMarkup) {
	text := "Productos de la categoría: " + categoryName
	return text, inline(tele.Row{btn("Volver al Catálogo", callback.Token(callback.ActShowCatalog))})
}

// ProductCard renders the caption and keyboard of one product photo card
func ProductCard(p domain.Product) (string, *tele.ReplyMarkup) {
	caption := fmt.Sprintf("📦 Producto: %s\n💰 Precio: %.2f€", p.Name, p.Price)
	return caption, inline(tele.Row{btn("Añadir al Carrito", callback.TokenID(callback.ActAddToCart, p.ID))})
}

// QuantityKeypad renders the numeric keypad with the digits typed so far
func QuantityKeypad(productID int64, buffer string) (string, *tele.ReplyMarkup) {
	id := strconv.FormatInt(productID, 10)
	key := func(digit string) tele.Btn {
		return btn(digit, callback.Token(callback.ActQuantity, digit, id))
	}

	text := "Selecciona la cantidad para añadir al carrito: " + buffer
	return text, inline(
		tele.Row{key("1"), key("2"), key("3")},
		tele.Row{key("4"), key("5"), key("6")},
		tele.Row{key("7"), key("8"), key("9")},
		tele.Row{
			btn("🔙", callback.Token(callback.ActQuantity, callback.QuantityBackspace, id)),
			key("0"),
			btn("✅ Aceptar", callback.TokenID(callback.ActConfirmAdd, productID)),
		},
		tele.Row{btn("❌ Cancelar", callback.TokenID(callback.ActCancelAdd, productID))},
	)
}
