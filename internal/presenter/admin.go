package presenter

import (
	"fmt"
	"strings"

	"tiendabot/internal/callback"
	"tiendabot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// AdminLoginPrompt asks for an access password
func AdminLoginPrompt() string {
	return "🔒 Introduce la contraseña de administrador:"
}

// AdminPanel renders the root admin menu
func AdminPanel(isOwner bool) (string, *tele.ReplyMarkup) {
	rows := []tele.Row{
		{btn("📁 Categorías", callback.Token(callback.ActManageCategories))},
		{btn("📦 Stock", callback.Token(callback.ActAdminStock))},
		{btn("📑 Pedidos", callback.Token(callback.ActManageOrders))},
	}
	if isOwner {
		rows = append(rows, tele.Row{btn("👤 Administradores", callback.Token(callback.ActManageAdmins))})
	}
	rows = append(rows, tele.Row{btn("⬅️ Volver", callback.Token(callback.ActMainMenu))})

	return "⚙️ Panel de administración:", inline(rows...)
}

// ManageAdmins renders the owner's admin management menu
func ManageAdmins() (string, *tele.ReplyMarkup) {
	return "👤 Gestión de administradores:", inline(
		tele.Row{btn("➕ Generar contraseña", callback.Token(callback.ActAddAdmin))},
		tele.Row{btn("⬅️ Volver", callback.Token(callback.ActAdminPanel))},
	)
}

// PasswordIssued renders a freshly generated one-time admin password
func PasswordIssued(password string) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("🔑 Contraseña generada:\n\n`%s`\n\nVálida durante %d minutos y de un solo uso.",
		password, int(domain.AdminPasswordTTL.Minutes()))
	return text, inline(tele.Row{btn("⬅️ Volver", callback.Token(callback.ActAdminBack))})
}

// OwnerSetupPrompt asks the owner for the next setup password
func OwnerSetupPrompt(collected, needed int) string {
	return fmt.Sprintf("Introduce la contraseña %d de %d (mínimo 10 caracteres, con letras, números y símbolos):",
		collected+1, needed)
}

// OwnerSetupCategoryPrompt asks the owner for the first category name
func OwnerSetupCategoryPrompt() string {
	return "Contraseñas guardadas. Ahora escribe el nombre de la primera categoría:"
}

// OwnerSetupDone confirms the initial configuration
func OwnerSetupDone(categoryName string) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("✅ Configuración completada. Categoría \"%s\" creada.", categoryName)
	return text, inline(tele.Row{btn("⬅️ Menú principal", callback.Token(callback.ActMainMenu))})
}

// ManageCategories renders the category administration menu
func ManageCategories(categories []domain.Category) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("📁 Categorías:\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "\n%s %s", category.Icon, category.Name)
	}
	if len(categories) == 0 {
		b.WriteString("\nNo hay categorías todavía.")
	}

	return b.String(), inline(
		tele.Row{btn("➕ Añadir", callback.Token(callback.ActAddCategory))},
		tele.Row{btn("✏️ Editar", callback.Token(callback.ActEditCategory))},
		tele.Row{btn("🗑 Eliminar", callback.Token(callback.ActDeleteCategory))},
		tele.Row{btn("⬅️ Volver", callback.Token(callback.ActAdminPanel))},
	)
}

// CategoryPicker renders one button per category routed to the given action
func CategoryPicker(categories []domain.Category, action callback.Action, prompt string) (string, *tele.ReplyMarkup) {
	var rows []tele.Row
	for _, category := range categories {
		label := fmt.Sprintf("%s %s", category.Icon, category.Name)
		rows = append(rows, tele.Row{btn(label, callback.TokenID(action, category.ID))})
	}
	rows = append(rows, tele.Row{btn("⬅️ Volver", callback.Token(callback.ActManageCategories))})

	return prompt, inline(rows...)
}

// ConfirmDeleteCategory asks for confirmation before dropping a category
func ConfirmDeleteCategory(category domain.Category) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("¿Eliminar la categoría \"%s\" y todos sus productos?", category.Name)
	return text, inline(tele.Row{
		btn("✅ Sí", callback.TokenID(callback.ActDoDeleteCategory, category.ID)),
		btn("❌ No", callback.Token(callback.ActManageCategories)),
	})
}

// ManageStock renders the product administration menu
func ManageStock(products []domain.Product) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("📦 Stock:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "\n%s - %.2f€", p.Name, p.Price)
	}
	if len(products) == 0 {
		b.WriteString("\nNo hay productos todavía.")
	}

	return b.String(), inline(
		tele.Row{btn("➕ Añadir", callback.Token(callback.ActAddProduct))},
		tele.Row{btn("✏️ Editar", callback.Token(callback.ActEditProduct))},
		tele.Row{btn("🗑 Eliminar", callback.Token(callback.ActDeleteProduct))},
		tele.Row{btn("⬅️ Volver", callback.Token(callback.ActAdminPanel))},
	)
}

// ProductPicker renders one button per product routed to the given action
func ProductPicker(products []domain.Product, action callback.Action, prompt string) (string, *tele.ReplyMarkup) {
	var rows []tele.Row
	for _, p := range products {
		label := fmt.Sprintf("%s - %.2f€", p.Name, p.Price)
		rows = append(rows, tele.Row{btn(label, callback.TokenID(action, p.ID))})
	}
	rows = append(rows, tele.Row{btn("⬅️ Volver", callback.Token(callback.ActAdminStock))})

	return prompt, inline(rows...)
}

// ConfirmDeleteProduct asks for confirmation before dropping a product
func ConfirmDeleteProduct(p domain.Product) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("¿Eliminar el producto \"%s\"?", p.Name)
	return text, inline(tele.Row{
		btn("✅ Sí", callback.TokenID(callback.ActDoDeleteProduct, p.ID)),
		btn("❌ No", callback.Token(callback.ActAdminStock)),
	})
}

// ProductCategoryPicker asks in which category a new product goes
func ProductCategoryPicker(categories []domain.Category) (string, *tele.ReplyMarkup) {
	var rows []tele.Row
	for _, category := range categories {
		label := fmt.Sprintf("%s %s", category.Icon, category.Name)
		rows = append(rows, tele.Row{btn(label, callback.TokenID(callback.ActSelectCategory, category.ID))})
	}
	rows = append(rows, tele.Row{btn("⬅️ Volver", callback.Token(callback.ActAdminStock))})

	return "Selecciona la categoría del producto:", inline(rows...)
}
