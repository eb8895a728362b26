package presenter

import (
	"tiendabot/internal/callback"
	"tiendabot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// MainMenu renders the root menu: language picker, then the storefront
// entries once a language is chosen, plus the admin entry for privileged
// users
func MainMenu(user *domain.User) (string, *tele.ReplyMarkup) {
	rows := []tele.Row{
		{
			btn("🇬🇧", callback.Token(callback.ActLanguage, "GB")),
			btn("🇩🇪", callback.Token(callback.ActLanguage, "DE")),
			btn("🇫🇷", callback.Token(callback.ActLanguage, "FR")),
			btn("🇪🇸", callback.Token(callback.ActLanguage, "ES")),
		},
	}

	text := "Por favor, selecciona tu idioma:"
	if user != nil && user.Language != "" {
		text = "Idioma seleccionado: " + domain.FlagEmoji(user.Language)
		rows = append(rows,
			tele.Row{btn("📚 Catálogo", callback.Token(callback.ActShowCatalog))},
			tele.Row{btn("🛒 Carrito", callback.Token(callback.ActViewCart))},
			tele.Row{btn("📦 Pedidos", callback.Token(callback.ActViewOrders))},
		)
	}
	if user != nil && user.Privileged() {
		rows = append(rows, tele.Row{btn("🛠️ Administrador", callback.Token(callback.ActAdminPanel))})
	}

	return text, inline(rows...)
}

// OwnerWelcome renders the prompt the first user sees after claiming the
// owner role
func OwnerWelcome() (string, *tele.ReplyMarkup) {
	text := "Has sido establecido como el owner del bot. Por favor, sigue las instrucciones para configurar tu bot."
	return text, inline(tele.Row{btn("Configurar bot", callback.Token(callback.ActConfigureBot))})
}
