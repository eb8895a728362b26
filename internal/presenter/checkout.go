package presenter

import (
	"fmt"

	"tiendabot/internal/callback"

	tele "gopkg.in/telebot.v3"
)

// Payment methods offered at checkout
const (
	PaymentCrypto = "CryptoWallet"
	PaymentCash   = "Contra reembolso"
)

// PaymentMethods renders the payment method choice
func PaymentMethods() (string, *tele.ReplyMarkup) {
	return "💳 Selecciona el método de pago:", inline(
		tele.Row{btn("🪙 CryptoWallet", callback.Token(callback.ActPayment, "crypto"))},
		tele.Row{btn("💶 Contra reembolso", callback.Token(callback.ActPayment, "cash"))},
		tele.Row{btn("⬅️ Volver", callback.Token(callback.ActViewCart))},
	)
}

// CountryChoice renders the shipping region for the chosen payment method.
// Cash on delivery only ships inside Alemania, crypto ships across Europa.
func CountryChoice(paymentMethod string) (string, *tele.ReplyMarkup) {
	if paymentMethod == PaymentCash {
		return "🌍 Selecciona el país de envío:", inline(
			tele.Row{btn("🇩🇪 Alemania", callback.Token(callback.ActCountry, "Alemania"))},
			tele.Row{btn("⬅️ Volver", callback.Token(callback.ActProcessOrder))},
		)
	}
	return "🌍 Selecciona el país de envío:", inline(
		tele.Row{btn("🇪🇺 EUROPA", callback.Token(callback.ActCountry, "EUROPA"))},
		tele.Row{btn("⬅️ Volver", callback.Token(callback.ActProcessOrder))},
	)
}

// AddressPrompt asks the shopper for a shipping address
func AddressPrompt() string {
	return "📍 Escribe la dirección de envío completa:"
}

// OrderPlaced confirms a stored order and nudges unverified accounts
func OrderPlaced(orderID int64, verified bool) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("✅ Pedido #%d registrado. Te avisaremos cuando sea aceptado.", orderID)
	if !verified {
		text += "\n\n⚠️ Tu cuenta no está verificada. Verifícala para agilizar el pedido."
		return text, inline(
			tele.Row{btn("🔐 Verificar cuenta", callback.Token(callback.ActVerifyAccount))},
			tele.Row{btn("⬅️ Menú principal", callback.Token(callback.ActMainMenu))},
		)
	}
	return text, inline(tele.Row{btn("⬅️ Menú principal", callback.Token(callback.ActMainMenu))})
}

// VerifyInstagramPrompt asks for the shopper's Instagram username
func VerifyInstagramPrompt() string {
	return "📷 Escribe tu nombre de usuario de Instagram (sin @):"
}

// VerifyPhotoPrompt asks for the verification selfie
func VerifyPhotoPrompt() string {
	return "🤳 Envía una foto sujetando un papel con tu nombre de usuario de Instagram."
}

// VerifyDone confirms a stored verification
func VerifyDone() (string, *tele.ReplyMarkup) {
	text := "✅ Verificación recibida. Un administrador la revisará."
	return text, inline(tele.Row{btn("⬅️ Menú principal", callback.Token(callback.ActMainMenu))})
}
