package presenter

import (
	"fmt"
	"strings"

	"tiendabot/internal/callback"
	"tiendabot/internal/domain"
	"tiendabot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// UserOrders renders the shopper's own order history
func UserOrders(orders []service.OrderDetails) (string, *tele.ReplyMarkup) {
	if len(orders) == 0 {
		text := "No tienes pedidos todavía."
		return text, inline(tele.Row{btn("⬅️ Volver", callback.Token(callback.ActMainMenu))})
	}

	var b strings.Builder
	b.WriteString("📑 Tus pedidos:\n")
	var rows []tele.Row
	for _, details := range orders {
		o := details.Order
		fmt.Fprintf(&b, "\n%s Pedido #%d (%s)\n", o.Status.Icon(), o.ID, o.DateString())
		writeOrderLines(&b, details.Lines)
		if o.Status == domain.StatusPending {
			label := fmt.Sprintf("❌ Cancelar pedido #%d", o.ID)
			rows = append(rows, tele.Row{btn(label, callback.TokenID(callback.ActCancelOrder, o.ID))})
		}
	}
	rows = append(rows, tele.Row{btn("⬅️ Volver", callback.Token(callback.ActMainMenu))})

	return b.String(), inline(rows...)
}

// ManageOrders renders the admin order triage menu
func ManageOrders() (string, *tele.ReplyMarkup) {
	return "Gestión de pedidos:", inline(
		tele.Row{btn("⏳ Pendientes", callback.Token(callback.ActOrdersPending))},
		tele.Row{btn("✅ Aceptados", callback.Token(callback.ActOrdersAccepted))},
		tele.Row{btn("❌ Rechazados", callback.Token(callback.ActOrdersRejected))},
		tele.Row{btn("⬅️ Volver", callback.Token(callback.ActAdminPanel))},
	)
}

// OrderListHeader renders the anchor message above a batch of order cards
func OrderListHeader(status domain.OrderStatus, count int) (string, *tele.ReplyMarkup) {
	var text string
	switch status {
	case domain.StatusPending:
		text = fmt.Sprintf("⏳ Pedidos pendientes: %d", count)
	case domain.StatusAccepted:
		text = fmt.Sprintf("✅ Pedidos aceptados: %d", count)
	case domain.StatusRejected:
		text = fmt.Sprintf("❌ Pedidos rechazados: %d", count)
	default:
		text = fmt.Sprintf("Pedidos: %d", count)
	}
	return text, inline(tele.Row{btn("⬅️ Volver", callback.Token(callback.ActManageOrders))})
}

// OrderCard renders one admin order card with the actions its status allows
func OrderCard(details service.OrderDetails) (string, *tele.ReplyMarkup) {
	o := details.Order

	var b strings.Builder
	fmt.Fprintf(&b, "%s Pedido #%d\n", o.Status.Icon(), o.ID)
	fmt.Fprintf(&b, "📅 Fecha: %s\n", o.DateString())
	fmt.Fprintf(&b, "👤 Usuario: %d\n", o.UserID)
	fmt.Fprintf(&b, "📍 Dirección: %s\n", o.Address)
	fmt.Fprintf(&b, "🌍 País: %s\n", o.Country)
	fmt.Fprintf(&b, "💳 Pago: %s\n", o.PaymentMethod)
	if details.Instagram != "" {
		fmt.Fprintf(&b, "📷 Instagram: @%s\n", details.Instagram)
	}
	b.WriteString("\nProductos:\n")
	writeOrderLines(&b, details.Lines)
	fmt.Fprintf(&b, "\nTOTAL: %.2f€", orderTotal(details.Lines))

	var rows []tele.Row
	switch o.Status {
	case domain.StatusPending:
		rows = append(rows, tele.Row{
			btn("✅ Aceptar", callback.TokenID(callback.ActAcceptOrder, o.ID)),
			btn("❌ Rechazar", callback.TokenID(callback.ActRejectOrder, o.ID)),
		})
	case domain.StatusAccepted:
		rows = append(rows, tele.Row{
			btn("🏁 Finalizar", callback.TokenID(callback.ActFinalizeOrder, o.ID)),
			btn("❌ Cancelar", callback.TokenID(callback.ActCancelOrder, o.ID)),
		})
	case domain.StatusRejected:
		rows = append(rows, tele.Row{
			btn("✅ Aceptar", callback.TokenID(callback.ActAcceptOrder, o.ID)),
			btn("🗑 Eliminar", callback.TokenID(callback.ActDeleteOrder, o.ID)),
		})
	}

	return b.String(), inline(rows...)
}

func writeOrderLines(b *strings.Builder, lines []domain.OrderLine) {
	for _, line := range lines {
		fmt.Fprintf(b, "  %dx %s - %.2f€\n", line.Quantity, line.ProductName, line.UnitPrice)
	}
}

func orderTotal(lines []domain.OrderLine) float64 {
	var total float64
	for _, line := range lines {
		total += float64(line.Quantity) * line.UnitPrice
	}
	return total
}
