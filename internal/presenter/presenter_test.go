package presenter

import (
	"testing"

	"tiendabot/internal/domain"
	"tiendabot/internal/service"
	"tiendabot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestMainMenu(t *testing.T) {
	t.Run("new user only sees the language picker", func(t *testing.T) {
		text, markup := MainMenu(testutil.NewTestUser(1, ""))

		assert.Equal(t, "Por favor, selecciona tu idioma:", text)
		assert.Len(t, markup.InlineKeyboard, 1)
		assert.Len(t, markup.InlineKeyboard[0], 4)
	})

	t.Run("language chosen unlocks the storefront", func(t *testing.T) {
		text, markup := MainMenu(testutil.NewTestUser(1, "ES"))

		assert.Equal(t, "Idioma seleccionado: 🇪🇸", text)
		assert.Len(t, markup.InlineKeyboard, 4)
	})

	t.Run("privileged user gets the admin entry", func(t *testing.T) {
		user := testutil.NewTestUser(1, "DE")
		user.IsAdmin = true

		_, markup := MainMenu(user)

		assert.Len(t, markup.InlineKeyboard, 5)
		assert.Equal(t, "🛠️ Administrador", markup.InlineKeyboard[4][0].Text)
	})
}

func TestCart(t *testing.T) {
	t.Run("renders one line per item plus the total", func(t *testing.T) {
		items := []domain.CartItem{
			{ProductID: 1, Name: "Gorra", UnitPrice: 15, Quantity: 2, LineTotal: 30},
			{ProductID: 2, Name: "Sudadera", UnitPrice: 40.5, Quantity: 1, LineTotal: 40.5},
		}

		text, markup := Cart(items, 70.5)

		assert.Contains(t, text, "2x Gorra - Unidad: 15.00€ - Total: 30.00€")
		assert.Contains(t, text, "1x Sudadera - Unidad: 40.50€ - Total: 40.50€")
		assert.Contains(t, text, "TOTAL: 70.50€")
		assert.Len(t, markup.InlineKeyboard, 4)
	})

	t.Run("empty cart has no actions beyond back", func(t *testing.T) {
		text, markup := Cart(nil, 0)

		assert.Equal(t, "Tu carrito está vacío.", text)
		assert.Len(t, markup.InlineKeyboard, 1)
	})
}

func TestQuantityKeypad(t *testing.T) {
	text, markup := QuantityKeypad(12, "25")

	assert.Contains(t, text, "25")
	// three digit rows, the backspace row, the cancel row
	assert.Len(t, markup.InlineKeyboard, 5)
	assert.Equal(t, "quantity_1_12", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "quantity_del_12", markup.InlineKeyboard[3][0].Data)
	assert.Equal(t, "confirm_add_12", markup.InlineKeyboard[3][2].Data)
	assert.Equal(t, "cancel_add_12", markup.InlineKeyboard[4][0].Data)
}

func TestProductCard(t *testing.T) {
	caption, markup := ProductCard(testutil.NewTestProduct(9, 1, "Gorra", 15))

	assert.Equal(t, "📦 Producto: Gorra\n💰 Precio: 15.00€", caption)
	assert.Equal(t, "add_to_cart_9", markup.InlineKeyboard[0][0].Data)
}

func TestOrderCard(t *testing.T) {
	lines := []domain.OrderLine{{ProductName: "Gorra", Quantity: 2, UnitPrice: 15}}

	t.Run("pending order offers accept and reject", func(t *testing.T) {
		details := service.OrderDetails{
			Order:     testutil.NewTestOrder(11, 5, domain.StatusPending),
			Lines:     lines,
			Instagram: "comprador",
		}

		text, markup := OrderCard(details)

		assert.Contains(t, text, "⏳ Pedido #11")
		assert.Contains(t, text, "15/06/2024")
		assert.Contains(t, text, "@comprador")
		assert.Contains(t, text, "TOTAL: 30.00€")
		assert.Equal(t, "accept_order_11", markup.InlineKeyboard[0][0].Data)
		assert.Equal(t, "reject_order_11", markup.InlineKeyboard[0][1].Data)
	})

	t.Run("accepted order offers finalize and cancel", func(t *testing.T) {
		details := service.OrderDetails{
			Order: testutil.NewTestOrder(11, 5, domain.StatusAccepted),
			Lines: lines,
		}

		_, markup := OrderCard(details)

		assert.Equal(t, "finalize_order_11", markup.InlineKeyboard[0][0].Data)
		assert.Equal(t, "cancel_order_11", markup.InlineKeyboard[0][1].Data)
	})

	t.Run("rejected order offers re-accept and delete", func(t *testing.T) {
		details := service.OrderDetails{
			Order: testutil.NewTestOrder(11, 5, domain.StatusRejected),
			Lines: lines,
		}

		_, markup := OrderCard(details)

		assert.Len(t, markup.InlineKeyboard, 1)
		assert.Equal(t, "accept_order_11", markup.InlineKeyboard[0][0].Data)
		assert.Equal(t, "delete_order_11", markup.InlineKeyboard[0][1].Data)
	})
}

func TestUserOrders(t *testing.T) {
	t.Run("pending orders get a cancel button", func(t *testing.T) {
		orders := []service.OrderDetails{
			{Order: testutil.NewTestOrder(11, 5, domain.StatusPending)},
			{Order: testutil.NewTestOrder(12, 5, domain.StatusAccepted)},
		}

		text, markup := UserOrders(orders)

		assert.Contains(t, text, "⏳ Pedido #11")
		assert.Contains(t, text, "✅ Pedido #12")
		// one cancel button for the pending order plus the back row
		assert.Len(t, markup.InlineKeyboard, 2)
		assert.Equal(t, "cancel_order_11", markup.InlineKeyboard[0][0].Data)
	})

	t.Run("no orders yet", func(t *testing.T) {
		text, _ := UserOrders(nil)
		assert.Equal(t, "No tienes pedidos todavía.", text)
	})
}

func TestCountryChoice(t *testing.T) {
	t.Run("cash on delivery ships inside Alemania", func(t *testing.T) {
		_, markup := CountryChoice(PaymentCash)
		assert.Equal(t, "country_Alemania", markup.InlineKeyboard[0][0].Data)
	})

	t.Run("crypto ships across Europa", func(t *testing.T) {
		_, markup := CountryChoice(PaymentCrypto)
		assert.Equal(t, "country_EUROPA", markup.InlineKeyboard[0][0].Data)
	})
}

func TestCatalog(t *testing.T) {
	categories := []domain.Category{
		testutil.NewTestCategory(1, "Ropa", "👕"),
		testutil.NewTestCategory(2, "Gorras", "🧢"),
	}

	text, markup := Catalog(categories)

	assert.Equal(t, "CATÁLOGO", text)
	assert.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, "👕 ROPA", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "category_1", markup.InlineKeyboard[0][0].Data)
}
