package presenter

// Prompts and replies used while a multi-step flow is collecting input

const (
	CategoryNamePrompt    = "Escribe el nombre de la categoría:"
	CategoryRenamePrompt  = "Escribe el nuevo nombre de la categoría:"
	CategoryIconPrompt    = "Envía un emoji para la categoría:"
	KeypadExpectedReply   = "Usa el teclado para indicar la cantidad."
	ProductNamePrompt     = "Escribe el nombre del producto:"
	ProductPricePrompt    = "Escribe el precio del producto en euros (por ejemplo 12.50):"
	ProductPhotoPrompt    = "Envía la foto del producto:"
	InvalidPriceReply     = "Precio no válido. Escribe un número mayor que cero."
	InvalidQuantityReply  = "Cantidad no válida."
	InvalidPasswordReply  = "❌ Contraseña incorrecta o caducada."
	WeakPasswordReply     = "La contraseña debe tener al menos 10 caracteres e incluir letras, números y símbolos."
	EmptyNameReply        = "El nombre no puede estar vacío."
	EmptyIconReply        = "Parece que no has enviado un icono, inténtalo de nuevo:"
	PhotoExpectedReply    = "Necesito una foto para continuar."
	TextExpectedReply     = "Necesito un texto para continuar."
	AdminGrantedReply     = "✅ Contraseña correcta. Ya eres administrador."
	NotAuthorizedReply    = "No tienes permisos para hacer eso."
	CategoryCreatedReply  = "✅ Categoría creada."
	CategoryUpdatedReply  = "✅ Categoría actualizada."
	CategoryDeletedReply  = "✅ Categoría eliminada."
	ProductCreatedReply   = "✅ Producto creado."
	ProductUpdatedReply   = "✅ Producto actualizado."
	ProductDeletedReply   = "✅ Producto eliminado."
	CartAddedReply        = "✅ Añadido al carrito."
	CartEmptiedReply      = "🗑 Carrito vaciado."
	CartItemRemovedReply  = "✅ Producto eliminado del carrito."
	OrderAcceptedReply    = "✅ Pedido aceptado."
	OrderRejectedReply    = "❌ Pedido rechazado."
	OrderCancelledReply   = "❌ Pedido cancelado."
	OrderFinalizedReply   = "🏁 Pedido finalizado."
	OrderDeletedReply     = "🗑 Pedido eliminado."
	OrderAcceptedNotice   = "✅ Tu pedido #%d ha sido aceptado."
	OrderRejectedNotice   = "❌ Tu pedido #%d ha sido rechazado."
)
