package domain

import "time"

// OrderStatus is the order lifecycle state
type OrderStatus string

const (
	StatusPending  OrderStatus = "pendiente"
	StatusAccepted OrderStatus = "aceptado"
	StatusRejected OrderStatus = "rechazado"
)

// Icon returns the status icon shown in order listings
func (s OrderStatus) Icon() string {
	switch s {
	case StatusPending:
		return "⏳"
	case StatusAccepted:
		return "✅"
	case StatusRejected:
		return "❌"
	default:
		return "❓"
	}
}

// Order is a placed order
type Order struct {
	ID            int64
	UserID        int64
	Address       string
	Country       string
	PaymentMethod string
	Status        OrderStatus
	CreatedAt     time.Time
}

// DateString returns the order date in DD/MM/YYYY format
func (o Order) DateString() string {
	return o.CreatedAt.Format("02/01/2006")
}

// OrderLine is a snapshot of one ordered product, decoupled from the
// live product row so later catalog edits do not rewrite history
type OrderLine struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
}
