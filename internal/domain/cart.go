package domain

// CartItem is one aggregated cart position: repeated adds of the same
// product collapse into a single line with a summed quantity
type CartItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
	LineTotal float64
}

// CartLine is one raw cart row, used to snapshot order contents
type CartLine struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice float64
}

// CartTotal sums line totals over aggregated cart items
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal
	}
	return total
}
