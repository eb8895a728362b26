package domain

// Category groups products in the catalog
type Category struct {
	ID        int64
	Name      string
	Icon      string
	CreatedBy int64
}

// Product is a single catalog item
type Product struct {
	ID         int64
	Name       string
	CategoryID int64
	Price      float64
	PhotoID    string
}
