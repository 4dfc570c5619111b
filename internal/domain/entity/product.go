package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. La baja es lógica:
// Active pasa a false y la fila se conserva.
type Product struct {
	ID         int
	SKU        string // único
	Name       string
	CategoryID *int // FK opcional a Category
	MinQty     int
	MaxQty     int
	Cost       decimal.Decimal
	SalePrice  decimal.Decimal
	Currency   string
	Barcode    *string // único cuando no es null
	ImageURL   *string
	Unit       string
	Active     bool

	// CategoryName viene del JOIN con product_category; no se persiste.
	CategoryName *string
}
