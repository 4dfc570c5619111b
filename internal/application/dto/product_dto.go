package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. sku y name son
// obligatorios; el resto toma defaults cuando falta.
type CreateProductRequest struct {
	SKU        string           `json:"sku"`
	Name       string           `json:"name"`
	CategoryID *int             `json:"category_id"`
	MinQty     *int             `json:"min_qty"`
	MaxQty     *int             `json:"max_qty"`
	Cost       *decimal.Decimal `json:"cost"`
	SalePrice  *decimal.Decimal `json:"sale_price"`
	Currency   *string          `json:"currency"`
	Barcode    *string          `json:"barcode"`
	ImageURL   *string          `json:"image_url"`
	Unit       *string          `json:"unit"`
	Active     *bool            `json:"active"`
}

// UpdateProductRequest entrada para actualizar un producto. Los campos
// escalares ausentes conservan su valor; category_id, barcode e image_url se
// sobrescriben siempre con lo recibido (nil => NULL), igual que el backend
// original: un cliente que no los reenvía los limpia.
type UpdateProductRequest struct {
	SKU        *string          `json:"sku"`
	Name       *string          `json:"name"`
	CategoryID *int             `json:"category_id"`
	MinQty     *int             `json:"min_qty"`
	MaxQty     *int             `json:"max_qty"`
	Cost       *decimal.Decimal `json:"cost"`
	SalePrice  *decimal.Decimal `json:"sale_price"`
	Currency   *string          `json:"currency"`
	Barcode    *string          `json:"barcode"`
	ImageURL   *string          `json:"image_url"`
	Unit       *string          `json:"unit"`
	Active     *bool            `json:"active"`
}

// ProductResponse salida de un producto con el nombre de su categoría.
type ProductResponse struct {
	ID           int             `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CategoryID   *int            `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	MinQty       int             `json:"min_qty"`
	MaxQty       int             `json:"max_qty"`
	Cost         decimal.Decimal `json:"cost"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Currency     string          `json:"currency"`
	Barcode      *string         `json:"barcode"`
	ImageURL     *string         `json:"image_url"`
	Unit         string          `json:"unit"`
	Active       bool            `json:"active"`
}

// ProductListResponse sobre paginado de productos.
type ProductListResponse struct {
	Data     []ProductResponse `json:"data"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}
