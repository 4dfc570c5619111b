package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search     string // substring case-insensitive sobre name, sku o barcode
	CategoryID *int   // igualdad exacta cuando no es nil
	Active     *bool  // solo se filtra cuando el query param es literalmente true/false
}

// ProductUpdate campos de una actualización parcial. Los campos escalares
// solo generan asignación cuando están presentes (semántica COALESCE);
// CategoryID, Barcode e ImageURL se escriben SIEMPRE con el valor recibido
// (o NULL si faltan), asimetría heredada del comportamiento original que
// los clientes existentes asumen.
type ProductUpdate struct {
	SKU       *string
	Name      *string
	MinQty    *int
	MaxQty    *int
	Cost      *decimal.Decimal
	SalePrice *decimal.Decimal
	Currency  *string
	Unit      *string
	Active    *bool

	CategoryID *int
	Barcode    *string
	ImageURL   *string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// List devuelve una página ordenada por id DESC y el total con el mismo filtro.
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	GetByID(id int) (*entity.Product, error)
	Create(product *entity.Product) error
	Update(id int, fields ProductUpdate) error
	// SoftDelete marca active=false; la fila se conserva.
	SoftDelete(id int) error
}
