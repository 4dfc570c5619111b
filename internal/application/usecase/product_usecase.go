package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Defaults de producto cuando el campo no viene en el alta.
const (
	defaultCurrency = "ARS"
	defaultUnit     = "unidad"
)

// ProductUseCase casos de uso CRUD para productos. La baja es lógica.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos con filtros y paginación (orden id DESC).
func (uc *ProductUseCase) List(filter repository.ProductFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(filter, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		data = append(data, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data:     data,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// GetByID obtiene un producto por ID (incluye inactivos).
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Create crea un producto. Orden de validación: requeridos, rango min/max,
// precios; cualquier violación falla antes de tocar el storage.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrSKUNameRequired
	}
	minQty := intOr(in.MinQty, 0)
	maxQty := intOr(in.MaxQty, 0)
	if minQty < 0 || maxQty < minQty {
		return nil, domain.ErrInvalidRange
	}
	cost := decimalOr(in.Cost, decimal.Zero)
	salePrice := decimalOr(in.SalePrice, decimal.Zero)
	if cost.IsNegative() || salePrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	product := &entity.Product{
		SKU:        in.SKU,
		Name:       in.Name,
		CategoryID: in.CategoryID,
		MinQty:     minQty,
		MaxQty:     maxQty,
		Cost:       cost,
		SalePrice:  salePrice,
		Currency:   stringOr(in.Currency, defaultCurrency),
		Barcode:    in.Barcode,
		ImageURL:   in.ImageURL,
		Unit:       stringOr(in.Unit, defaultUnit),
		Active:     boolOr(in.Active, true),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial. Solo se validan los valores
// presentes en la petición (el rango min/max únicamente cuando vienen
// ambos); la fila resultante no se revalida, igual que el backend original.
func (uc *ProductUseCase) Update(id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.MinQty != nil && in.MaxQty != nil && (*in.MinQty < 0 || *in.MaxQty < *in.MinQty) {
		return nil, domain.ErrInvalidRange
	}
	if (in.Cost != nil && in.Cost.IsNegative()) || (in.SalePrice != nil && in.SalePrice.IsNegative()) {
		return nil, domain.ErrInvalidPrice
	}
	fields := repository.ProductUpdate{
		SKU:        in.SKU,
		Name:       in.Name,
		MinQty:     in.MinQty,
		MaxQty:     in.MaxQty,
		Cost:       in.Cost,
		SalePrice:  in.SalePrice,
		Currency:   in.Currency,
		Unit:       in.Unit,
		Active:     in.Active,
		CategoryID: in.CategoryID,
		Barcode:    in.Barcode,
		ImageURL:   in.ImageURL,
	}
	if err := uc.repo.Update(id, fields); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete baja lógica: active=false, la fila sigue recuperable por ID.
func (uc *ProductUseCase) Delete(id int) error {
	return uc.repo.SoftDelete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		MinQty:       p.MinQty,
		MaxQty:       p.MaxQty,
		Cost:         p.Cost,
		SalePrice:    p.SalePrice,
		Currency:     p.Currency,
		Barcode:      p.Barcode,
		ImageURL:     p.ImageURL,
		Unit:         p.Unit,
		Active:       p.Active,
	}
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func stringOr(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func decimalOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return def
}
