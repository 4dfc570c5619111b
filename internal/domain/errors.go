package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNameRequired       = errors.New("name es requerido")
	ErrSKUNameRequired    = errors.New("sku y name son requeridos")
	ErrInvalidRange       = errors.New("rango min/max inválido")
	ErrInvalidPrice       = errors.New("precios inválidos")
	ErrNothingToUpdate    = errors.New("nada para actualizar")
	ErrDuplicateCategory  = errors.New("ya existe una categoría con ese nombre y padre")
	ErrParentNotFound     = errors.New("la categoría padre no existe")
	ErrCategoryInUse      = errors.New("la categoría está referenciada y no puede eliminarse")
	ErrCategoryCycle      = errors.New("parent_id generaría un ciclo en la jerarquía")
	ErrDuplicateSKU       = errors.New("SKU o barcode ya existe")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
)
