package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id"`
}

// UpdateCategoryRequest entrada para actualizar una categoría. Solo los
// campos presentes en el JSON entran al UPDATE; parent_id distingue null
// explícito (limpiar el padre) de ausente (no tocar).
type UpdateCategoryRequest struct {
	Name     *string       `json:"name"`
	ParentID Nullable[int] `json:"parent_id"`
}

// CategoryResponse salida de una categoría con el nombre del padre resuelto.
type CategoryResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	ParentID   *int      `json:"parent_id"`
	ParentName *string   `json:"parent_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryListResponse sobre paginado de categorías.
type CategoryListResponse struct {
	Data     []CategoryResponse `json:"data"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}
