package usecase

import (
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List lista categorías con filtro por nombre y paginación (orden id ASC).
func (uc *CategoryUseCase) List(search string, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(repository.CategoryFilter{Search: search}, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		data = append(data, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Data:     data,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Create crea una categoría. El nombre se recorta antes de comparar y de
// persistir. El pre-check de duplicado es advisory: no hay transacción entre
// chequeo e insert, la unicidad real la garantiza el constraint de la tabla.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	existing, err := uc.repo.FindDuplicate(name, in.ParentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCategory
	}
	category := &entity.Category{Name: name, ParentID: in.ParentID}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	// Releer para resolver parent_name vía JOIN.
	return uc.GetByID(category.ID)
}

// Update aplica una actualización parcial. Sin campos presentes falla con
// "nada para actualizar"; un parent_id que formaría un ciclo se rechaza.
func (uc *CategoryUseCase) Update(id int, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	fields := repository.CategoryUpdate{
		ParentID:  in.ParentID.Ptr(),
		ParentSet: in.ParentID.Set,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		fields.Name = &name
	}
	if fields.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}
	if fields.ParentSet && fields.ParentID != nil {
		if *fields.ParentID == id {
			return nil, domain.ErrCategoryCycle
		}
		cycle, err := uc.repo.HasAncestor(*fields.ParentID, id)
		if err != nil {
			return nil, err
		}
		if cycle {
			return nil, domain.ErrCategoryCycle
		}
	}
	if err := uc.repo.Update(id, fields); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina la categoría (borrado físico). Una categoría referenciada
// como padre o por productos falla con error de validación.
func (uc *CategoryUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		ParentID:   c.ParentID,
		ParentName: c.ParentName,
		CreatedAt:  c.CreatedAt,
	}
}
