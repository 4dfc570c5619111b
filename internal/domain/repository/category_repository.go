package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryFilter filtros del listado de categorías.
type CategoryFilter struct {
	Search string // substring case-insensitive sobre name
}

// CategoryUpdate campos de una actualización parcial. Solo los campos
// presentes generan asignaciones en el UPDATE; ParentSet distingue
// "parent_id ausente" de "parent_id: null" (que limpia el padre).
type CategoryUpdate struct {
	Name      *string
	ParentID  *int
	ParentSet bool
}

// IsEmpty indica que la petición no trae ningún campo para actualizar.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && !u.ParentSet
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// List devuelve una página ordenada por id ASC y el total con el mismo filtro.
	List(filter CategoryFilter, limit, offset int) ([]*entity.Category, int, error)
	GetByID(id int) (*entity.Category, error)
	// FindDuplicate busca una categoría con el mismo (name, parent_id),
	// comparando el nombre sin distinguir mayúsculas. nil si no existe.
	FindDuplicate(name string, parentID *int) (*entity.Category, error)
	Create(category *entity.Category) error
	Update(id int, fields CategoryUpdate) error
	Delete(id int) error
	// HasAncestor indica si ancestorID aparece en la cadena de padres de id
	// (incluyéndose a sí mismo). Se usa para rechazar ciclos.
	HasAncestor(id, ancestorID int) (bool, error)
}
