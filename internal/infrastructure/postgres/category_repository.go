package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve una página de categorías ordenada por id ASC y el total.
// COUNT y página son dos round trips que comparten el mismo WhereBuilder,
// así el predicado y el orden de parámetros son idénticos en ambos.
func (r *CategoryRepo) List(filter repository.CategoryFilter, limit, offset int) ([]*entity.Category, int, error) {
	wb := &WhereBuilder{}
	if filter.Search != "" {
		wb.Add("c.name ILIKE %s", "%"+filter.Search+"%")
	}
	where := wb.Clause()

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM product_category c %s", where)
	if err := r.q.QueryRow(context.Background(), countQuery, wb.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.parent_id, c.created_at, p.name AS parent_name
		FROM product_category c
		LEFT JOIN product_category p ON p.id = c.parent_id
		%s
		ORDER BY c.id ASC
		LIMIT %s OFFSET %s`, where, wb.Bind(limit), wb.Bind(offset))
	rows, err := r.q.Query(context.Background(), query, wb.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.CreatedAt, &c.ParentName); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// GetByID obtiene una categoría por ID con el nombre del padre. Retorna ErrNotFound si no existe.
func (r *CategoryRepo) GetByID(id int) (*entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.parent_id, c.created_at, p.name AS parent_name
		FROM product_category c
		LEFT JOIN product_category p ON p.id = c.parent_id
		WHERE c.id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.ParentID, &c.CreatedAt, &c.ParentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// FindDuplicate busca una categoría con el mismo (name, parent_id), sin distinguir mayúsculas.
// IS NOT DISTINCT FROM trata parent_id NULL como igual a NULL. nil si no hay duplicado.
func (r *CategoryRepo) FindDuplicate(name string, parentID *int) (*entity.Category, error) {
	query := `
		SELECT id, name, parent_id, created_at
		FROM product_category
		WHERE LOWER(name) = LOWER($1) AND parent_id IS NOT DISTINCT FROM $2`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name, parentID).Scan(
		&c.ID, &c.Name, &c.ParentID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find duplicate category: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva categoría y completa ID y CreatedAt.
// La unicidad real la garantiza el constraint de la tabla; el pre-check del
// caso de uso es solo una mejora de UX (ver carrera documentada en el diseño).
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO product_category (name, parent_id)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, category.Name, category.ParentID).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCategory
		}
		if isForeignKeyViolation(err) {
			return domain.ErrParentNotFound
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update aplica una actualización parcial: solo los campos presentes generan
// asignaciones (SET dinámico). Retorna ErrNotFound si el id no existe.
func (r *CategoryRepo) Update(id int, fields repository.CategoryUpdate) error {
	sb := &SetBuilder{}
	if fields.Name != nil {
		sb.Set("name", *fields.Name)
	}
	if fields.ParentSet {
		sb.Set("parent_id", fields.ParentID)
	}
	if sb.Empty() {
		return domain.ErrNothingToUpdate
	}

	query := fmt.Sprintf("UPDATE product_category %s WHERE id = %s", sb.Clause(), sb.Bind(id))
	cmd, err := r.q.Exec(context.Background(), query, sb.Args()...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCategory
		}
		if isForeignKeyViolation(err) {
			return domain.ErrParentNotFound
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la categoría (borrado físico). Si otras filas la referencian
// como parent_id o category_id, la violación de FK se mapea a ErrCategoryInUse.
func (r *CategoryRepo) Delete(id int) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM product_category WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HasAncestor recorre la cadena de padres de id y verifica si ancestorID
// aparece en ella (incluyendo id mismo). Se usa para rechazar parent_id
// que formarían un ciclo en la jerarquía.
func (r *CategoryRepo) HasAncestor(id, ancestorID int) (bool, error) {
	query := `
		WITH RECURSIVE ancestros AS (
			SELECT id, parent_id FROM product_category WHERE id = $1
			UNION ALL
			SELECT c.id, c.parent_id
			FROM product_category c
			JOIN ancestros a ON c.id = a.parent_id
		)
		SELECT EXISTS (SELECT 1 FROM ancestros WHERE id = $2)`
	var found bool
	if err := r.q.QueryRow(context.Background(), query, id, ancestorID).Scan(&found); err != nil {
		return false, fmt.Errorf("check category ancestor: %w", err)
	}
	return found, nil
}
