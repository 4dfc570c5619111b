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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve una página de productos ordenada por id DESC (los más nuevos
// primero) y el total. El filtro de texto combina name, sku y barcode en un
// solo predicado OR con tres placeholders ligados al mismo patrón. COUNT y
// página comparten el mismo WhereBuilder.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	wb := &WhereBuilder{}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		wb.Add("(p.name ILIKE %s OR p.sku ILIKE %s OR p.barcode ILIKE %s)", pattern, pattern, pattern)
	}
	if filter.CategoryID != nil {
		wb.Add("p.category_id = %s", *filter.CategoryID)
	}
	if filter.Active != nil {
		wb.Add("p.active = %s", *filter.Active)
	}
	where := wb.Clause()

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM product p %s", where)
	if err := r.q.QueryRow(context.Background(), countQuery, wb.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.sku, p.name, p.category_id, p.min_qty, p.max_qty,
		       p.cost, p.sale_price, p.currency, p.barcode, p.image_url,
		       p.unit, p.active, c.name AS category_name
		FROM product p
		LEFT JOIN product_category c ON c.id = p.category_id
		%s
		ORDER BY p.id DESC
		LIMIT %s OFFSET %s`, where, wb.Bind(limit), wb.Bind(offset))
	rows, err := r.q.Query(context.Background(), query, wb.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.MinQty, &p.MaxQty,
			&p.Cost, &p.SalePrice, &p.Currency, &p.Barcode, &p.ImageURL,
			&p.Unit, &p.Active, &p.CategoryName); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// GetByID obtiene un producto por ID con el nombre de su categoría. Retorna ErrNotFound si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.category_id, p.min_qty, p.max_qty,
		       p.cost, p.sale_price, p.currency, p.barcode, p.image_url,
		       p.unit, p.active, c.name AS category_name
		FROM product p
		LEFT JOIN product_category c ON c.id = p.category_id
		WHERE p.id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.MinQty, &p.MaxQty,
		&p.Cost, &p.SalePrice, &p.Currency, &p.Barcode, &p.ImageURL,
		&p.Unit, &p.Active, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto y completa el ID generado.
// Violación de unicidad (sku o barcode) se mapea a ErrDuplicateSKU.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO product
			(sku, name, category_id, min_qty, max_qty,
			 cost, sale_price, currency, barcode, image_url, unit, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.SKU, product.Name, product.CategoryID, product.MinQty, product.MaxQty,
		product.Cost, product.SalePrice, product.Currency, product.Barcode,
		product.ImageURL, product.Unit, product.Active,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		if isForeignKeyViolation(err) {
			return domain.ErrParentNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update aplica una actualización parcial con SET dinámico. Los campos
// escalares solo se asignan cuando vienen en la petición; category_id,
// barcode e image_url se escriben siempre con el valor recibido (o NULL),
// conservando la semántica que los clientes existentes asumen.
// Retorna ErrNotFound si el id no existe.
func (r *ProductRepo) Update(id int, fields repository.ProductUpdate) error {
	sb := &SetBuilder{}
	if fields.SKU != nil {
		sb.Set("sku", *fields.SKU)
	}
	if fields.Name != nil {
		sb.Set("name", *fields.Name)
	}
	if fields.MinQty != nil {
		sb.Set("min_qty", *fields.MinQty)
	}
	if fields.MaxQty != nil {
		sb.Set("max_qty", *fields.MaxQty)
	}
	if fields.Cost != nil {
		sb.Set("cost", *fields.Cost)
	}
	if fields.SalePrice != nil {
		sb.Set("sale_price", *fields.SalePrice)
	}
	if fields.Currency != nil {
		sb.Set("currency", *fields.Currency)
	}
	if fields.Unit != nil {
		sb.Set("unit", *fields.Unit)
	}
	if fields.Active != nil {
		sb.Set("active", *fields.Active)
	}
	// Siempre sobrescritos, aun cuando el valor es nil (NULL).
	sb.Set("category_id", fields.CategoryID)
	sb.Set("barcode", fields.Barcode)
	sb.Set("image_url", fields.ImageURL)

	query := fmt.Sprintf("UPDATE product %s WHERE id = %s", sb.Clause(), sb.Bind(id))
	cmd, err := r.q.Exec(context.Background(), query, sb.Args()...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		if isForeignKeyViolation(err) {
			return domain.ErrParentNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como inactivo; nunca borra la fila.
func (r *ProductRepo) SoftDelete(id int) error {
	cmd, err := r.q.Exec(context.Background(), `UPDATE product SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
