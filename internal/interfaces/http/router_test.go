package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos (estado por test)
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	categories map[int]*entity.Category
	nextID     int
}

func (f *memCategoryRepo) List(filter repository.CategoryFilter, limit, offset int) ([]*entity.Category, int, error) {
	var matched []*entity.Category
	for id := 1; id < f.nextID; id++ {
		c, ok := f.categories[id]
		if !ok {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, c)
	}
	total := len(matched)
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *memCategoryRepo) GetByID(id int) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (f *memCategoryRepo) FindDuplicate(name string, parentID *int) (*entity.Category, error) {
	for _, c := range f.categories {
		sameParent := (c.ParentID == nil && parentID == nil) ||
			(c.ParentID != nil && parentID != nil && *c.ParentID == *parentID)
		if strings.EqualFold(c.Name, name) && sameParent {
			return c, nil
		}
	}
	return nil, nil
}

func (f *memCategoryRepo) Create(category *entity.Category) error {
	category.ID = f.nextID
	category.CreatedAt = time.Now()
	f.nextID++
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *memCategoryRepo) Update(id int, fields repository.CategoryUpdate) error {
	c, ok := f.categories[id]
	if !ok {
		return domain.ErrNotFound
	}
	if fields.Name != nil {
		c.Name = *fields.Name
	}
	if fields.ParentSet {
		c.ParentID = fields.ParentID
	}
	return nil
}

func (f *memCategoryRepo) Delete(id int) error {
	if _, ok := f.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == id {
			return domain.ErrCategoryInUse
		}
	}
	delete(f.categories, id)
	return nil
}

func (f *memCategoryRepo) HasAncestor(id, ancestorID int) (bool, error) {
	for cur := f.categories[id]; cur != nil; {
		if cur.ID == ancestorID {
			return true, nil
		}
		if cur.ParentID == nil {
			break
		}
		cur = f.categories[*cur.ParentID]
	}
	return false, nil
}

type memProductRepo struct {
	products map[int]*entity.Product
	nextID   int
}

func (f *memProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	var matched []*entity.Product
	for _, p := range f.products {
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) && !strings.Contains(strings.ToLower(p.SKU), s) &&
				(p.Barcode == nil || !strings.Contains(strings.ToLower(*p.Barcode), s)) {
				continue
			}
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	total := len(matched)
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *memProductRepo) GetByID(id int) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (f *memProductRepo) Create(product *entity.Product) error {
	for _, p := range f.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	product.ID = f.nextID
	f.nextID++
	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *memProductRepo) Update(id int, fields repository.ProductUpdate) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if fields.SKU != nil {
		p.SKU = *fields.SKU
	}
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.MinQty != nil {
		p.MinQty = *fields.MinQty
	}
	if fields.MaxQty != nil {
		p.MaxQty = *fields.MaxQty
	}
	if fields.Cost != nil {
		p.Cost = *fields.Cost
	}
	if fields.SalePrice != nil {
		p.SalePrice = *fields.SalePrice
	}
	if fields.Currency != nil {
		p.Currency = *fields.Currency
	}
	if fields.Unit != nil {
		p.Unit = *fields.Unit
	}
	if fields.Active != nil {
		p.Active = *fields.Active
	}
	p.CategoryID = fields.CategoryID
	p.Barcode = fields.Barcode
	p.ImageURL = fields.ImageURL
	return nil
}

func (f *memProductRepo) SoftDelete(id int) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func (f *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

// buildTestApp monta el router completo sobre fakes en memoria.
func buildTestApp() *fiber.App {
	categoryRepo := &memCategoryRepo{categories: map[int]*entity.Category{}, nextID: 1}
	productRepo := &memProductRepo{products: map[int]*entity.Product{}, nextID: 1}
	userRepo := &memUserRepo{users: map[string]*entity.User{
		"admin": {ID: 1, Username: "admin", Password: "secreta123"},
	}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo),
		ProductUC:  usecase.NewProductUseCase(productRepo),
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: 60,
			Issuer:     "catalogo-api-test",
		}),
		AppName: "catalogo-api-test",
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{
		"username": "admin", "password": "secreta123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "admin", body["username"])
	assert.NotEmpty(t, body["token"], "con JWT_SECRET configurado debe emitirse token")
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{
		"username": "admin", "password": "otra",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/login", fiber.Map{
		"username": "nadie", "password": "x",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_CrearYListar_Envelope(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Bebidas"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, float64(1), created["id"])

	resp = doJSON(t, app, http.MethodGet, "/api/categories?search=beb", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	// Claves exactas del sobre paginado
	assert.Contains(t, body, "data")
	assert.Contains(t, body, "total")
	assert.Contains(t, body, "page")
	assert.Contains(t, body, "pageSize")
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(20), body["pageSize"])
}

func TestCategorias_DuplicadoRetorna400NoConflict(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Bebidas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "bebidas"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"el duplicado de categoría responde 400, no 409 (contrato del cliente)")
}

func TestCategorias_UpdateSinCampos_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Bebidas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/categories/1", fiber.Map{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategorias_UpdateInexistente_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPut, "/api/categories/99", fiber.Map{"name": "X"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategorias_DeleteReferenciada_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Bebidas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Gaseosas", "parent_id": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/categories/1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategorias_DeleteSinReferencias_OK(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Bebidas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearSinSKU_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"name": "Yerba"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_RangoInvalido_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"sku": "YER-001", "name": "Yerba", "min_qty": 5, "max_qty": 2,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_SKUDuplicado_Retorna409(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"sku": "YER-001", "name": "Yerba"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"sku": "YER-001", "name": "Otra"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProductos_GetInexistente_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/products/99", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_DeleteEsBajaLogica(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"sku": "YER-001", "name": "Yerba"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/products/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])

	// Sigue recuperable por ID, ahora inactivo
	resp = doJSON(t, app, http.MethodGet, "/api/products/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	product := decodeBody(t, resp)
	assert.Equal(t, false, product["active"])

	// active=true lo excluye del listado; active=false lo incluye
	resp = doJSON(t, app, http.MethodGet, "/api/products?active=true", nil)
	assert.Equal(t, float64(0), decodeBody(t, resp)["total"])
	resp = doJSON(t, app, http.MethodGet, "/api/products?active=false", nil)
	assert.Equal(t, float64(1), decodeBody(t, resp)["total"])
}

func TestProductos_ActiveNoLiteral_NoFiltra(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"sku": "A-1", "name": "Uno", "active": true})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"sku": "A-2", "name": "Dos", "active": false})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/products?active=banana", nil)
	assert.Equal(t, float64(2), decodeBody(t, resp)["total"],
		"un valor distinto de true/false no aplica filtro sobre active")
}

func TestProductos_PaginacionDefensiva(t *testing.T) {
	app := buildTestApp()

	// pageSize fuera de rango se recorta a 200; page no numérico cae al default
	resp := doJSON(t, app, http.MethodGet, "/api/products?page=abc&pageSize=9999", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(200), body["pageSize"])
}

func TestProductos_UpdateSinCategoryID_LaLimpia(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{"name": "Bebidas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"sku": "YER-001", "name": "Yerba", "category_id": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/products/1", fiber.Map{"name": "Yerba suave"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Nil(t, body["category_id"],
		"omitir category_id en el PUT la limpia: comportamiento heredado documentado")
	assert.Equal(t, "Yerba suave", body["name"])
	assert.Equal(t, "YER-001", body["sku"])
}
