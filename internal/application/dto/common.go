package dto

// Límites de paginación del servidor. El cliente puede pedir menos, nunca más.
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// PageRequest paginación estilo page/pageSize de los listados.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize aplica defaults y el clamp del servidor: page >= 1, pageSize en [1,200].
// Valores inválidos o ausentes caen al default en lugar de fallar.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset devuelve el desplazamiento SQL correspondiente a la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse cuerpo de confirmación de borrado.
type OkResponse struct {
	Ok bool `json:"ok"`
}
