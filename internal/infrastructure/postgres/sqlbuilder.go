package postgres

import (
	"fmt"
	"strings"
)

// WhereBuilder acumula condiciones AND con placeholders posicionales ($1..$n).
// Calcula los índices a partir de los argumentos ya acumulados, de modo que el
// listado y el COUNT puedan compartir exactamente el mismo predicado y orden
// de parámetros.
type WhereBuilder struct {
	conds []string
	args  []any
}

// Add agrega una condición. cond debe contener un verbo %s por cada valor;
// cada uno se sustituye por su placeholder posicional.
//
//	wb.Add("p.name ILIKE %s", pattern)          -> "p.name ILIKE $1"
//	wb.Add("(a = %s OR b = %s)", x, y)          -> "(a = $2 OR b = $3)"
func (b *WhereBuilder) Add(cond string, values ...any) {
	placeholders := make([]any, len(values))
	for i := range values {
		placeholders[i] = fmt.Sprintf("$%d", len(b.args)+i+1)
	}
	b.args = append(b.args, values...)
	b.conds = append(b.conds, fmt.Sprintf(cond, placeholders...))
}

// Bind agrega un argumento suelto (LIMIT, OFFSET) y devuelve su placeholder.
func (b *WhereBuilder) Bind(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// Clause devuelve "WHERE c1 AND c2 ..." o cadena vacía si no hay condiciones.
func (b *WhereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// Args devuelve los argumentos acumulados en el orden de sus placeholders.
func (b *WhereBuilder) Args() []any {
	return b.args
}

// SetBuilder acumula asignaciones de un UPDATE con placeholders posicionales.
// Solo los campos agregados explícitamente aparecen en el SET, lo que permite
// actualizaciones parciales sin concatenación ad hoc de índices.
type SetBuilder struct {
	assigns []string
	args    []any
}

// Set agrega una asignación column = $n.
func (b *SetBuilder) Set(column string, value any) {
	b.args = append(b.args, value)
	b.assigns = append(b.assigns, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Bind agrega un argumento fuera del SET (típicamente el id del WHERE) y devuelve su placeholder.
func (b *SetBuilder) Bind(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// Empty indica que no se agregó ninguna asignación.
func (b *SetBuilder) Empty() bool {
	return len(b.assigns) == 0
}

// Clause devuelve "SET a = $1, b = $2".
func (b *SetBuilder) Clause() string {
	return "SET " + strings.Join(b.assigns, ", ")
}

// Args devuelve los argumentos acumulados en el orden de sus placeholders.
func (b *SetBuilder) Args() []any {
	return b.args
}
