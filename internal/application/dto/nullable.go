package dto

import "encoding/json"

// Nullable distingue entre campo ausente, null explícito y valor presente en
// un cuerpo JSON. encoding/json no diferencia "ausente" de "null" con
// punteros, y la actualización parcial de categorías necesita los tres
// estados para parent_id (null explícito limpia el padre; ausente lo deja).
type Nullable[T any] struct {
	Set   bool // la clave apareció en el JSON
	Valid bool // el valor no era null
	Value T
}

// UnmarshalJSON marca el campo como presente y captura el valor si no es null.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON serializa null cuando el valor no es válido.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr devuelve un puntero al valor, o nil si el campo era null o no vino.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
