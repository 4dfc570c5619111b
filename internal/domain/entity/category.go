package entity

import "time"

// Category representa una categoría de productos. ParentID permite una
// jerarquía opcional (nil si es raíz); el grafo de padres es un bosque.
type Category struct {
	ID        int
	Name      string
	ParentID  *int
	CreatedAt time.Time

	// ParentName viene del JOIN con la categoría padre; no se persiste.
	ParentName *string
}
