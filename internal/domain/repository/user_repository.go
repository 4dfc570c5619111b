package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByUsername devuelve nil, nil si el usuario no existe.
	FindByUsername(username string) (*entity.User, error)
}
