package entity

// User representa un usuario del sistema. Password puede ser texto plano
// (filas legacy) o un hash bcrypt; el caso de uso de auth distingue ambos.
type User struct {
	ID       int
	Username string
	Password string
}
