package entity

import "time"

// Roles válidos para User. Conjunto cerrado: cualquier otro valor es entrada inválida.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// ValidRole indica si el rol pertenece al conjunto cerrado buyer/seller/admin.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller || role == RoleAdmin
}

// User representa un usuario del sistema. El email es único e inmutable tras el registro;
// los usuarios desactivados quedan excluidos del login y del refresh de tokens.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // buyer, seller, admin
	IsActive     bool
	CreatedAt    time.Time
}
