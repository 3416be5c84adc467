package entity

import "time"

// User representa un usuario del sistema (acceso a la API).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
}
