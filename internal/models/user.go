package models

type UserRole string

const (
	RoleOwner UserRole = "owner" // işletme sahibi, tüm yetkiler
	RoleStaff UserRole = "staff" // personel, yalnızca veri girişi
)

type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
}
