package directory

import (
	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// Directory is the static employee table. It is populated once at startup
// and read-only afterwards, so lookups need no locking.
type Directory struct {
	users map[string]domain.User
}

// New builds a directory from the given users.
func New(users []domain.User) *Directory {
	byName := make(map[string]domain.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &Directory{users: byName}
}

// Lookup resolves a username to its user record.
func (d *Directory) Lookup(username string) (*domain.User, bool) {
	u, ok := d.users[username]
	if !ok {
		return nil, false
	}
	return &u, true
}

// Size reports the number of directory entries.
func (d *Directory) Size() int {
	return len(d.users)
}

// SeedUsers returns the prototype employee table. Credentials are hashed
// through the supplied function so the hashing backend stays pluggable.
// In the real system this would be PostgreSQL with encrypted storage.
func SeedUsers(hash func(password string) string) []domain.User {
	return []domain.User{
		{Username: "alext", FullName: "Alex Torres", Role: domain.RoleDispatcher, PasswordHash: hash("dispatch123")},
		{Username: "jeremyc", FullName: "Jeremy Clements", Role: domain.RoleComplianceOfficer, PasswordHash: hash("compliance123")},
		{Username: "ermiyash", FullName: "Ermiyas Hailemichael", Role: domain.RoleWarehouseManager, PasswordHash: hash("manager123")},
		{Username: "davidd", FullName: "David Davis", Role: domain.RoleAdmin, PasswordHash: hash("admin123")},
		{Username: "marias", FullName: "Maria Santos", Role: domain.RoleDriver, PasswordHash: hash("driver123")},
	}
}
