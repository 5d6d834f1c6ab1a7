package model

import "time"

// AdminUser is an administrator account. Created once at first boot and never
// mutated afterwards. The password hash never leaves the server.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
