package models

import "time"

// Role defines the access levels understood by the auth gate. Only admin
// exists today; the closed enumeration leaves room for more later.
type Role string

const (
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin
}

// Admin represents a stored admin account. PasswordHash is a bcrypt hash and
// must never leave the server.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminIdentity is the decoded identity the auth gate attaches to the request
// context after a token passes verification.
type AdminIdentity struct {
	AdminID string `json:"adminId"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
}

type AdminRegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=200"`
}

// AdminLoginRequest uses "username" on the wire while the stored column is
// the admin name; the public site has always sent it that way.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=200"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}
