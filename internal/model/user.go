package model

// Role identifiers seeded by the schema migrations.
const (
	RoleRecruiter int64 = 1
	RoleApplicant int64 = 2
)

// User represents a person row in the credential store. PasswordHash holds
// the salted one-way hash of the credential and is never serialized; clients
// only ever see the projections below.
type User struct {
	PersonID     int64
	Name         string
	Surname      string
	Pnr          string
	Email        string
	Username     string
	PasswordHash string
	RoleID       int64
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Pnr      string `json:"pnr"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// FoundUser is the user projection returned by a successful login. It carries
// no person id and no credential material.
type FoundUser struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Pnr      string `json:"pnr"`
	Email    string `json:"email"`
	Username string `json:"username"`
	RoleID   int64  `json:"role_id"`
}

// CreatedUser is the user projection returned by a successful registration.
type CreatedUser struct {
	PersonID int64  `json:"person_id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Pnr      string `json:"pnr"`
	Email    string `json:"email"`
	Username string `json:"username"`
	RoleID   int64  `json:"role_id"`
}

// Found derives the login projection from a user record.
func (u *User) Found() FoundUser {
	return FoundUser{
		Name:     u.Name,
		Surname:  u.Surname,
		Pnr:      u.Pnr,
		Email:    u.Email,
		Username: u.Username,
		RoleID:   u.RoleID,
	}
}

// Created derives the registration projection from a user record.
func (u *User) Created() CreatedUser {
	return CreatedUser{
		PersonID: u.PersonID,
		Name:     u.Name,
		Surname:  u.Surname,
		Pnr:      u.Pnr,
		Email:    u.Email,
		Username: u.Username,
		RoleID:   u.RoleID,
	}
}

// LoginResponse is the success body for POST /login.
type LoginResponse struct {
	Message   string    `json:"message"`
	FoundUser FoundUser `json:"foundUser"`
}

// RegisterResponse is the success body for POST /register.
type RegisterResponse struct {
	Message     string      `json:"message"`
	CreatedUser CreatedUser `json:"createdUser"`
}
