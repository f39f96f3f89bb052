package auth

import "time"

// User is the domain representation of a registered account. The password
// hash never leaves this package except through the repository; presentation
// layers serialize the view produced by Public.
type User struct {
	ID           string    `bson:"id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	Phone        *string   `bson:"phone,omitempty"`
	IsAdmin      bool      `bson:"is_admin"`
	CreatedAt    time.Time `bson:"created_at"`
}

// PublicUser is the wire-safe projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips credential material from the user record.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest contains registration data supplied by callers. Unknown
// JSON fields in the payload are ignored by the decoder.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest contains user login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
