package models

import "time"

// Role gates mutation permissions.
type Role string

// Supported roles
const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ReservedUsername addresses the caller in /users/me and can never be registered.
const ReservedUsername = "me"

// Field limits shared by the schema and request validation.
const (
	RoleMaxLength     = 9
	UsernameMaxLength = 150
	EmailMaxLength    = 254
	NameMaxLength     = 256
	SlugMaxLength     = 50
	MinScore          = 1
	MaxScore          = 10
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"-" db:"id"`                  // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	FirstName    string    `json:"first_name" db:"first_name"` // Optional first name
	LastName     string    `json:"last_name" db:"last_name"`   // Optional last name
	Bio          string    `json:"bio" db:"bio"`               // Free-form biography
	Role         Role      `json:"role" db:"role"`             // user, moderator or admin
	IsSuperuser  bool      `json:"-" db:"is_superuser"`        // Grants admin rights regardless of role
	IsStaff      bool      `json:"-" db:"is_staff"`            // Grants moderator rights regardless of role
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash of the confirmation code
	CreatedAt    time.Time `json:"-" db:"created_at"`          // Creation timestamp
	UpdatedAt    time.Time `json:"-" db:"updated_at"`          // Last update timestamp
}

// IsAdmin reports whether the user holds the admin role or the superuser flag.
func (u *UserDB) IsAdmin() bool {
	return u != nil && (u.Role == RoleAdmin || u.IsSuperuser)
}

// IsModerator reports whether the user holds the moderator role or the staff flag.
func (u *UserDB) IsModerator() bool {
	return u != nil && (u.Role == RoleModerator || u.IsStaff)
}

// UserInput is the payload for creating a user through signup or the admin endpoint.
type UserInput struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"required,max=254,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio"`
	Role      Role   `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

// UserPatch is a partial update of a user profile. Nil fields are left untouched.
type UserPatch struct {
	Username  *string `json:"username" validate:"omitnil,max=150,username"`
	Email     *string `json:"email" validate:"omitnil,max=254,email"`
	FirstName *string `json:"first_name" validate:"omitnil,max=150"`
	LastName  *string `json:"last_name" validate:"omitnil,max=150"`
	Bio       *string `json:"bio"`
	Role      *Role   `json:"role" validate:"omitnil,oneof=user moderator admin"`
}

// SignupInput is the payload of the signup endpoint.
type SignupInput struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,max=254,email"`
}

// TokenInput exchanges a confirmation code for an access token.
type TokenInput struct {
	Username         string `json:"username" validate:"required,max=150"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}
