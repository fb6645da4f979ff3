package domain

// User is an account record. Created once by signup and immutable thereafter;
// the store key is the email, unique per store.
type User struct {
	Email         Email
	Password      Password
	RequiresTwoFA bool
}

// NewUser assembles a user from already-validated values.
func NewUser(email Email, password Password, requiresTwoFA bool) User {
	return User{
		Email:         email,
		Password:      password,
		RequiresTwoFA: requiresTwoFA,
	}
}
