package models

// User is the persistence shape of a registered user. Email is the login
// identifier and carries a unique constraint.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	FullName     string `db:"full_name"`
	AuditFields
}
