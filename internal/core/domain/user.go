package domain

// User is a registered platform user. Authentication beyond password login is
// delegated to the external identity provider; only the fields the exchange
// flows need live here.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	AuditFields
}
