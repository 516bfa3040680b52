package entity

// User is an account that owns favorites. The password hash never leaves the service.
type User struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
	IsActive     bool   `json:"is_active"`
}
