package auth

// RegisterRequest has no role field: self-registered accounts are always residents.
type RegisterRequest struct {
	Name      string  `json:"name" binding:"required,max=191"`
	Email     string  `json:"email" binding:"required,email,max=191"`
	Password  string  `json:"password" binding:"required,min=8"`
	Barangay  *string `json:"barangay" binding:"omitempty,max=100"`
	Sitio     *string `json:"sitio" binding:"omitempty,max=100"`
	Phone     string  `json:"phone" binding:"omitempty,max=30"`
	Address   string  `json:"address"`
	Birthdate *string `json:"birthdate"`
}

type AuthResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Barangay *string `json:"barangay"`
	Sitio    *string `json:"sitio"`
}
